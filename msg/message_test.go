package msg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uno-online/server/card"
	"github.com/uno-online/server/card/color"
)

// The exact wording is load-bearing: clients key off these strings, so
// the tests pin them verbatim, typos included.

func TestTranscriptLines(t *testing.T) {
	require.Equal(t, "203.0.113.9:4242 connected!", Message.PlayerConnected("203.0.113.9:4242"))
	require.Equal(t, "203.0.113.9:4242 has chosen name Henry!", Message.NameChosen("203.0.113.9:4242", "Henry"))
	require.Equal(t, "You didn't send a name in time!", Message.LateName())
	require.Equal(t, "Start Card: 7 GREEN", Message.StartCard(card.New(card.Number(7), color.Green)))
	require.Equal(t, "Its Henry's turn! Current card is SKIP RED",
		Message.HumanPlayerTurnStarted("Henry", card.New(card.Skip, color.Red)))
	require.Equal(t, "It is Player 2's turn!", Message.BotPlayerTurnStarted("Player 2"))
	require.Equal(t, "Henry played WILD4 BLUE",
		Message.PlayerPlayedCard("Henry", card.New(card.WildDrawFour, color.All).WithColor(color.Blue)))
	require.Equal(t, "Henry was skipped", Message.PlayerTurnSkipped("Henry"))
	require.Equal(t, "Henry won!", Message.WinnerFound("Henry"))
}

func TestPrompts(t *testing.T) {
	require.Equal(t, "Select your card: ", Message.SelectCard())
	require.Equal(t, "Select a color (RED, YELLOW, GREEN, BLUE): ", Message.SelectColor())
	require.Equal(t, "That isnt a valid index! Send a number!", Message.InvalidIndex())
	require.Equal(t, "That color is invalid! Try again", Message.InvalidColor())
	require.Equal(t, "You cannot play 9 BLUE on a 5 GREEN try again!",
		Message.CannotPlay(card.New(card.Number(9), color.Blue), card.New(card.Number(5), color.Green)))
}

func TestHumanPlayerHand(t *testing.T) {
	hand := []card.Card{
		card.New(card.Number(5), color.Blue),
		card.New(card.Wild, color.All),
		card.New(card.DrawTwo, color.Red),
	}
	require.Equal(t, "Its your turn! 5 BLUE, WILD ALL, DRAW2 RED", Message.HumanPlayerHand(hand))
	require.Equal(t, "Its your turn! ", Message.HumanPlayerHand(nil))
}

func TestPlayerDrewCards(t *testing.T) {
	require.Equal(t, "Henry drew a card", Message.PlayerDrewCards("Henry", 1))
	require.Equal(t, "Henry drew 2 cards", Message.PlayerDrewCards("Henry", 2))
	require.Equal(t, "Player 0 drew 4 cards", Message.PlayerDrewCards("Player 0", 4))
}
