// Package msg is the single source of the message and prompt strings
// clients see. The wording is part of the wire contract; change it and
// existing clients break.
package msg

import (
	"fmt"
	"strings"

	"github.com/uno-online/server/card"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) PlayerConnected(peer string) string {
	return fmt.Sprintf("%s connected!", peer)
}

func (m MessageWriter) NameChosen(peer string, name string) string {
	return fmt.Sprintf("%s has chosen name %s!", peer, name)
}

func (m MessageWriter) LateName() string {
	return "You didn't send a name in time!"
}

func (m MessageWriter) StartCard(c card.Card) string {
	return fmt.Sprintf("Start Card: %s", c)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string, top card.Card) string {
	return fmt.Sprintf("Its %s's turn! Current card is %s", playerName, top)
}

func (m MessageWriter) HumanPlayerHand(hand []card.Card) string {
	names := make([]string, len(hand))
	for i, c := range hand {
		names[i] = c.String()
	}
	return fmt.Sprintf("Its your turn! %s", strings.Join(names, ", "))
}

func (m MessageWriter) SelectCard() string {
	return "Select your card: "
}

func (m MessageWriter) InvalidIndex() string {
	return "That isnt a valid index! Send a number!"
}

func (m MessageWriter) CannotPlay(candidate card.Card, top card.Card) string {
	return fmt.Sprintf("You cannot play %s on a %s try again!", candidate, top)
}

func (m MessageWriter) SelectColor() string {
	return "Select a color (RED, YELLOW, GREEN, BLUE): "
}

func (m MessageWriter) InvalidColor() string {
	return "That color is invalid! Try again"
}

func (m MessageWriter) BotPlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It is %s's turn!", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s", playerName, c)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s drew a card", playerName)
	}
	return fmt.Sprintf("%s drew %d cards", playerName, amount)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s was skipped", playerName)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s won!", playerName)
}
