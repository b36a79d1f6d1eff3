package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/uno-online/server/card"
	"github.com/uno-online/server/card/color"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/msg"
	"github.com/uno-online/server/network"
	"github.com/uno-online/server/notify"
)

// Game owns the deck, the pile and the play order for one game. It
// runs in a single goroutine: exactly one decision is outstanding at a
// time, so none of the state it owns needs locking.
type Game struct {
	seats    []*seat
	conns    []*network.Conn
	deck     *Deck
	pile     *Pile
	notifier *notify.Notifier
	skipped  bool

	rng   *rand.Rand
	sleep func(time.Duration)
}

// New deals a fresh game: bots draw their hands first, then the
// humans, though play starts with the humans in connection order. Bots
// are named Player 0, Player 1 and so on.
func New(humans []*Human, bots int, notifier *notify.Notifier) (*Game, error) {
	if bots < 0 {
		return nil, consts.ErrorsInvalidBotCount
	}
	players := bots + len(humans)
	if players < 1 || DeckSize/players < consts.HandSize {
		return nil, consts.ErrorsTooManyPlayers
	}

	deck := NewDeck()
	botSeats := make([]*seat, 0, bots)
	for n := 0; n < bots; n++ {
		botSeats = append(botSeats, newSeat(NewBot(fmt.Sprintf("Player %d", n)), deck))
	}
	seats := make([]*seat, 0, players)
	conns := make([]*network.Conn, 0, len(humans))
	for _, human := range humans {
		seats = append(seats, newSeat(human, deck))
		conns = append(conns, human.Conn)
	}
	seats = append(seats, botSeats...)

	return &Game{
		seats:    seats,
		conns:    conns,
		deck:     deck,
		pile:     NewPile(),
		notifier: notifier,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:    time.Sleep,
	}, nil
}

// Run drives turns until a seat empties its hand by playing a card,
// then returns the winner's name. Any connection failure aborts the
// game with the underlying error.
func (g *Game) Run() (string, error) {
	start := g.deck.Pop()
	g.pile.Add(start)
	if err := g.notifier.Broadcast(g.conns, msg.Message.StartCard(start)); err != nil {
		return "", err
	}

	for {
		for i := 0; i < len(g.seats); i++ {
			s := g.seats[i]
			if g.skipped {
				g.skipped = false
				if err := g.notifier.Broadcast(g.conns, msg.Message.PlayerTurnSkipped(s.player.Name())); err != nil {
					return "", err
				}
				continue
			}

			var (
				pick   card.Card
				played bool
				err    error
			)
			switch p := s.player.(type) {
			case *Human:
				pick, played, err = g.humanTurn(p, s.hand)
			case *Bot:
				pick, played, err = g.botTurn(p, s.hand)
			}
			if err != nil {
				return "", err
			}

			if !played {
				s.hand.Add(Draw(g.deck, g.pile))
				if err := g.notifier.Broadcast(g.conns, msg.Message.PlayerDrewCards(s.player.Name(), 1)); err != nil {
					return "", err
				}
				continue
			}
			if s.hand.Empty() {
				// The winning card stays off the pile; the game is
				// already over.
				if err := g.notifier.Broadcast(g.conns, msg.Message.WinnerFound(s.player.Name())); err != nil {
					return "", err
				}
				return s.player.Name(), nil
			}
			if err := g.applyEffects(i, s.player.Name(), pick); err != nil {
				return "", err
			}
		}
	}
}

// humanTurn prompts p until it draws or plays a legal card. A played
// wild is followed by the color prompt, unless it emptied the hand and
// won on the spot.
func (g *Game) humanTurn(p *Human, hand *Hand) (card.Card, bool, error) {
	if err := g.notifier.Broadcast(g.conns, msg.Message.HumanPlayerTurnStarted(p.Name(), g.pile.Top())); err != nil {
		return card.Card{}, false, err
	}
	if err := p.Conn.WriteMessage(msg.Message.HumanPlayerHand(hand.Cards())); err != nil {
		return card.Card{}, false, err
	}

	var pick card.Card
	for {
		answer, err := p.Conn.Ask(msg.Message.SelectCard())
		if err != nil {
			return card.Card{}, false, err
		}
		if strings.EqualFold(answer, "DRAW") {
			return card.Card{}, false, nil
		}
		idx, ok := handIndex(answer, hand.Size())
		if !ok {
			if err := p.Conn.WriteMessage(msg.Message.InvalidIndex()); err != nil {
				return card.Card{}, false, err
			}
			continue
		}
		candidate := hand.At(idx)
		if !Playable(candidate, g.pile.Top()) {
			if err := p.Conn.WriteMessage(msg.Message.CannotPlay(candidate, g.pile.Top())); err != nil {
				return card.Card{}, false, err
			}
			continue
		}
		pick = hand.RemoveAt(idx)
		break
	}

	if hand.Empty() || !pick.IsWild() {
		return pick, true, nil
	}
	for {
		answer, err := p.Conn.Ask(msg.Message.SelectColor())
		if err != nil {
			return card.Card{}, false, err
		}
		chosen, ok := color.ByName(strings.ToUpper(answer))
		if !ok {
			if err := p.Conn.WriteMessage(msg.Message.InvalidColor()); err != nil {
				return card.Card{}, false, err
			}
			continue
		}
		return pick.WithColor(chosen), true, nil
	}
}

// botTurn pauses for thinking time, then plays a uniformly random
// legal card, or draws when it has none.
func (g *Game) botTurn(b *Bot, hand *Hand) (card.Card, bool, error) {
	if err := g.notifier.Broadcast(g.conns, msg.Message.BotPlayerTurnStarted(b.Name())); err != nil {
		return card.Card{}, false, err
	}
	g.sleep(time.Duration(1+g.rng.Intn(4)) * time.Second)

	choices := hand.PlayableIndexes(g.pile.Top())
	if len(choices) == 0 {
		return card.Card{}, false, nil
	}
	pick := hand.RemoveAt(choices[g.rng.Intn(len(choices))])
	if pick.IsWild() {
		pick = pick.WithColor(g.favoriteColor(hand))
	}
	return pick, true, nil
}

// favoriteColor is the most common color among the bot's remaining
// cards, ties going to the color appearing first in the hand. An
// emptied hand gets a random pick.
func (g *Game) favoriteColor(hand *Hand) color.Color {
	if hand.Empty() {
		return color.Wheel[g.rng.Intn(len(color.Wheel))]
	}
	cards := hand.Cards()
	counts := make(map[color.Color]int, len(cards))
	for _, c := range cards {
		counts[c.Color]++
	}
	var (
		best  color.Color
		bestN int
	)
	for _, c := range cards {
		if n := counts[c.Color]; n > bestN {
			best, bestN = c.Color, n
		}
	}
	return best
}

// applyEffects settles a played card: REVERSE turns the play order
// around in place, SKIP flags the next seat, and a draw penalty lands
// on whoever follows the actor in the post-reverse order.
func (g *Game) applyEffects(i int, actor string, pick card.Card) error {
	ndraw := pick.DrawPenalty()
	if pick.Rank == card.Reverse {
		reverse(g.seats)
	}
	if pick.Rank == card.Skip {
		g.skipped = true
	}
	if err := g.notifier.Broadcast(g.conns, msg.Message.PlayerPlayedCard(actor, pick)); err != nil {
		return err
	}
	g.pile.Add(pick)

	if ndraw == 0 {
		return nil
	}
	next := g.seats[(i+1)%len(g.seats)]
	for n := 0; n < ndraw; n++ {
		next.hand.Add(Draw(g.deck, g.pile))
	}
	return g.notifier.Broadcast(g.conns, msg.Message.PlayerDrewCards(next.player.Name(), ndraw))
}

// handIndex turns a 1-based answer into a hand position. Any string of
// digits is accepted, however long: the numeral is reduced modulo size
// digit by digit, and 0 wraps around to the last card. Anything that
// is not all digits, a leading minus sign included, reports false.
func handIndex(answer string, size int) (int, bool) {
	if answer == "" {
		return 0, false
	}
	k := 0
	for i := 0; i < len(answer); i++ {
		d := answer[i]
		if d < '0' || d > '9' {
			return 0, false
		}
		k = (k*10 + int(d-'0')) % size
	}
	return ((k-1)%size + size) % size, true
}

func reverse(seats []*seat) {
	for i, j := 0, len(seats)-1; i < j; i, j = i+1, j-1 {
		seats[i], seats[j] = seats[j], seats[i]
	}
}
