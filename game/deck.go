package game

import (
	"math/rand"

	"github.com/uno-online/server/card"
	"github.com/uno-online/server/card/color"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 108

// Deck is an ordered pile of face-down cards. Cards leave from the
// tail, the way they would off the top of a physical stack.
type Deck struct {
	cards []card.Card
}

// NewDeck returns a freshly shuffled standard deck: per color one 0,
// two each of 1-9, two each of SKIP, REVERSE and DRAW2, plus four WILD
// and four WILD4.
func NewDeck() *Deck {
	cards := make([]card.Card, 0, DeckSize)
	for _, c := range color.Wheel {
		cards = append(cards, card.New(card.Number(0), c))
	}
	for cycle := 0; cycle < 2; cycle++ {
		for _, c := range color.Wheel {
			for n := 1; n <= 9; n++ {
				cards = append(cards, card.New(card.Number(n), c))
			}
		}
		for _, c := range color.Wheel {
			cards = append(cards,
				card.New(card.Skip, c),
				card.New(card.Reverse, c),
				card.New(card.DrawTwo, c),
			)
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards,
			card.New(card.Wild, color.All),
			card.New(card.WildDrawFour, color.All),
		)
	}
	shuffleCards(cards)
	return &Deck{cards: cards}
}

// DealHand removes and returns n cards from the tail of the deck.
// Callers check the pre-game player ratio, so the deck never runs out
// while dealing.
func (d *Deck) DealHand(n int) []card.Card {
	hand := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		hand = append(hand, d.Pop())
	}
	return hand
}

// Pop removes and returns the last card. It panics on an empty deck;
// Draw refills from the discard pile before that can happen.
func (d *Deck) Pop() card.Card {
	if len(d.cards) == 0 {
		panic("game: draw from empty deck")
	}
	last := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return last
}

// Refill shuffles cards into the deck.
func (d *Deck) Refill(cards []card.Card) {
	d.cards = append(d.cards, cards...)
	shuffleCards(d.cards)
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Draw takes the next card off the deck, turning the pile's buried
// cards back into a deck when it runs dry.
func Draw(deck *Deck, pile *Pile) card.Card {
	if deck.Empty() {
		deck.Refill(pile.TakeBuried())
	}
	return deck.Pop()
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
