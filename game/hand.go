package game

import (
	"github.com/uno-online/server/card"
)

// Hand is one seat's cards. Order is stable: removal shifts, never
// swaps, because prompts show 1-based positions and the bot's color
// census walks the hand in order.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

// Cards returns a copy of the hand.
func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// At returns the card at position i without removing it.
func (h *Hand) At(i int) card.Card {
	return h.cards[i]
}

// RemoveAt removes and returns the card at position i, shifting the
// cards behind it down one place.
func (h *Hand) RemoveAt(i int) card.Card {
	removed := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return removed
}

// PlayableIndexes lists the hand positions legal on top.
func (h *Hand) PlayableIndexes(top card.Card) []int {
	var indexes []int
	for i, candidate := range h.cards {
		if Playable(candidate, top) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
