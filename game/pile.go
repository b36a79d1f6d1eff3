package game

import (
	"github.com/uno-online/server/card"
)

// Pile is the discard pile. Its last card is the one plays must
// match.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

// Add puts c on top of the pile.
func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

// Top returns the card plays must match, or the zero Card while the
// pile is empty.
func (p *Pile) Top() card.Card {
	if len(p.cards) == 0 {
		return card.Card{}
	}
	return p.cards[len(p.cards)-1]
}

// TakeBuried removes and returns every card under the top. The pile
// keeps only its top card.
func (p *Pile) TakeBuried() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	buried := make([]card.Card, len(p.cards)-1)
	copy(buried, p.cards[:len(p.cards)-1])
	p.cards[0] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:1]
	return buried
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// Cards returns a copy of the pile, bottom first.
func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}
