package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uno-online/server/card/color"
)

// Rank is the face value printed on a card.
type Rank string

const (
	Skip         Rank = "SKIP"
	Reverse      Rank = "REVERSE"
	DrawTwo      Rank = "DRAW2"
	Wild         Rank = "WILD"
	WildDrawFour Rank = "WILD4"
)

// Number returns the rank of a number card, "0" through "9".
func Number(n int) Rank {
	return Rank(strconv.Itoa(n))
}

// Card is a single playing card. Wild cards carry color.All until
// they are played and recolored.
type Card struct {
	Rank  Rank
	Color color.Color
}

func New(rank Rank, c color.Color) Card {
	return Card{Rank: rank, Color: c}
}

// IsWild reports whether the card's rank starts with WILD.
func (c Card) IsWild() bool {
	return strings.HasPrefix(string(c.Rank), string(Wild))
}

// DrawPenalty is the number of cards the next player draws when this
// card is played: the numeric suffix of an action rank, so DRAW2 is 2
// and WILD4 is 4. Number cards and suffix-free ranks carry none.
func (c Card) DrawPenalty() int {
	rank := string(c.Rank)
	i := len(rank)
	for i > 0 && rank[i-1] >= '0' && rank[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(rank) {
		return 0
	}
	n, _ := strconv.Atoi(rank[i:])
	return n
}

// WithColor returns a copy of the card recolored to pick. The rank is
// unchanged, so a recolored WILD4 keeps its draw penalty.
func (c Card) WithColor(pick color.Color) Card {
	c.Color = pick
	return c
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Rank, c.Color)
}
