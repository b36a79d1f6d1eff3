package game

import (
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/network"
)

// Player is one seat's controller: a remote human answering prompts
// over its connection, or a local bot deciding on its own. The engine
// type-switches over the two; the interface is closed to keep that
// switch exhaustive.
type Player interface {
	Name() string
	player()
}

// Human is a named remote player.
type Human struct {
	Conn *network.Conn
	name string
}

func NewHuman(conn *network.Conn, name string) *Human {
	return &Human{Conn: conn, name: name}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) player() {}

// Bot is a computer player.
type Bot struct {
	name string
}

func NewBot(name string) *Bot {
	return &Bot{name: name}
}

func (b *Bot) Name() string {
	return b.name
}

func (b *Bot) player() {}

// seat pairs a player with its hand inside the play order.
type seat struct {
	player Player
	hand   *Hand
}

func newSeat(p Player, deck *Deck) *seat {
	hand := NewHand()
	hand.Add(deck.DealHand(consts.HandSize)...)
	return &seat{player: p, hand: hand}
}
