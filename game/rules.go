package game

import (
	"github.com/uno-online/server/card"
)

// Playable reports whether candidate may go on top: wilds always may,
// anything else must match top's rank or color.
func Playable(candidate card.Card, top card.Card) bool {
	return candidate.IsWild() || candidate.Rank == top.Rank || candidate.Color == top.Color
}
