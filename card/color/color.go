package color

// Color is a card color as it appears on the wire.
type Color string

const (
	Red    Color = "RED"
	Blue   Color = "BLUE"
	Green  Color = "GREEN"
	Yellow Color = "YELLOW"

	// All is the color of a wild card that has not been played yet.
	// It is never a valid answer to a color prompt.
	All Color = "ALL"
)

// Wheel is the canonical order of the four playable colors.
var Wheel = []Color{Red, Blue, Green, Yellow}

func (c Color) String() string {
	return string(c)
}

// ByName resolves name against the four playable colors. The match is
// exact: names are uppercase and carry no surrounding whitespace.
func ByName(name string) (Color, bool) {
	for _, c := range Wheel {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
