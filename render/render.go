// Package render paints protocol text for terminals: the server's own
// transcript and the client's view of message, input and error lines.
package render

import (
	"io"

	"github.com/fatih/color"
)

// Stdout is the color-capable standard output.
var Stdout io.Writer = color.Output

var (
	transcript = color.New(color.FgHiCyan).SprintFunc()
	prompt     = color.New(color.FgHiYellow).SprintFunc()
	fault      = color.New(color.FgHiRed).SprintFunc()
)

// Transcript paints one line of the server's console transcript.
func Transcript(text string) string {
	return transcript(text)
}

// Prompt paints an input prompt for the player's terminal.
func Prompt(text string) string {
	return prompt(text)
}

// Fault paints an error line for the player's terminal.
func Fault(text string) string {
	return fault(text)
}
