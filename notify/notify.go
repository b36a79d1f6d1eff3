// Package notify fans status lines out to players and mirrors them on
// the server's own console.
package notify

import (
	"fmt"
	"io"

	"github.com/uno-online/server/network"
	"github.com/uno-online/server/render"
)

type Notifier struct {
	console io.Writer
}

func New(console io.Writer) *Notifier {
	return &Notifier{console: console}
}

// NewConsole returns a notifier whose transcript goes to the
// color-capable stdout.
func NewConsole() *Notifier {
	return &Notifier{console: render.Stdout}
}

// Broadcast writes text as a message line to every conn and echoes it
// to the console transcript. The first failed write aborts the
// fan-out; a dead peer ends the game.
func (n *Notifier) Broadcast(conns []*network.Conn, text string) error {
	fmt.Fprintln(n.console, render.Transcript(text))
	for _, conn := range conns {
		if err := conn.WriteMessage(text); err != nil {
			return err
		}
	}
	return nil
}
