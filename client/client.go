// Package client is the terminal player: it dials the server, sends
// its name, then reacts to protocol lines until the server hangs up.
package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/uno-online/server/protocol"
	"github.com/uno-online/server/render"
)

type Config struct {
	Host string
	Port int
	Name string
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Run plays one game: message lines are printed, input lines are
// answered from in, an error line ends the game with that error. The
// server closing the connection is the normal way a game ends.
func Run(cfg Config, in io.Reader, out io.Writer) error {
	conn, err := net.Dial("tcp", cfg.Addr())
	if err != nil {
		return err
	}
	defer conn.Close()

	// The name goes out raw, no framing, before anything else.
	if _, err := conn.Write([]byte(cfg.Name)); err != nil {
		return err
	}

	stdin := bufio.NewReader(in)
	lines := bufio.NewScanner(conn)
	for lines.Scan() {
		kind, text, err := protocol.Decode(lines.Bytes())
		if err != nil {
			return err
		}
		switch kind {
		case protocol.Message:
			fmt.Fprintln(out, text)
		case protocol.Error:
			fmt.Fprintln(out, render.Fault(text))
			return errors.New(text)
		default:
			// Anything else asks for input.
			fmt.Fprint(out, render.Prompt(text))
			answer, err := stdin.ReadString('\n')
			if err != nil && answer == "" {
				return err
			}
			answer = strings.TrimSuffix(answer, "\n")
			if _, err := conn.Write([]byte(answer)); err != nil {
				return err
			}
		}
	}

	// A dropped connection and a clean close both mean the same thing
	// here: the game is over.
	fmt.Fprintln(out, "Game over!")
	return nil
}
