package network

import (
	"time"

	"github.com/uno-online/server/protocol"
)

// Transport is one remote peer's byte stream.
type Transport interface {
	// ReadChunk performs a single read and returns exactly the bytes
	// that arrived, at most consts.ReadLimit of them. No framing is
	// applied; one read is assumed to carry one client message.
	ReadChunk() ([]byte, error)
	// WriteLine sends one encoded protocol line.
	WriteLine(line []byte) error
	// Peer is the remote address, used as the player's identity until
	// a name arrives.
	Peer() string
	Close() error
}

// Acceptor hands out wrapped client connections until a deadline.
type Acceptor interface {
	// Accept blocks for the next client and returns
	// consts.ErrorsTimeout once deadline passes.
	Accept(deadline time.Time) (*Conn, error)
	Addr() string
	Close() error
}

// Conn is a protocol-speaking wrapper around one client transport.
type Conn struct {
	transport Transport
}

func NewConn(t Transport) *Conn {
	return &Conn{transport: t}
}

func (c *Conn) Peer() string {
	return c.transport.Peer()
}

// WriteMessage sends one message line.
func (c *Conn) WriteMessage(text string) error {
	return c.write(protocol.Message, text)
}

// WriteError sends one error line.
func (c *Conn) WriteError(text string) error {
	return c.write(protocol.Error, text)
}

// Ask sends one input line, then blocks for the peer's answer. The
// answer is returned verbatim: no trimming, no decoding.
func (c *Conn) Ask(prompt string) (string, error) {
	if err := c.write(protocol.Input, prompt); err != nil {
		return "", err
	}
	chunk, err := c.transport.ReadChunk()
	if err != nil {
		return "", err
	}
	return string(chunk), nil
}

// ReadRaw performs one raw chunk read. The lobby uses it to collect
// the peer's chosen name.
func (c *Conn) ReadRaw() ([]byte, error) {
	return c.transport.ReadChunk()
}

func (c *Conn) Close() error {
	return c.transport.Close()
}

func (c *Conn) write(kind protocol.Kind, text string) error {
	line, err := protocol.Encode(kind, text)
	if err != nil {
		return err
	}
	return c.transport.WriteLine(line)
}
