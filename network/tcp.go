package network

import (
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/uno-online/server/consts"
)

// Tcp accepts raw TCP clients.
type Tcp struct {
	listener *net.TCPListener
}

func NewTcpAcceptor(addr string) (*Tcp, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", listener.Addr().String()).Msg("tcp listener up")
	return &Tcp{listener: listener.(*net.TCPListener)}, nil
}

func (t *Tcp) Accept(deadline time.Time) (*Conn, error) {
	if err := t.listener.SetDeadline(deadline); err != nil {
		return nil, err
	}
	conn, err := t.listener.Accept()
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, consts.ErrorsTimeout
		}
		return nil, err
	}
	return NewConn(tcpTransport{conn: conn}), nil
}

func (t *Tcp) Addr() string {
	return t.listener.Addr().String()
}

func (t *Tcp) Close() error {
	return t.listener.Close()
}

type tcpTransport struct {
	conn net.Conn
}

func (t tcpTransport) ReadChunk() ([]byte, error) {
	buf := make([]byte, consts.ReadLimit)
	n, err := t.conn.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (t tcpTransport) WriteLine(line []byte) error {
	_, err := t.conn.Write(line)
	return err
}

func (t tcpTransport) Peer() string {
	return t.conn.RemoteAddr().String()
}

func (t tcpTransport) Close() error {
	return t.conn.Close()
}
