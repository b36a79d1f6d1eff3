package network

import (
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/uno-online/server/consts"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Websocket accepts clients over ws://<addr>/ws. Each protocol line
// travels as one text frame, trailing newline included.
type Websocket struct {
	listener net.Listener
	server   *http.Server
	incoming chan *Conn
}

func NewWebsocketAcceptor(addr string) (*Websocket, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	w := &Websocket{
		listener: listener,
		incoming: make(chan *Conn, 16),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.serveWs)
	w.server = &http.Server{Handler: mux}
	go func() {
		if err := w.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("websocket server stopped")
		}
	}()
	log.Info().Str("addr", listener.Addr().String()).Msg("websocket listener up")
	return w, nil
}

func (w *Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	conn.SetReadLimit(consts.ReadLimit)
	select {
	case w.incoming <- NewConn(wsTransport{conn: conn}):
	default:
		// nobody is accepting anymore
		_ = conn.Close()
	}
}

func (w *Websocket) Accept(deadline time.Time) (*Conn, error) {
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()
	select {
	case conn := <-w.incoming:
		return conn, nil
	case <-timer.C:
		return nil, consts.ErrorsTimeout
	}
}

func (w *Websocket) Addr() string {
	return w.listener.Addr().String()
}

func (w *Websocket) Close() error {
	return w.server.Close()
}

type wsTransport struct {
	conn *websocket.Conn
}

func (t wsTransport) ReadChunk() ([]byte, error) {
	_, data, err := t.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (t wsTransport) WriteLine(line []byte) error {
	return t.conn.WriteMessage(websocket.TextMessage, line)
}

func (t wsTransport) Peer() string {
	return t.conn.RemoteAddr().String()
}

func (t wsTransport) Close() error {
	return t.conn.Close()
}
