// Package lobby runs the registration stage: accept connections until
// the table fills or a deadline passes, then collect a name from each
// connection under a second deadline. Connections that never send a
// name are told so and dropped; everyone else becomes a seat.
package lobby

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/msg"
	"github.com/uno-online/server/network"
	"github.com/uno-online/server/notify"
	"github.com/uno-online/server/registry"
)

type Config struct {
	MaxConnections int
	ConnectTimeout time.Duration
	NameTimeout    time.Duration
}

// Seat is one named connection. Seats keep connection order.
type Seat struct {
	Conn *network.Conn
	Name string
}

// Register runs both phases and returns the named seats. Zero
// connections or zero names are fatal; a read failure during naming is
// treated as a dead peer and aborts the whole stage.
func Register(acceptor network.Acceptor, cfg Config, notifier *notify.Notifier, reg *registry.Registry) ([]Seat, error) {
	connected, err := awaitConnections(acceptor, cfg.MaxConnections, cfg.ConnectTimeout, notifier, reg)
	if err != nil {
		return nil, err
	}
	return awaitNames(connected, cfg.NameTimeout, notifier, reg)
}

func awaitConnections(acceptor network.Acceptor, max int, timeout time.Duration, notifier *notify.Notifier, reg *registry.Registry) ([]*network.Conn, error) {
	deadline := time.Now().Add(timeout)
	connected := make([]*network.Conn, 0, max)
	for len(connected) < max {
		conn, err := acceptor.Accept(deadline)
		if err == consts.ErrorsTimeout {
			break
		}
		if err != nil {
			return nil, err
		}
		reg.Add(conn)
		connected = append(connected, conn)
		log.Debug().Str("peer", conn.Peer()).Int("connected", len(connected)).Msg("player connected")
		if err := notifier.Broadcast(connected, msg.Message.PlayerConnected(conn.Peer())); err != nil {
			return nil, err
		}
	}
	if len(connected) == 0 {
		return nil, consts.ErrorsNoParticipants
	}
	log.Info().Int("connected", len(connected)).Msg("connect phase over")
	return connected, nil
}

type nameResult struct {
	conn *network.Conn
	name string
	err  error
}

func awaitNames(connected []*network.Conn, timeout time.Duration, notifier *notify.Notifier, reg *registry.Registry) ([]Seat, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	// One reader per connection. The buffer holds a result for every
	// reader so the ones racing the deadline never block after their
	// conn is evicted and closed.
	results := make(chan nameResult, len(connected))
	for _, conn := range connected {
		conn := conn
		go func() {
			raw, err := conn.ReadRaw()
			results <- nameResult{conn: conn, name: string(raw), err: err}
		}()
	}

	named := make(map[*network.Conn]string, len(connected))
collect:
	for len(named) < len(connected) {
		select {
		case r := <-results:
			if r.err != nil {
				return nil, r.err
			}
			named[r.conn] = r.name
			log.Debug().Str("peer", r.conn.Peer()).Str("name", r.name).Msg("name received")
			if err := notifier.Broadcast(connected, msg.Message.NameChosen(r.conn.Peer(), r.name)); err != nil {
				return nil, err
			}
		case <-deadline.C:
			break collect
		}
	}

	if len(named) == 0 {
		return nil, consts.ErrorsNoNames
	}

	seats := make([]Seat, 0, len(named))
	for _, conn := range connected {
		name, ok := named[conn]
		if !ok {
			log.Debug().Str("peer", conn.Peer()).Msg("dropping unnamed connection")
			_ = conn.WriteError(msg.Message.LateName())
			_ = conn.Close()
			reg.Remove(conn)
			continue
		}
		seats = append(seats, Seat{Conn: conn, Name: name})
	}
	log.Info().Int("named", len(seats)).Msg("naming phase over")
	return seats, nil
}
