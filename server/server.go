// Package server wires the pieces into one complete game: validate
// the configuration, register players, run the engine, then tear every
// connection down.
package server

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/game"
	"github.com/uno-online/server/lobby"
	"github.com/uno-online/server/network"
	"github.com/uno-online/server/notify"
	"github.com/uno-online/server/registry"
)

type Config struct {
	Host           string
	Port           int
	MaxConnections int
	ConnectTimeout time.Duration
	NameTimeout    time.Duration
	Bots           int
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type Server struct {
	cfg      Config
	notifier *notify.Notifier
	registry *registry.Registry
}

// New validates cfg before any socket is opened. A table that could
// not deal seven cards to everyone, even with every connection slot
// filled, is rejected here.
func New(cfg Config) (*Server, error) {
	if cfg.Bots < 0 {
		return nil, consts.ErrorsInvalidBotCount
	}
	players := cfg.Bots + cfg.MaxConnections
	if players < 1 || game.DeckSize/players < consts.HandSize {
		return nil, consts.ErrorsTooManyPlayers
	}
	return &Server{
		cfg:      cfg,
		notifier: notify.NewConsole(),
		registry: registry.New(),
	}, nil
}

// Serve runs one game over the acceptor and returns the winner's
// name. Whatever happens, every remaining connection and the acceptor
// itself are closed before it returns.
func (s *Server) Serve(acceptor network.Acceptor) (string, error) {
	defer func() {
		s.registry.CloseAll()
		if err := acceptor.Close(); err != nil {
			log.Error().Err(err).Msg("closing acceptor")
		}
	}()

	seats, err := lobby.Register(acceptor, lobby.Config{
		MaxConnections: s.cfg.MaxConnections,
		ConnectTimeout: s.cfg.ConnectTimeout,
		NameTimeout:    s.cfg.NameTimeout,
	}, s.notifier, s.registry)
	if err != nil {
		return "", err
	}

	humans := make([]*game.Human, 0, len(seats))
	for _, st := range seats {
		humans = append(humans, game.NewHuman(st.Conn, st.Name))
	}
	g, err := game.New(humans, s.cfg.Bots, s.notifier)
	if err != nil {
		return "", err
	}

	winner, err := g.Run()
	if err != nil {
		return "", err
	}
	log.Info().Str("winner", winner).Msg("game finished")
	return winner, nil
}
