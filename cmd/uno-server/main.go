package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/uno-online/server/network"
	"github.com/uno-online/server/server"
)

var CLI struct {
	Host           string        `help:"Address to listen on." default:"0.0.0.0"`
	Port           int           `help:"Port to listen on." default:"5555"`
	MaxConnections int           `help:"Most client connections to wait for." default:"1"`
	ConnectTimeout time.Duration `help:"How long to wait for players to connect." default:"60s"`
	NameTimeout    time.Duration `help:"How long to wait for player names." default:"60s"`
	Bots           int           `help:"Number of computer players." default:"5"`
	Ws             bool          `help:"Serve websocket clients instead of raw TCP."`
	Debug          bool          `help:"Whether to enable debug logging."`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("uno-server"),
		kong.Description("Host one game of Uno for remote players."),
		kong.UsageOnError(),
	)
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := server.Config{
		Host:           CLI.Host,
		Port:           CLI.Port,
		MaxConnections: CLI.MaxConnections,
		ConnectTimeout: CLI.ConnectTimeout,
		NameTimeout:    CLI.NameTimeout,
		Bots:           CLI.Bots,
	}
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var acceptor network.Acceptor
	if CLI.Ws {
		acceptor, err = network.NewWebsocketAcceptor(cfg.Addr())
	} else {
		acceptor, err = network.NewTcpAcceptor(cfg.Addr())
	}
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Addr()).Msg("listen failed")
	}

	winner, err := srv.Serve(acceptor)
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Info().Str("winner", winner).Msg("game over")
}
