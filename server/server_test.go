package server

import (
	"bufio"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/network"
)

func TestNew(t *testing.T) {
	scenarios := []struct {
		description string
		cfg         Config
		err         error
	}{
		{
			description: "rejects_a_negative_bot_count",
			cfg:         Config{Bots: -1, MaxConnections: 1},
			err:         consts.ErrorsInvalidBotCount,
		},
		{
			description: "rejects_an_empty_table",
			cfg:         Config{},
			err:         consts.ErrorsTooManyPlayers,
		},
		{
			description: "rejects_a_table_the_deck_cannot_deal",
			cfg:         Config{Bots: 15, MaxConnections: 1},
			err:         consts.ErrorsTooManyPlayers,
		},
		{
			description: "accepts_the_defaults",
			cfg:         Config{Bots: consts.DefaultBots, MaxConnections: consts.DefaultMaxConnections},
		},
		{
			description: "accepts_a_full_table_of_fifteen",
			cfg:         Config{Bots: 14, MaxConnections: 1},
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			srv, err := New(scenario.cfg)
			if scenario.err != nil {
				require.Equal(t, scenario.err, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, srv)
		})
	}
}

func TestConfigAddr(t *testing.T) {
	cfg := Config{Host: "0.0.0.0", Port: 5555}
	require.Equal(t, "0.0.0.0:5555", cfg.Addr())
}

func TestServe(t *testing.T) {
	t.Run("an_empty_lobby_tears_down_cleanly", func(t *testing.T) {
		srv, err := New(Config{
			MaxConnections: 1,
			ConnectTimeout: 100 * time.Millisecond,
			NameTimeout:    100 * time.Millisecond,
			Bots:           5,
		})
		require.NoError(t, err)

		acceptor, err := network.NewTcpAcceptor("127.0.0.1:0")
		require.NoError(t, err)

		winner, err := srv.Serve(acceptor)
		require.Equal(t, consts.ErrorsNoParticipants, err)
		require.Empty(t, winner)

		// Serve closed the acceptor on its way out.
		_, err = net.DialTimeout("tcp", acceptor.Addr(), 100*time.Millisecond)
		require.Error(t, err)
	})

	t.Run("a_dead_player_aborts_the_game", func(t *testing.T) {
		srv, err := New(Config{
			MaxConnections: 1,
			ConnectTimeout: 2 * time.Second,
			NameTimeout:    2 * time.Second,
			Bots:           0,
		})
		require.NoError(t, err)

		acceptor, err := network.NewTcpAcceptor("127.0.0.1:0")
		require.NoError(t, err)

		client, err := net.Dial("tcp", acceptor.Addr())
		require.NoError(t, err)
		defer client.Close()
		_, err = client.Write([]byte("Henry"))
		require.NoError(t, err)
		// The name is in flight; hanging up now kills the game at the
		// first card prompt.
		require.NoError(t, client.(*net.TCPConn).CloseWrite())

		winner, err := srv.Serve(acceptor)
		require.ErrorIs(t, err, io.EOF)
		require.Empty(t, winner)

		// The game got as far as dealing: the client saw its own
		// registration and the start card before the crash.
		require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
		reader := bufio.NewReader(client)
		var lines []string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				break
			}
			lines = append(lines, line)
		}
		require.GreaterOrEqual(t, len(lines), 3)
		require.Contains(t, lines[0], " connected!")
		require.Contains(t, lines[1], " has chosen name Henry!")
		require.Contains(t, lines[2], "Start Card: ")
		joined := strings.Join(lines, "")
		require.Contains(t, joined, `{"input":"Select your card: "}`)
	})
}
