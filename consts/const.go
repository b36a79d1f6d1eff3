package consts

import "time"

const (
	// HandSize is the number of cards every seat starts with.
	HandSize = 7

	// ReadLimit caps a single client read. Names and answers are one
	// raw chunk each, never longer than this.
	ReadLimit = 1024
)

// Defaults for the server configuration surface.
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 5555
	DefaultMaxConnections = 1
	DefaultBots           = 5
	DefaultConnectTimeout = 60 * time.Second
	DefaultNameTimeout    = 60 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	// ErrorsTimeout marks an elapsed accept deadline. The lobby
	// consumes it; it never escapes to the caller.
	ErrorsTimeout = NewErr(1, false, "Timeout. ")

	ErrorsNoParticipants  = NewErr(1, true, "Nobody connected!")
	ErrorsNoNames         = NewErr(1, true, "Nobody sent a name!")
	ErrorsInvalidBotCount = NewErr(1, true, "Bot count must be a positive integer!")
	ErrorsTooManyPlayers  = NewErr(1, true, "Cannot start a game with too many players!")
)
