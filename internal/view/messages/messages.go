package messages

import (
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/storage"
)

type FatalErrorMessage struct {
	Err error
}

// ErrorMessage with a nil Err clears the error line.
type ErrorMessage struct {
	Err error
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Err: err}
}

type LobbyStarted struct{}

type LobbyEvent struct {
	Event lobby.Event
}

// LobbyClosed is sent once the event subscription is exhausted.
type LobbyClosed struct{}

type StateMessage struct {
	State *lobby.State
}

type ThemeChanged struct {
	Theme storage.Theme
}
