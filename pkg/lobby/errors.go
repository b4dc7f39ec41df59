package lobby

import (
	"github.com/pkg/errors"

	"github.com/blackcrown/lobby/pkg/admission"
)

var (
	ErrClosed      = errors.New("lobby is closed")
	ErrNotStarted  = errors.New("lobby is not started")
	ErrNotHost     = errors.New("only the host can start the game")
	ErrNotAllReady = errors.New("not all players are ready")
	ErrNotInRoster = errors.New("player is not in the roster yet")
)

// RejectedError is returned by SendChat when the admission policy refused the text.
type RejectedError struct {
	Verdict admission.Verdict
	message string
}

func (e *RejectedError) Error() string {
	return e.message
}

func (e *RejectedError) Reason() admission.Reason {
	return e.Verdict.Reason
}
