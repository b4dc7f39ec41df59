package lobby

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/internal/transport"
	"github.com/blackcrown/lobby/pkg/admission"
	"github.com/blackcrown/lobby/pkg/protocol"
	"github.com/blackcrown/lobby/pkg/storage"
)

type Option func(*Lobby)

func WithConnection(c transport.Connection) Option {
	return func(l *Lobby) {
		l.connection = c
	}
}

func WithStorage(s storage.Service) Option {
	return func(l *Lobby) {
		l.storage = s
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Lobby) {
		l.logger = logger
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(l *Lobby) {
		l.clock = c
	}
}

func WithPlayerName(name string) Option {
	return func(l *Lobby) {
		l.config.PlayerName = name
	}
}

func WithPlayerID(id protocol.PlayerID) Option {
	return func(l *Lobby) {
		l.player.ID = id
	}
}

func WithHost(isHost bool) Option {
	return func(l *Lobby) {
		l.config.IsHost = isHost
	}
}

// WithAdmission overrides the chat policy. The policy clock is not
// replaced by WithClock.
func WithAdmission(policy *admission.Policy) Option {
	return func(l *Lobby) {
		l.admission = policy
	}
}

func WithHistoryLimit(limit int) Option {
	return func(l *Lobby) {
		l.config.HistoryLimit = limit
	}
}

func WithMaxPlayers(count int) Option {
	return func(l *Lobby) {
		l.config.MaxPlayers = count
	}
}
