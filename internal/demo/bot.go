package demo

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/pkg/lobby"
)

type bot struct {
	logger *zap.Logger
	clock  clockwork.Clock
	period time.Duration
	lobby  *lobby.Lobby
	faker  *gofakeit.Faker
}

func (b *bot) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.clock.After(b.period):
			b.act()
		}
	}
}

func (b *bot) act() {
	if b.faker.Bool() {
		err := b.lobby.ToggleReady()
		if err != nil {
			b.logger.Debug("failed to toggle ready", zap.Error(err))
		}
		return
	}

	err := b.lobby.SendChat(Phrases[b.faker.IntRange(0, len(Phrases)-1)])
	if err != nil {
		b.logger.Debug("chat not sent", zap.Error(err))
	}
}
