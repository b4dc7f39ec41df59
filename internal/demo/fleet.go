package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/internal/transport"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/protocol"
)

var BotNames = []string{
	"AquaBot",
	"DeepFisher",
	"SeaKing",
	"OceanLord",
	"TidalWave",
	"CoralBoss",
	"SharkBait",
}

var Phrases = []string{
	"gl hf",
	"ready when you are",
	"who is hosting next round?",
	"brb, grabbing coffee",
	"let's go!",
	"any tips for the deep zone?",
	"my connection is fine now",
	"that last match was close",
	"waiting for one more",
	"nice crown",
}

const (
	DefaultBotsCount    = 3
	DefaultActionPeriod = 4 * time.Second
)

// Fleet runs in-process bots that share a room with the player.
type Fleet struct {
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	bots   []*bot
}

type Option func(*options)

type options struct {
	logger *zap.Logger
	clock  clockwork.Clock
	hub    *transport.Hub
	count  int
	period time.Duration
	seed   int64
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func WithHub(hub *transport.Hub) Option {
	return func(o *options) {
		o.hub = hub
	}
}

func WithBotsCount(count int) Option {
	return func(o *options) {
		o.count = count
	}
}

func WithActionPeriod(period time.Duration) Option {
	return func(o *options) {
		o.period = period
	}
}

// WithSeed makes bot behaviour reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// BotID returns the participant id of the i-th bot.
func BotID(i int) protocol.PlayerID {
	return protocol.PlayerID(fmt.Sprintf("bot-%d", i))
}

func BotName(i int) string {
	name := BotNames[i%len(BotNames)]
	if i >= len(BotNames) {
		name = fmt.Sprintf("%s%d", name, i/len(BotNames)+1)
	}
	return name
}

func Start(ctx context.Context, address protocol.Address, opts ...Option) (*Fleet, error) {
	if !address.IsMock() {
		return nil, errors.Errorf("demo bots need a %s address, got %s", protocol.MockScheme, address)
	}

	o := options{
		count:  DefaultBotsCount,
		period: DefaultActionPeriod,
		seed:   time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.clock == nil {
		o.clock = clockwork.NewRealClock()
	}
	if o.hub == nil {
		o.hub = transport.DefaultHub()
	}

	f := &Fleet{
		logger: o.logger.Named("demo"),
		bots:   make([]*bot, 0, o.count),
	}
	f.ctx, f.cancel = context.WithCancel(ctx)

	for i := 0; i < o.count; i++ {
		name := BotName(i)
		logger := f.logger.Named(name)

		connection := transport.Dial(address,
			transport.WithContext(f.ctx),
			transport.WithHub(o.hub),
			transport.WithLogger(logger),
		)

		session := lobby.New(
			lobby.WithConnection(connection),
			lobby.WithLogger(logger),
			lobby.WithClock(o.clock),
			lobby.WithPlayerID(BotID(i)),
			lobby.WithPlayerName(name),
		)

		err := session.Start()
		if err != nil {
			f.Stop()
			return nil, errors.Wrapf(err, "failed to start bot %s", name)
		}

		b := &bot{
			logger: logger,
			clock:  o.clock,
			period: o.period,
			lobby:  session,
			faker:  gofakeit.New(o.seed + int64(i)),
		}
		f.bots = append(f.bots, b)

		f.wg.Add(1)
		go func() {
			defer f.wg.Done()
			b.run(f.ctx)
		}()
	}

	f.logger.Info("demo bots started", zap.Int("count", o.count), zap.String("address", address.String()))
	return f, nil
}

func (f *Fleet) Count() int {
	return len(f.bots)
}

// Stop halts the bots and makes them leave the room.
func (f *Fleet) Stop() {
	f.cancel()
	f.wg.Wait()
	for _, b := range f.bots {
		b.lobby.Leave()
	}
	f.logger.Info("demo bots stopped")
}
