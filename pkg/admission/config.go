package admission

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type Config struct {
	// MaxLength is the maximum number of characters in a message.
	MaxLength int
	// MinInterval is the minimum time between two accepted messages.
	MinInterval time.Duration
	// Window is the duration of the rolling window.
	Window time.Duration
	// MaxPerWindow is the maximum number of accepted messages within Window.
	MaxPerWindow int
}

func DefaultConfig() Config {
	return Config{
		MaxLength:    200,
		MinInterval:  1500 * time.Millisecond,
		Window:       8 * time.Second,
		MaxPerWindow: 5,
	}
}

type Option func(*Policy)

func WithConfig(c Config) Option {
	return func(p *Policy) {
		p.config = c
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(p *Policy) {
		p.clock = c
	}
}

func WithMaxLength(n int) Option {
	return func(p *Policy) {
		p.config.MaxLength = n
	}
}

func WithMinInterval(d time.Duration) Option {
	return func(p *Policy) {
		p.config.MinInterval = d
	}
}

func WithWindow(d time.Duration, maxMessages int) Option {
	return func(p *Policy) {
		p.config.Window = d
		p.config.MaxPerWindow = maxMessages
	}
}
