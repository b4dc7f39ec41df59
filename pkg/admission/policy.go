// Package admission decides whether a chat message may be sent.
//
// Rules are evaluated in order and the first failing rule wins: empty text,
// text longer than MaxLength, a repeat of the last accepted text, an
// acceptance closer than MinInterval to the previous one, and more than
// MaxPerWindow acceptances within the trailing Window.
package admission

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
)

type Policy struct {
	config Config
	clock  clockwork.Clock

	// Acceptance times, oldest first. Pruned lazily by Check.
	timestamps []time.Time
	lastText   string
	lastAt     time.Time
}

func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.clock == nil {
		p.clock = clockwork.NewRealClock()
	}

	return p
}

func (p *Policy) Config() Config {
	return p.config
}

// Check evaluates text against the current state. It never records anything.
func (p *Policy) Check(text string) Verdict {
	now := p.clock.Now()
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return reject(ReasonEmpty)
	}

	if utf8.RuneCountInString(text) > p.config.MaxLength {
		return reject(ReasonTooLong)
	}

	if trimmed == p.lastText {
		return reject(ReasonDuplicate)
	}

	if !p.lastAt.IsZero() && now.Sub(p.lastAt) < p.config.MinInterval {
		return reject(ReasonTooFrequent)
	}

	p.prune(now)
	if len(p.timestamps) >= p.config.MaxPerWindow {
		return reject(ReasonWindowExceeded)
	}

	return Verdict{Accepted: true}
}

// Record commits an accepted text. Callers must invoke it after every accepted Check.
func (p *Policy) Record(text string) {
	now := p.clock.Now()
	p.timestamps = append(p.timestamps, now)
	p.lastText = strings.TrimSpace(text)
	p.lastAt = now
}

// Admit is Check followed by Record on acceptance.
func (p *Policy) Admit(text string) Verdict {
	verdict := p.Check(text)
	if verdict.Accepted {
		p.Record(text)
	}
	return verdict
}

func (p *Policy) prune(now time.Time) {
	keep := 0
	for keep < len(p.timestamps) && now.Sub(p.timestamps[keep]) >= p.config.Window {
		keep++
	}
	p.timestamps = p.timestamps[keep:]
}
