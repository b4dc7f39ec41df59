package transport

import (
	"context"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/pkg/protocol"
)

//go:generate mockgen -source=connection.go -destination=mock/connection.go

type Kind string

const (
	KindBroadcast Kind = "broadcast"
	KindWebsocket Kind = "websocket"
)

// Unsubscribe removes a previously registered callback. Calling it twice is safe.
type Unsubscribe func()

// Connection is one logical lobby session bound to an address.
// Send never blocks on delivery and never reports failures: messages sent
// while the substrate is unavailable are dropped.
type Connection interface {
	Kind() Kind
	Address() protocol.Address

	Send(message protocol.Message)
	Close()

	OnMessage(fn func(protocol.Message)) Unsubscribe
	OnOpen(fn func()) Unsubscribe
	OnClose(fn func()) Unsubscribe
}

type Option func(*options)

type options struct {
	ctx    context.Context
	logger *zap.Logger
	hub    *Hub
	dialer *websocket.Dialer
}

func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHub overrides the process-wide hub used by mock:// addresses.
func WithHub(hub *Hub) Option {
	return func(o *options) {
		o.hub = hub
	}
}

func WithDialer(dialer *websocket.Dialer) Option {
	return func(o *options) {
		o.dialer = dialer
	}
}

// Dial picks the substrate from the address scheme: mock:// joins a broadcast
// channel, anything else opens a websocket.
func Dial(address protocol.Address, opts ...Option) Connection {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.ctx == nil {
		o.ctx = context.Background()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.hub == nil {
		o.hub = DefaultHub()
	}
	if o.dialer == nil {
		o.dialer = websocket.DefaultDialer
	}

	if address.IsMock() {
		return newBroadcastConnection(address, o.hub, o.logger)
	}
	return newSocketConnection(o.ctx, address, o.dialer, o.logger)
}
