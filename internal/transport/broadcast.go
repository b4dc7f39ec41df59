package transport

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/blackcrown/lobby/pkg/protocol"
)

// Hub is a set of named broadcast channels shared by connections of one
// process, the way tabs of one browser origin share a BroadcastChannel.
type Hub struct {
	mutex       sync.RWMutex
	channels    map[string]map[*broadcastConnection]struct{}
	dispatchers map[string]*dispatcher
}

type pending struct {
	sender  *broadcastConnection
	message protocol.Message
}

// dispatcher delivers the messages of one channel in the order they were
// sent. A send made from inside a listener is queued behind the message
// being delivered, so every connection sees the channel in one order.
type dispatcher struct {
	mutex    sync.Mutex
	queue    []pending
	draining bool
}

var defaultHub = NewHub()

func NewHub() *Hub {
	return &Hub{
		channels:    make(map[string]map[*broadcastConnection]struct{}),
		dispatchers: make(map[string]*dispatcher),
	}
}

func DefaultHub() *Hub {
	return defaultHub
}

// Count returns the number of connections currently attached to a channel.
func (h *Hub) Count(channel string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.channels[channel])
}

func (h *Hub) join(channel string, c *broadcastConnection) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*broadcastConnection]struct{})
	}
	h.channels[channel][c] = struct{}{}
}

func (h *Hub) leave(channel string, c *broadcastConnection) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	members, ok := h.channels[channel]
	if !ok {
		return
	}
	delete(members, c)
	if len(members) == 0 {
		delete(h.channels, channel)
		if d, ok := h.dispatchers[channel]; ok && d.idle() {
			delete(h.dispatchers, channel)
		}
	}
}

func (h *Hub) dispatcher(channel string) *dispatcher {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	d, ok := h.dispatchers[channel]
	if !ok {
		d = &dispatcher{}
		h.dispatchers[channel] = d
	}
	return d
}

func (d *dispatcher) idle() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return !d.draining && len(d.queue) == 0
}

// dispatch queues the message and drains the queue unless another call is
// already draining it. The sender sees its own message before any peer does.
func (h *Hub) dispatch(channel string, p pending) {
	d := h.dispatcher(channel)

	d.mutex.Lock()
	d.queue = append(d.queue, p)
	if d.draining {
		d.mutex.Unlock()
		return
	}
	d.draining = true

	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.mutex.Unlock()

		next.sender.deliver(next.message)
		for _, peer := range h.peers(channel, next.sender) {
			peer.deliver(next.message.Clone())
		}

		d.mutex.Lock()
	}

	d.draining = false
	d.mutex.Unlock()
}

func (h *Hub) peers(channel string, except *broadcastConnection) []*broadcastConnection {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	members := maps.Keys(h.channels[channel])
	result := members[:0]
	for _, member := range members {
		if member != except {
			result = append(result, member)
		}
	}
	return result
}

type broadcastConnection struct {
	lifecycle
	hub     *Hub
	channel string
}

func newBroadcastConnection(address protocol.Address, hub *Hub, logger *zap.Logger) *broadcastConnection {
	c := &broadcastConnection{
		hub:     hub,
		channel: address.ChannelName(),
	}
	c.init(address, logger.Named("broadcast").With(zap.String("channel", c.channel)))

	hub.join(c.channel, c)

	// Open is reported asynchronously so that callers can subscribe first
	go c.markOpen()

	return c
}

func (c *broadcastConnection) Kind() Kind {
	return KindBroadcast
}

// Send echoes the message to this connection's own subscribers, since a
// broadcast channel never delivers to its sender, and then posts it to every
// other connection on the channel. A Send made while the channel is being
// delivered returns before its message is delivered.
func (c *broadcastConnection) Send(message protocol.Message) {
	if c.State() == StateClosed {
		c.logger.Debug("dropping message, connection closed", zap.String("type", string(message.Type)))
		return
	}

	c.hub.dispatch(c.channel, pending{sender: c, message: message})
}

func (c *broadcastConnection) Close() {
	c.hub.leave(c.channel, c)
	c.markClosed()
}
