package transport

import (
	"sync"

	"go.uber.org/zap"

	"github.com/blackcrown/lobby/pkg/protocol"
)

type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// listeners keeps callbacks in registration order.
type listeners[T any] struct {
	mutex   sync.Mutex
	nextID  int
	entries []listenerEntry[T]
}

type listenerEntry[T any] struct {
	id int
	fn T
}

func (l *listeners[T]) add(fn T) Unsubscribe {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, listenerEntry[T]{id: id, fn: fn})

	return func() {
		l.remove(id)
	}
}

func (l *listeners[T]) remove(id int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for i, entry := range l.entries {
		if entry.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *listeners[T]) snapshot() []T {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	result := make([]T, 0, len(l.entries))
	for _, entry := range l.entries {
		result = append(result, entry.fn)
	}
	return result
}

func (l *listeners[T]) count() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.entries)
}

func (l *listeners[T]) clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.entries = nil
}

// lifecycle is shared by both substrates: subscriber sets and the
// connecting -> open -> closed state machine. Callbacks always run
// without any lock held, so they may call back into the connection.
type lifecycle struct {
	address protocol.Address
	logger  *zap.Logger

	mutex sync.Mutex
	state State

	messageListeners listeners[func(protocol.Message)]
	openListeners    listeners[func()]
	closeListeners   listeners[func()]
}

func (l *lifecycle) init(address protocol.Address, logger *zap.Logger) {
	l.address = address
	l.logger = logger
	l.state = StateConnecting
}

func (l *lifecycle) Address() protocol.Address {
	return l.address
}

func (l *lifecycle) State() State {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.state
}

func (l *lifecycle) OnMessage(fn func(protocol.Message)) Unsubscribe {
	return l.messageListeners.add(fn)
}

// OnOpen calls fn right away when the connection is already open.
func (l *lifecycle) OnOpen(fn func()) Unsubscribe {
	l.mutex.Lock()
	state := l.state
	var unsubscribe Unsubscribe = func() {}
	if state == StateConnecting {
		unsubscribe = l.openListeners.add(fn)
	}
	l.mutex.Unlock()

	if state == StateOpen {
		fn()
	}
	return unsubscribe
}

// OnClose calls fn right away when the connection is already closed.
func (l *lifecycle) OnClose(fn func()) Unsubscribe {
	l.mutex.Lock()
	state := l.state
	var unsubscribe Unsubscribe = func() {}
	if state != StateClosed {
		unsubscribe = l.closeListeners.add(fn)
	}
	l.mutex.Unlock()

	if state == StateClosed {
		fn()
	}
	return unsubscribe
}

func (l *lifecycle) markOpen() bool {
	l.mutex.Lock()
	if l.state != StateConnecting {
		l.mutex.Unlock()
		return false
	}
	l.state = StateOpen
	subscribers := l.openListeners.snapshot()
	l.openListeners.clear()
	l.mutex.Unlock()

	l.logger.Debug("connection open", zap.Int("subscribers", len(subscribers)))
	for _, fn := range subscribers {
		fn()
	}
	return true
}

// markClosed notifies close subscribers exactly once. It reports whether
// this call performed the transition.
func (l *lifecycle) markClosed() bool {
	l.mutex.Lock()
	if l.state == StateClosed {
		l.mutex.Unlock()
		return false
	}
	l.state = StateClosed
	subscribers := l.closeListeners.snapshot()
	l.closeListeners.clear()
	l.openListeners.clear()
	l.messageListeners.clear()
	l.mutex.Unlock()

	l.logger.Debug("connection closed", zap.Int("subscribers", len(subscribers)))
	for _, fn := range subscribers {
		fn()
	}
	return true
}

func (l *lifecycle) deliver(message protocol.Message) {
	l.mutex.Lock()
	if l.state == StateClosed {
		l.mutex.Unlock()
		return
	}
	subscribers := l.messageListeners.snapshot()
	l.mutex.Unlock()

	for _, fn := range subscribers {
		fn(message)
	}
}
