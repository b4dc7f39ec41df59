package lobby

import "sync"

type EventTag int

const (
	EventStateChanged EventTag = iota
	EventChatRejected
	EventLobbyFull
	EventGameStarted
	EventConnectionOpened
	EventConnectionClosed
)

func (t EventTag) String() string {
	switch t {
	case EventStateChanged:
		return "state-changed"
	case EventChatRejected:
		return "chat-rejected"
	case EventLobbyFull:
		return "lobby-full"
	case EventGameStarted:
		return "game-started"
	case EventConnectionOpened:
		return "connection-opened"
	case EventConnectionClosed:
		return "connection-closed"
	}
	return "unknown"
}

// Event data depends on the tag:
// EventChatRejected carries admission.Verdict, EventLobbyFull carries
// the refused protocol.Player.
type Event struct {
	Tag  EventTag
	Data interface{}
}

const subscriptionBuffer = 42

type Subscription struct {
	Events chan Event
}

type EventManager struct {
	mutex         sync.Mutex
	subscriptions []*Subscription
	closed        bool
}

func NewEventManager() *EventManager {
	return &EventManager{
		subscriptions: make([]*Subscription, 0, 1),
	}
}

// Send never blocks. It reports false when at least one subscriber
// had a full buffer and missed the event.
func (m *EventManager) Send(event Event) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delivered := true
	for _, sub := range m.subscriptions {
		select {
		case sub.Events <- event:
		default:
			delivered = false
		}
	}
	return delivered
}

// Subscribe returns a subscription with a closed channel once the manager is closed.
func (m *EventManager) Subscribe() *Subscription {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	subscription := &Subscription{
		Events: make(chan Event, subscriptionBuffer),
	}
	if m.closed {
		close(subscription.Events)
		return subscription
	}
	m.subscriptions = append(m.subscriptions, subscription)
	return subscription
}

func (m *EventManager) Count() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.subscriptions)
}

func (m *EventManager) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, sub := range m.subscriptions {
		close(sub.Events)
	}
	m.subscriptions = nil
	m.closed = true
}
