package matchers

import (
	"fmt"
	"testing"

	"github.com/blackcrown/lobby/pkg/protocol"
)

// MessageMatcher matches a protocol.Message of the given type whose payload
// decodes into T and satisfies the optional predicate.
type MessageMatcher[T any] struct {
	Matcher
	messageType protocol.MessageType
	predicate   func(T) bool
}

func NewMessageMatcher[T any](t *testing.T, messageType protocol.MessageType, predicate func(T) bool) *MessageMatcher[T] {
	return &MessageMatcher[T]{
		Matcher:     *NewMatcher(t),
		messageType: messageType,
		predicate:   predicate,
	}
}

func (m *MessageMatcher[T]) Matches(x interface{}) bool {
	message, ok := x.(protocol.Message)
	if !ok || message.Type != m.messageType {
		return false
	}

	var payload T
	if err := message.DecodePayload(&payload); err != nil {
		return false
	}

	if m.predicate != nil && !m.predicate(payload) {
		return false
	}

	m.Trigger(payload)
	return true
}

func (m *MessageMatcher[T]) String() string {
	return fmt.Sprintf("is %s message", m.messageType)
}

// WaitPayload returns the payload of the next matched message.
func (m *MessageMatcher[T]) WaitPayload() T {
	result, _ := m.Wait().(T)
	return result
}
