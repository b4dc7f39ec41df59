package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type MessageType string

const (
	MessageTypeChat        MessageType = "chat"
	MessageTypeReady       MessageType = "ready"
	MessageTypePlayerJoin  MessageType = "player:join"
	MessageTypePlayerLeave MessageType = "player:leave"
	MessageTypeGameStart   MessageType = "game:start"
)

// Message is the unit of transport. Payload shape is determined by Type.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func NewMessage(messageType MessageType, payload any) (Message, error) {
	if messageType == "" {
		return Message{}, errors.New("empty message type")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, errors.Wrap(err, "failed to marshal payload")
	}

	return Message{
		Type:    messageType,
		Payload: data,
	}, nil
}

func Marshal(message Message) ([]byte, error) {
	payload := message.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	data, err := json.Marshal(Message{Type: message.Type, Payload: payload})
	return data, errors.Wrap(err, "failed to marshal message")
}

func UnmarshalMessage(data []byte) (Message, error) {
	var message Message
	err := json.Unmarshal(data, &message)
	if err != nil {
		return Message{}, errors.Wrap(err, "failed to unmarshal message")
	}

	if message.Type == "" {
		return Message{}, errors.New("message has no type")
	}

	return message, nil
}

func (m Message) DecodePayload(target any) error {
	if len(m.Payload) == 0 {
		return errors.Errorf("message %s has no payload", m.Type)
	}
	err := json.Unmarshal(m.Payload, target)
	return errors.Wrapf(err, "failed to decode %s payload", m.Type)
}

// Clone returns a copy that shares no memory with m.
func (m Message) Clone() Message {
	clone := Message{Type: m.Type}
	if m.Payload != nil {
		clone.Payload = append(json.RawMessage(nil), m.Payload...)
	}
	return clone
}
