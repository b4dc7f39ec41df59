package transport

import (
	"bytes"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"

	"github.com/blackcrown/lobby/internal/testcommon"
	"github.com/blackcrown/lobby/pkg/protocol"
)

func TestBroadcast(t *testing.T) {
	suite.Run(t, new(BroadcastSuite))
}

type BroadcastSuite struct {
	testcommon.Suite
	hub *Hub
}

func (s *BroadcastSuite) SetupTest() {
	s.hub = NewHub()
}

func (s *BroadcastSuite) dial(address protocol.Address) Connection {
	c := Dial(address, WithHub(s.hub), WithLogger(s.Logger))
	s.Require().Equal(KindBroadcast, c.Kind())
	s.Require().Equal(address, c.Address())
	return c
}

type recorder struct {
	mutex    sync.Mutex
	messages []protocol.Message
}

func (r *recorder) handle(message protocol.Message) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recorder) received() []protocol.Message {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]protocol.Message(nil), r.messages...)
}

func (s *BroadcastSuite) chatMessage() protocol.Message {
	message, err := protocol.NewChatMessage(protocol.ChatPayload{
		PlayerID:   protocol.PlayerID(gofakeit.UUID()),
		PlayerName: gofakeit.Username(),
		Text:       gofakeit.Sentence(3),
		Timestamp:  gofakeit.Int64(),
	})
	s.Require().NoError(err)
	return message
}

func (s *BroadcastSuite) TestSelfEcho() {
	c := s.dial("mock://room-1")
	defer c.Close()

	r := &recorder{}
	c.OnMessage(r.handle)

	message, err := protocol.NewMessage(protocol.MessageTypeChat, map[string]string{"text": "hi"})
	s.Require().NoError(err)

	c.Send(message)

	s.Require().Equal([]protocol.Message{message}, r.received())
}

func (s *BroadcastSuite) TestTwoTabs() {
	first := s.dial("mock://room-1")
	defer first.Close()
	second := s.dial("mock://room-1")
	defer second.Close()

	s.Require().Equal(2, s.hub.Count("bc-ws-room-1"))

	r1 := &recorder{}
	r2 := &recorder{}
	first.OnMessage(r1.handle)
	second.OnMessage(r2.handle)

	message := s.chatMessage()
	first.Send(message)

	s.Require().Equal([]protocol.Message{message}, r1.received())
	s.Require().Equal([]protocol.Message{message}, r2.received())

	reply := s.chatMessage()
	second.Send(reply)

	s.Require().Equal([]protocol.Message{message, reply}, r1.received())
	s.Require().Equal([]protocol.Message{message, reply}, r2.received())
}

func (s *BroadcastSuite) TestRoomsAreIsolated() {
	first := s.dial("mock://room-1")
	defer first.Close()
	second := s.dial("mock://room-2")
	defer second.Close()

	r := &recorder{}
	second.OnMessage(r.handle)

	first.Send(s.chatMessage())
	s.Require().Empty(r.received())
}

func (s *BroadcastSuite) TestFanOut() {
	c := s.dial("mock://room-1")
	defer c.Close()

	const subscribersCount = 3
	recorders := make([]*recorder, subscribersCount)
	for i := range recorders {
		recorders[i] = &recorder{}
		c.OnMessage(recorders[i].handle)
	}

	message := s.chatMessage()
	c.Send(message)

	for _, r := range recorders {
		s.Require().Equal([]protocol.Message{message}, r.received())
	}
}

func (s *BroadcastSuite) TestUnsubscribe() {
	c := s.dial("mock://room-1")
	defer c.Close()

	kept := &recorder{}
	removed := &recorder{}
	c.OnMessage(kept.handle)
	unsubscribe := c.OnMessage(removed.handle)

	unsubscribe()
	unsubscribe()

	c.Send(s.chatMessage())

	s.Require().Len(kept.received(), 1)
	s.Require().Empty(removed.received())
}

func (s *BroadcastSuite) TestOpenIsDeferred() {
	c := s.dial("mock://room-1")
	defer c.Close()

	opened := make(chan struct{}, 2)
	c.OnOpen(func() { opened <- struct{}{} })
	testcommon.Receive[struct{}](&s.Suite, opened)

	// Subscribing after open reports it immediately
	c.OnOpen(func() { opened <- struct{}{} })
	s.Require().Len(opened, 1)
}

func (s *BroadcastSuite) TestClose() {
	c := s.dial("mock://room-1")
	peer := s.dial("mock://room-1")
	defer peer.Close()

	closed := 0
	c.OnClose(func() { closed++ })

	own := &recorder{}
	c.OnMessage(own.handle)
	remote := &recorder{}
	peer.OnMessage(remote.handle)

	c.Close()
	c.Close()

	s.Require().Equal(1, closed)
	s.Require().Equal(1, s.hub.Count("bc-ws-room-1"))

	// Sends after close are dropped without echo
	c.Send(s.chatMessage())
	s.Require().Empty(own.received())
	s.Require().Empty(remote.received())

	// Messages from peers no longer reach the closed connection
	peer.Send(s.chatMessage())
	s.Require().Empty(own.received())
	s.Require().Len(remote.received(), 1)

	// Late close subscribers learn about the closure right away
	lateClosed := false
	c.OnClose(func() { lateClosed = true })
	s.Require().True(lateClosed)
	s.Require().Equal(1, closed)
}

func (s *BroadcastSuite) TestSendFromListener() {
	first := s.dial("mock://room-1")
	defer first.Close()
	second := s.dial("mock://room-1")
	defer second.Close()

	reply := s.chatMessage()
	second.OnMessage(func(message protocol.Message) {
		if message.Type == protocol.MessageTypeReady {
			second.Send(reply)
		}
	})

	r := &recorder{}
	first.OnMessage(r.handle)

	ready, err := protocol.NewReadyMessage("p1", true)
	s.Require().NoError(err)
	first.Send(ready)

	s.Require().Equal([]protocol.Message{ready, reply}, r.received())
}

func sameMessage(a, b protocol.Message) bool {
	return a.Type == b.Type && bytes.Equal(a.Payload, b.Payload)
}

func (s *BroadcastSuite) namedMessage(name string) protocol.Message {
	message, err := protocol.NewMessage(protocol.MessageTypeChat, protocol.ChatPayload{Text: name})
	s.Require().NoError(err)
	return message
}

func (s *BroadcastSuite) TestOwnSendsStayOrdered() {
	first := s.dial("mock://room-1")
	defer first.Close()
	second := s.dial("mock://room-1")
	defer second.Close()
	third := s.dial("mock://room-1")
	defer third.Close()

	opening := s.namedMessage("a1")
	reply := s.namedMessage("b-reply")
	answer := s.namedMessage("a2")

	second.OnMessage(func(message protocol.Message) {
		if sameMessage(message, opening) {
			second.Send(reply)
		}
	})
	first.OnMessage(func(message protocol.Message) {
		if sameMessage(message, reply) {
			first.Send(answer)
		}
	})

	recorders := []*recorder{{}, {}, {}}
	first.OnMessage(recorders[0].handle)
	second.OnMessage(recorders[1].handle)
	third.OnMessage(recorders[2].handle)

	first.Send(opening)

	expected := []protocol.Message{opening, reply, answer}
	for _, r := range recorders {
		s.Require().Equal(expected, r.received())
	}
}

func (s *BroadcastSuite) TestConcurrentSendsKeepPerConnectionOrder() {
	const messagesCount = 50

	first := s.dial("mock://room-1")
	defer first.Close()
	second := s.dial("mock://room-1")
	defer second.Close()

	r := &recorder{}
	second.OnMessage(r.handle)

	sent := make([][]protocol.Message, 2)
	for i := range sent {
		for j := 0; j < messagesCount; j++ {
			sent[i] = append(sent[i], s.namedMessage(gofakeit.UUID()))
		}
	}

	wg := sync.WaitGroup{}
	for i, c := range []Connection{first, second} {
		wg.Add(1)
		go func(c Connection, messages []protocol.Message) {
			defer wg.Done()
			for _, message := range messages {
				c.Send(message)
			}
		}(c, sent[i])
	}
	wg.Wait()

	received := r.received()
	s.Require().Len(received, 2*messagesCount)

	for _, own := range sent {
		position := 0
		for _, message := range received {
			if position < len(own) && sameMessage(message, own[position]) {
				position++
			}
		}
		s.Require().Equal(len(own), position)
	}
}

func (s *BroadcastSuite) TestDefaultHub() {
	address, err := protocol.NewRoomAddress()
	s.Require().NoError(err)

	c := Dial(address)
	s.Require().Equal(1, DefaultHub().Count(address.ChannelName()))

	c.Close()
	s.Require().Zero(DefaultHub().Count(address.ChannelName()))
}
