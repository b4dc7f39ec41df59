package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/blackcrown/lobby/internal/testcommon"
	"github.com/blackcrown/lobby/pkg/protocol"
)

// relay is a minimal lobby server: every frame is forwarded to all clients.
type relay struct {
	upgrader  websocket.Upgrader
	mutex     sync.Mutex
	clients   map[*websocket.Conn]struct{}
	connected chan struct{}
}

func newRelay() *relay {
	return &relay{
		clients:   make(map[*websocket.Conn]struct{}),
		connected: make(chan struct{}, 10),
	}
}

func (r *relay) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	r.mutex.Lock()
	r.clients[conn] = struct{}{}
	r.mutex.Unlock()
	r.connected <- struct{}{}

	defer func() {
		r.mutex.Lock()
		delete(r.clients, conn)
		r.mutex.Unlock()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		r.broadcast(data)
	}
}

func (r *relay) broadcast(data []byte) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for client := range r.clients {
		_ = client.WriteMessage(websocket.TextMessage, data)
	}
}

func (r *relay) disconnectAll() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for client := range r.clients {
		message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "bye")
		_ = client.WriteControl(websocket.CloseMessage, message, time.Now().Add(time.Second))
		_ = client.Close()
	}
}

func TestSocket(t *testing.T) {
	suite.Run(t, new(SocketSuite))
}

type SocketSuite struct {
	testcommon.Suite
	relay   *relay
	server  *httptest.Server
	address protocol.Address
}

func (s *SocketSuite) SetupTest() {
	s.relay = newRelay()
	s.server = httptest.NewServer(s.relay)
	s.address = protocol.Address("ws" + strings.TrimPrefix(s.server.URL, "http"))
}

func (s *SocketSuite) TearDownTest() {
	s.server.Close()
}

type openedConnection struct {
	Connection
	messages chan protocol.Message
	closed   chan struct{}
}

func (s *SocketSuite) dialOpen() *openedConnection {
	c := &openedConnection{
		Connection: Dial(s.address, WithLogger(s.Logger)),
		messages:   make(chan protocol.Message, 10),
		closed:     make(chan struct{}, 10),
	}
	s.Require().Equal(KindWebsocket, c.Kind())

	opened := make(chan struct{}, 1)
	c.OnOpen(func() { opened <- struct{}{} })
	c.OnMessage(func(message protocol.Message) { c.messages <- message })
	c.OnClose(func() { c.closed <- struct{}{} })

	testcommon.Receive[struct{}](&s.Suite, opened)
	testcommon.Receive[struct{}](&s.Suite, s.relay.connected)
	return c
}

func (s *SocketSuite) TestRoundTrip() {
	c := s.dialOpen()
	defer c.Close()

	sent, err := protocol.NewReadyMessage("p1", true)
	s.Require().NoError(err)

	c.Send(sent)

	received := testcommon.Receive[protocol.Message](&s.Suite, c.messages)
	s.Require().Equal(sent, received)
}

func (s *SocketSuite) TestTwoClients() {
	first := s.dialOpen()
	defer first.Close()
	second := s.dialOpen()
	defer second.Close()

	sent, err := protocol.NewJoinMessage(protocol.Player{ID: "p2", Nickname: "DeepFisher"})
	s.Require().NoError(err)

	first.Send(sent)

	s.Require().Equal(sent, testcommon.Receive[protocol.Message](&s.Suite, first.messages))
	s.Require().Equal(sent, testcommon.Receive[protocol.Message](&s.Suite, second.messages))
}

func (s *SocketSuite) TestMalformedFramesDropped() {
	c := s.dialOpen()
	defer c.Close()

	s.relay.broadcast([]byte("{not json"))
	s.relay.broadcast([]byte(`{"payload":{}}`))

	valid, err := protocol.NewGameStartMessage()
	s.Require().NoError(err)
	data, err := protocol.Marshal(valid)
	s.Require().NoError(err)
	s.relay.broadcast(data)

	s.Require().Equal(valid, testcommon.Receive[protocol.Message](&s.Suite, c.messages))
	s.Require().Empty(c.messages)
	s.Require().Empty(c.closed)
}

func (s *SocketSuite) TestServerDisconnect() {
	c := s.dialOpen()

	s.relay.disconnectAll()
	testcommon.Receive[struct{}](&s.Suite, c.closed)

	// Teardown racing with the server-initiated close notifies nobody again
	c.Close()
	s.Require().Empty(c.closed)

	message, err := protocol.NewGameStartMessage()
	s.Require().NoError(err)
	c.Send(message)
	s.Require().Empty(c.messages)
}

func (s *SocketSuite) TestCloseIsIdempotent() {
	c := s.dialOpen()

	c.Close()
	c.Close()

	testcommon.Receive[struct{}](&s.Suite, c.closed)
	s.Require().Empty(c.closed)
}

func (s *SocketSuite) TestSendBeforeOpen() {
	c := Dial("wss://example.invalid", WithLogger(s.Logger))
	s.Require().Equal(KindWebsocket, c.Kind())

	delivered := make(chan protocol.Message, 1)
	c.OnMessage(func(message protocol.Message) { delivered <- message })
	closed := make(chan struct{}, 1)
	c.OnClose(func() { closed <- struct{}{} })

	message, err := protocol.NewGameStartMessage()
	s.Require().NoError(err)

	s.Require().NotPanics(func() {
		c.Send(message)
	})
	s.Require().Empty(delivered)

	c.Close()
	testcommon.Receive[struct{}](&s.Suite, closed)
	s.Require().Empty(delivered)
}

func (s *SocketSuite) TestDialFailure() {
	s.server.Close()

	c := Dial(s.address, WithLogger(s.Logger))
	opened := make(chan struct{}, 1)
	c.OnOpen(func() { opened <- struct{}{} })
	closed := make(chan struct{}, 1)
	c.OnClose(func() { closed <- struct{}{} })

	testcommon.Receive[struct{}](&s.Suite, closed)
	s.Require().Empty(opened)
}
