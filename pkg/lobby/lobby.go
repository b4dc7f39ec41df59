package lobby

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/internal/transport"
	"github.com/blackcrown/lobby/pkg/admission"
	"github.com/blackcrown/lobby/pkg/protocol"
	"github.com/blackcrown/lobby/pkg/storage"
)

// Lobby is one participant's session: it folds the message stream of a
// connection into State and turns user actions into messages.
//
// The connection may deliver messages synchronously from inside Send, so
// the mutex is never held while calling into the connection.
type Lobby struct {
	logger     *zap.Logger
	connection transport.Connection
	storage    storage.Service
	clock      clockwork.Clock
	admission  *admission.Policy
	colors     *Colors
	events     *EventManager
	config     configuration

	mutex        sync.Mutex
	player       protocol.Player
	state        *State
	status       transport.State
	started      bool
	closed       bool
	left         bool
	unsubscribes []transport.Unsubscribe
}

func New(opts ...Option) *Lobby {
	l := &Lobby{
		colors: NewColors(),
		events: NewEventManager(),
		config: defaultConfig,
		state:  &State{},
		status: transport.StateConnecting,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = zap.NewNop()
	}

	if l.connection == nil {
		l.logger.Error("connection is required")
		return nil
	}

	if l.clock == nil {
		l.clock = clockwork.NewRealClock()
	}

	if l.admission == nil {
		l.admission = admission.NewPolicy(admission.WithClock(l.clock))
	}

	return l
}

// Start loads the player identity and subscribes to the connection.
// The player announces itself once the connection opens.
func (l *Lobby) Start() error {
	l.mutex.Lock()
	if l.left || l.closed {
		l.mutex.Unlock()
		return ErrClosed
	}
	if l.started {
		l.mutex.Unlock()
		return nil
	}
	l.loadPlayer()
	l.started = true
	l.mutex.Unlock()

	l.logger.Info("starting lobby",
		zap.String("address", l.connection.Address().String()),
		zap.String("playerID", string(l.player.ID)),
		zap.String("nickname", l.player.Nickname),
		zap.Bool("host", l.player.IsHost),
	)

	unsubscribes := []transport.Unsubscribe{
		l.connection.OnMessage(l.handleMessage),
		l.connection.OnClose(l.onClose),
		l.connection.OnOpen(l.onOpen),
	}

	l.mutex.Lock()
	l.unsubscribes = append(l.unsubscribes, unsubscribes...)
	l.mutex.Unlock()

	return nil
}

func (l *Lobby) loadPlayer() {
	id := l.player.ID
	name := l.config.PlayerName

	if l.storage != nil {
		if id == "" {
			id = l.storage.PlayerID()
		}
		if name == "" {
			name = l.storage.Settings().Nickname
		}
	}

	if id == "" {
		id = GeneratePlayerID()
		if l.storage != nil {
			err := l.storage.SetPlayerID(id)
			if err != nil {
				l.logger.Warn("failed to save player id", zap.Error(err))
			}
		}
	}

	if name == "" {
		name = DefaultPlayerName
	}

	l.player = protocol.Player{
		ID:       id,
		Nickname: name,
		Ready:    false,
		IsHost:   l.config.IsHost,
	}
}

func (l *Lobby) onOpen() {
	l.mutex.Lock()
	if l.left || l.closed {
		l.mutex.Unlock()
		return
	}
	l.status = transport.StateOpen
	player := l.player
	l.mutex.Unlock()

	l.logger.Info("connection open")
	l.publish(Event{Tag: EventConnectionOpened})
	l.announce(player)
}

func (l *Lobby) onClose() {
	l.mutex.Lock()
	l.status = transport.StateClosed
	l.closed = true
	l.mutex.Unlock()

	l.logger.Info("connection closed")
	l.publish(Event{Tag: EventConnectionClosed})
}

func (l *Lobby) announce(player protocol.Player) {
	message, err := protocol.NewJoinMessage(player)
	if err != nil {
		l.logger.Error("failed to create join message", zap.Error(err))
		return
	}
	l.connection.Send(message)
}

func (l *Lobby) handleMessage(message protocol.Message) {
	logger := l.logger.With(zap.String("type", string(message.Type)))

	var events []Event
	reannounce := false

	l.mutex.Lock()
	if l.left {
		l.mutex.Unlock()
		return
	}

	switch message.Type {
	case protocol.MessageTypeChat:
		var payload protocol.ChatPayload
		if err := message.DecodePayload(&payload); err != nil {
			logger.Warn("failed to decode payload", zap.Error(err))
			break
		}
		l.state.appendChat(payload, l.config.HistoryLimit)
		events = append(events, Event{Tag: EventStateChanged})

	case protocol.MessageTypeReady:
		var payload protocol.ReadyPayload
		if err := message.DecodePayload(&payload); err != nil {
			logger.Warn("failed to decode payload", zap.Error(err))
			break
		}
		if payload.PlayerID == l.player.ID {
			l.player.Ready = payload.Ready
		}
		if l.state.setReady(payload.PlayerID, payload.Ready) {
			events = append(events, Event{Tag: EventStateChanged})
		}

	case protocol.MessageTypePlayerJoin:
		var player protocol.Player
		if err := message.DecodePayload(&player); err != nil {
			logger.Warn("failed to decode payload", zap.Error(err))
			break
		}
		if player.ID == "" {
			logger.Warn("join without player id")
			break
		}
		switch l.state.join(player, l.config.MaxPlayers) {
		case joinAdded:
			logger.Info("player joined", zap.String("playerID", string(player.ID)), zap.String("nickname", player.Nickname))
			events = append(events, Event{Tag: EventStateChanged})
			reannounce = player.ID != l.player.ID
		case joinFull:
			logger.Info("lobby is full, join refused", zap.String("playerID", string(player.ID)))
			events = append(events, Event{Tag: EventLobbyFull, Data: player})
		case joinKnown:
		}

	case protocol.MessageTypePlayerLeave:
		var payload protocol.LeavePayload
		if err := message.DecodePayload(&payload); err != nil {
			logger.Warn("failed to decode payload", zap.Error(err))
			break
		}
		if l.state.leave(payload.PlayerID) {
			logger.Info("player left", zap.String("playerID", string(payload.PlayerID)))
			events = append(events, Event{Tag: EventStateChanged})
		}

	case protocol.MessageTypeGameStart:
		l.state.GameStarted = true
		events = append(events, Event{Tag: EventGameStarted}, Event{Tag: EventStateChanged})

	default:
		logger.Debug("ignoring unknown message type")
	}

	self := l.player
	l.mutex.Unlock()

	for _, event := range events {
		l.publish(event)
	}

	// Existing participants answer a newcomer so that it learns the roster.
	// A join from a known participant adds nothing, which ends the exchange.
	if reannounce {
		l.announce(self)
	}
}

func (l *Lobby) publish(event Event) {
	if !l.events.Send(event) {
		l.logger.Debug("event dropped by a slow subscriber", zap.Stringer("tag", event.Tag))
	}
}

func (l *Lobby) usable() error {
	if l.left || l.closed {
		return ErrClosed
	}
	if !l.started {
		return ErrNotStarted
	}
	return nil
}

// SendChat checks text against the admission policy and sends it on acceptance.
// A refused text is reported as *RejectedError and as an EventChatRejected.
func (l *Lobby) SendChat(text string) error {
	l.mutex.Lock()
	if err := l.usable(); err != nil {
		l.mutex.Unlock()
		return err
	}

	verdict := l.admission.Check(text)
	if !verdict.Accepted {
		config := l.admission.Config()
		l.mutex.Unlock()

		l.logger.Debug("chat message rejected", zap.String("reason", string(verdict.Reason)))
		l.publish(Event{Tag: EventChatRejected, Data: verdict})
		return &RejectedError{
			Verdict: verdict,
			message: verdict.Message(config),
		}
	}

	l.admission.Record(text)
	payload := protocol.ChatPayload{
		PlayerID:   l.player.ID,
		PlayerName: l.player.Nickname,
		Text:       strings.TrimSpace(text),
		Timestamp:  l.clock.Now().UnixMilli(),
	}
	l.mutex.Unlock()

	message, err := protocol.NewChatMessage(payload)
	if err != nil {
		return errors.Wrap(err, "failed to create chat message")
	}

	l.connection.Send(message)
	l.track("chat_sent", map[string]any{"length": utf8.RuneCountInString(payload.Text)})
	return nil
}

func (l *Lobby) ToggleReady() error {
	l.mutex.Lock()
	if err := l.usable(); err != nil {
		l.mutex.Unlock()
		return err
	}

	if _, ok := l.state.Player(l.player.ID); !ok {
		l.mutex.Unlock()
		return ErrNotInRoster
	}

	ready := !l.player.Ready
	l.player.Ready = ready
	l.state.setReady(l.player.ID, ready)
	playerID := l.player.ID
	l.mutex.Unlock()

	message, err := protocol.NewReadyMessage(playerID, ready)
	if err != nil {
		return errors.Wrap(err, "failed to create ready message")
	}

	l.publish(Event{Tag: EventStateChanged})
	l.connection.Send(message)
	l.track("ready_toggled", map[string]any{"ready": ready})
	return nil
}

func (l *Lobby) StartGame() error {
	l.mutex.Lock()
	if err := l.usable(); err != nil {
		l.mutex.Unlock()
		return err
	}
	if !l.player.IsHost {
		l.mutex.Unlock()
		return ErrNotHost
	}
	if !l.state.AllReady() {
		l.mutex.Unlock()
		return ErrNotAllReady
	}
	playersCount := len(l.state.Players)
	l.mutex.Unlock()

	message, err := protocol.NewGameStartMessage()
	if err != nil {
		return errors.Wrap(err, "failed to create game start message")
	}

	l.logger.Info("starting game", zap.Int("players", playersCount))
	l.connection.Send(message)
	l.track("game_started", map[string]any{"players": playersCount})
	return nil
}

// Leave announces the departure, closes the connection and the event
// subscriptions. Calling it again does nothing.
func (l *Lobby) Leave() {
	l.mutex.Lock()
	if l.left {
		l.mutex.Unlock()
		return
	}
	announce := l.started && !l.closed
	l.left = true
	playerID := l.player.ID
	unsubscribes := l.unsubscribes
	l.unsubscribes = nil
	l.mutex.Unlock()

	if announce {
		message, err := protocol.NewLeaveMessage(playerID)
		if err != nil {
			l.logger.Error("failed to create leave message", zap.Error(err))
		} else {
			l.connection.Send(message)
		}
	}

	l.connection.Close()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}

	l.mutex.Lock()
	l.status = transport.StateClosed
	l.mutex.Unlock()

	l.events.Close()
	l.logger.Info("left lobby")
}

func (l *Lobby) track(name string, props map[string]any) {
	if l.storage == nil {
		return
	}
	err := l.storage.Track(name, props)
	if err != nil {
		l.logger.Warn("failed to track event", zap.String("name", name), zap.Error(err))
	}
}

func (l *Lobby) Subscribe() *Subscription {
	return l.events.Subscribe()
}

// State returns a copy of the roster and history.
func (l *Lobby) State() *State {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.state.Clone()
}

func (l *Lobby) Player() protocol.Player {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.player
}

func (l *Lobby) Status() transport.State {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.status
}

func (l *Lobby) Address() protocol.Address {
	return l.connection.Address()
}

func (l *Lobby) MaxPlayers() int {
	return l.config.MaxPlayers
}

func (l *Lobby) AdmissionConfig() admission.Config {
	return l.admission.Config()
}

func (l *Lobby) ColorFor(id protocol.PlayerID) string {
	return l.colors.For(id)
}
