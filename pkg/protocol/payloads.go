package protocol

type PlayerID string

type Player struct {
	ID       PlayerID `json:"id"`
	Nickname string   `json:"nickname"`
	Ready    bool     `json:"ready"`
	IsHost   bool     `json:"isHost"`
}

type ChatPayload struct {
	PlayerID   PlayerID `json:"playerId"`
	PlayerName string   `json:"playerName"`
	Text       string   `json:"text"`
	Timestamp  int64    `json:"ts"` // unix milliseconds
}

type ReadyPayload struct {
	PlayerID PlayerID `json:"playerId"`
	Ready    bool     `json:"ready"`
}

type LeavePayload struct {
	PlayerID PlayerID `json:"playerId"`
}

type GameStartPayload struct{}

func NewChatMessage(payload ChatPayload) (Message, error) {
	return NewMessage(MessageTypeChat, payload)
}

func NewReadyMessage(playerID PlayerID, ready bool) (Message, error) {
	return NewMessage(MessageTypeReady, ReadyPayload{PlayerID: playerID, Ready: ready})
}

func NewJoinMessage(player Player) (Message, error) {
	return NewMessage(MessageTypePlayerJoin, player)
}

func NewLeaveMessage(playerID PlayerID) (Message, error) {
	return NewMessage(MessageTypePlayerLeave, LeavePayload{PlayerID: playerID})
}

func NewGameStartMessage() (Message, error) {
	return NewMessage(MessageTypeGameStart, GameStartPayload{})
}
