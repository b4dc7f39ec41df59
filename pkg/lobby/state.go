package lobby

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/blackcrown/lobby/pkg/protocol"
)

type ChatEntry struct {
	ID         string            `json:"id"`
	PlayerID   protocol.PlayerID `json:"playerId"`
	PlayerName string            `json:"playerName"`
	Text       string            `json:"text"`
	Timestamp  int64             `json:"ts"`
}

func chatEntryID(payload protocol.ChatPayload) string {
	return fmt.Sprintf("%d-%s", payload.Timestamp, payload.PlayerID)
}

// State is the roster and chat history folded from the message stream.
type State struct {
	Players     []protocol.Player `json:"players"`
	History     []ChatEntry       `json:"history"`
	GameStarted bool              `json:"gameStarted"`
}

func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	return &State{
		Players:     slices.Clone(s.Players),
		History:     slices.Clone(s.History),
		GameStarted: s.GameStarted,
	}
}

func (s *State) playerIndex(id protocol.PlayerID) int {
	return slices.IndexFunc(s.Players, func(player protocol.Player) bool {
		return player.ID == id
	})
}

func (s *State) Player(id protocol.PlayerID) (protocol.Player, bool) {
	index := s.playerIndex(id)
	if index < 0 {
		return protocol.Player{}, false
	}
	return s.Players[index], true
}

// AllReady reports whether every non-host player is ready.
// A lobby with only the host is considered ready.
func (s *State) AllReady() bool {
	for _, player := range s.Players {
		if !player.IsHost && !player.Ready {
			return false
		}
	}
	return true
}

func (s *State) appendChat(payload protocol.ChatPayload, limit int) {
	s.History = append(s.History, ChatEntry{
		ID:         chatEntryID(payload),
		PlayerID:   payload.PlayerID,
		PlayerName: payload.PlayerName,
		Text:       payload.Text,
		Timestamp:  payload.Timestamp,
	})
	if limit > 0 && len(s.History) > limit {
		s.History = slices.Clone(s.History[len(s.History)-limit:])
	}
}

func (s *State) setReady(id protocol.PlayerID, ready bool) bool {
	index := s.playerIndex(id)
	if index < 0 || s.Players[index].Ready == ready {
		return false
	}
	s.Players[index].Ready = ready
	return true
}

type joinResult int

const (
	joinAdded joinResult = iota
	joinKnown
	joinFull
)

func (s *State) join(player protocol.Player, maxPlayers int) joinResult {
	if s.playerIndex(player.ID) >= 0 {
		return joinKnown
	}
	if maxPlayers > 0 && len(s.Players) >= maxPlayers {
		return joinFull
	}
	s.Players = append(s.Players, player)
	return joinAdded
}

func (s *State) leave(id protocol.PlayerID) bool {
	index := s.playerIndex(id)
	if index < 0 {
		return false
	}
	s.Players = slices.Delete(s.Players, index, index+1)
	return true
}
