package lobby

import (
	"github.com/google/uuid"

	"github.com/blackcrown/lobby/pkg/protocol"
)

func GeneratePlayerID() protocol.PlayerID {
	return protocol.PlayerID(uuid.New().String())
}
