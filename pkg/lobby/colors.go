package lobby

import (
	"sync"

	"github.com/blackcrown/lobby/pkg/protocol"
)

var Palette = []string{
	"#6c8fff",
	"#3ddba0",
	"#f5c542",
	"#ff5c72",
	"#c084fc",
	"#fb923c",
	"#22d3ee",
	"#a3e635",
}

// Colors assigns palette colors to participants in first-seen order.
type Colors struct {
	mutex    sync.Mutex
	assigned map[protocol.PlayerID]string
	next     int
}

func NewColors() *Colors {
	return &Colors{
		assigned: make(map[protocol.PlayerID]string),
	}
}

func (c *Colors) For(id protocol.PlayerID) string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if color, ok := c.assigned[id]; ok {
		return color
	}

	color := Palette[c.next%len(Palette)]
	c.next++
	c.assigned[id] = color
	return color
}
