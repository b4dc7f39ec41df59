package rosterview

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/blackcrown/lobby/internal/view/messages"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/protocol"
)

func TestView(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	colors := lobby.NewColors()

	m := New("", 8, colors.For)
	m.SetSelf("p2")

	view := m.View()
	require.Contains(t, view, "Players 0/8")
	require.Contains(t, view, "Waiting for player...")

	m = m.Update(messages.StateMessage{State: &lobby.State{
		Players: []protocol.Player{
			{ID: "p1", Nickname: "captain", IsHost: true},
			{ID: "p2", Nickname: "deckhand", Ready: true},
		},
	}})

	view = m.View()
	require.Contains(t, view, "Players 2/8")
	require.Contains(t, view, "captain ♛ ·")
	require.Contains(t, view, "deckhand you ✓")
}

func TestShade(t *testing.T) {
	require.Equal(t, lipgloss.Color("#000000"), Shade("#000000"))
	require.NotEqual(t, lipgloss.Color("#6c8fff"), Shade("#6c8fff"))
}
