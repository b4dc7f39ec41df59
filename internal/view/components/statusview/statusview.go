package statusview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcrown/lobby/internal/transport"
	"github.com/blackcrown/lobby/internal/view/messages"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/protocol"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddba0"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c542"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5c72"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7590"))
)

type Model struct {
	status  transport.State
	address protocol.Address
	kind    transport.Kind
}

func New(address protocol.Address) Model {
	kind := transport.KindWebsocket
	if address.IsMock() {
		kind = transport.KindBroadcast
	}
	return Model{
		status:  transport.StateConnecting,
		address: address,
		kind:    kind,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.LobbyEvent:
		switch msg.Event.Tag {
		case lobby.EventConnectionOpened:
			m.status = transport.StateOpen
		case lobby.EventConnectionClosed:
			m.status = transport.StateClosed
		}
	case messages.LobbyClosed:
		m.status = transport.StateClosed
	}
	return m
}

func (m Model) Status() transport.State {
	return m.status
}

func (m Model) View() string {
	marker := "●"
	var text string
	switch m.status {
	case transport.StateOpen:
		marker = okStyle.Render(marker)
		text = " online"
	case transport.StateConnecting:
		marker = warnStyle.Render(marker)
		text = " connecting"
	default:
		marker = dangerStyle.Render(marker)
		text = " offline"
	}

	details := mutedStyle.Render(" " + string(m.kind) + " " + m.address.String())
	return lipgloss.JoinHorizontal(lipgloss.Left, marker, text, details)
}
