package lobbyevents

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackcrown/lobby/internal/view/messages"
	"github.com/blackcrown/lobby/pkg/lobby"
)

// Model turns a lobby subscription into a stream of tea messages,
// reading the next event only after the previous one was handled.
type Model struct {
	subscription *lobby.Subscription
}

func New(subscription *lobby.Subscription) Model {
	return Model{
		subscription: subscription,
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case messages.LobbyEvent:
		return m, m.waitForEvent()
	}
	return m, nil
}

func (m Model) waitForEvent() tea.Cmd {
	if m.subscription == nil {
		return nil
	}
	events := m.subscription.Events
	return func() tea.Msg {
		event, more := <-events
		if !more {
			return messages.LobbyClosed{}
		}
		return messages.LobbyEvent{Event: event}
	}
}
