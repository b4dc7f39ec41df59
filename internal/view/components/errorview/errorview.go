package errorview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcrown/lobby/internal/view/messages"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5c72"))

type Model struct {
	err error
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ErrorMessage:
		m.err = msg.Err
	}
	return m
}

func (m Model) Error() error {
	return m.err
}

func (m Model) View() string {
	if m.err == nil {
		return ""
	}
	return errorStyle.Render("✗ " + m.err.Error())
}
