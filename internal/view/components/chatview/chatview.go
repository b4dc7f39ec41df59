package chatview

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcrown/lobby/internal/view/messages"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/protocol"
)

const DefaultHeight = 12

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7590"))
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type Model struct {
	history  []lobby.ChatEntry
	colorFor func(protocol.PlayerID) string
	height   int
	width    int
	location *time.Location
}

func New(colorFor func(protocol.PlayerID) string) Model {
	return Model{
		colorFor: colorFor,
		height:   DefaultHeight,
		width:    48,
		location: time.Local,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.StateMessage:
		if msg.State != nil {
			m.history = msg.State.History
		}
	case tea.WindowSizeMsg:
		if msg.Height > 16 {
			m.height = msg.Height - 10
		}
		if msg.Width > 80 {
			m.width = msg.Width - 40
		}
	}
	return m
}

func (m Model) View() string {
	rows := make([]string, 0, m.height+1)
	rows = append(rows, titleStyle.Render("Chat"))

	if len(m.history) == 0 {
		rows = append(rows, mutedStyle.Render("No messages yet. Say hi!"))
	}

	entries := m.history
	if len(entries) > m.height {
		entries = entries[len(entries)-m.height:]
	}
	for _, entry := range entries {
		rows = append(rows, m.renderEntry(entry))
	}

	return panelStyle.Width(m.width).Render(strings.Join(rows, "\n"))
}

func (m Model) renderEntry(entry lobby.ChatEntry) string {
	timestamp := time.UnixMilli(entry.Timestamp).In(m.location).Format("15:04")

	nameStyle := lipgloss.NewStyle().Bold(true)
	if m.colorFor != nil {
		nameStyle = nameStyle.Foreground(lipgloss.Color(m.colorFor(entry.PlayerID)))
	}

	return mutedStyle.Render(timestamp) + " " + nameStyle.Render(entry.PlayerName) + " " + entry.Text
}
