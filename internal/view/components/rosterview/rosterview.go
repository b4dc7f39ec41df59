package rosterview

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/blackcrown/lobby/internal/view/messages"
	"github.com/blackcrown/lobby/pkg/protocol"
)

const minimumRows = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7590"))
	readyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddba0"))
	crownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c542"))
	youStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c8fff")).Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	badgeBase   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	blackColour = termenv.ConvertToRGB(termenv.RGBColor("#000000"))
)

type Model struct {
	players    []protocol.Player
	self       protocol.PlayerID
	maxPlayers int
	colorFor   func(protocol.PlayerID) string
	width      int
}

func New(self protocol.PlayerID, maxPlayers int, colorFor func(protocol.PlayerID) string) Model {
	return Model{
		self:       self,
		maxPlayers: maxPlayers,
		colorFor:   colorFor,
		width:      30,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.StateMessage:
		if msg.State != nil {
			m.players = msg.State.Players
		}
	}
	return m
}

// SetSelf is used once the player identity is known.
func (m *Model) SetSelf(self protocol.PlayerID) {
	m.self = self
}

func (m Model) View() string {
	rows := make([]string, 0, len(m.players)+minimumRows+1)
	rows = append(rows, titleStyle.Render("Players")+mutedStyle.Render(fmt.Sprintf(" %d/%d", len(m.players), m.maxPlayers)))

	for _, player := range m.players {
		rows = append(rows, m.renderPlayer(player))
	}

	for i := len(m.players); i < minimumRows; i++ {
		rows = append(rows, mutedStyle.Render("   Waiting for player..."))
	}

	return panelStyle.Width(m.width).Render(strings.Join(rows, "\n"))
}

func (m Model) renderPlayer(player protocol.Player) string {
	builder := strings.Builder{}
	builder.WriteString(m.renderBadge(player))
	builder.WriteString(" ")
	builder.WriteString(player.Nickname)

	if player.IsHost {
		builder.WriteString(crownStyle.Render(" ♛"))
	}
	if player.ID == m.self {
		builder.WriteString(youStyle.Render(" you"))
	}

	if player.Ready {
		builder.WriteString(readyStyle.Render(" ✓"))
	} else {
		builder.WriteString(mutedStyle.Render(" ·"))
	}

	return builder.String()
}

func (m Model) renderBadge(player protocol.Player) string {
	initial := "?"
	if r, _ := utf8.DecodeRuneInString(player.Nickname); r != utf8.RuneError {
		initial = string(unicode.ToUpper(r))
	}

	if m.colorFor == nil {
		return badgeBase.Render(initial)
	}

	color := m.colorFor(player.ID)
	return badgeBase.Copy().
		Foreground(lipgloss.Color(color)).
		Background(Shade(color)).
		Render(initial)
}

// Shade darkens a palette color for use as a badge background.
func Shade(hex string) lipgloss.Color {
	c := termenv.ConvertToRGB(termenv.RGBColor(hex))
	return lipgloss.Color(c.BlendRgb(blackColour, 0.8).Hex())
}
