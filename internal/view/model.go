package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/internal/config"
	"github.com/blackcrown/lobby/internal/transport"
	"github.com/blackcrown/lobby/internal/view/commands"
	"github.com/blackcrown/lobby/internal/view/components/chatview"
	"github.com/blackcrown/lobby/internal/view/components/errorview"
	"github.com/blackcrown/lobby/internal/view/components/lobbyevents"
	"github.com/blackcrown/lobby/internal/view/components/rosterview"
	"github.com/blackcrown/lobby/internal/view/components/statusview"
	"github.com/blackcrown/lobby/internal/view/messages"
	"github.com/blackcrown/lobby/internal/view/update"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/protocol"
	"github.com/blackcrown/lobby/pkg/storage"
)

type model struct {
	lobby   *lobby.Lobby
	storage storage.Service

	fatalError    error
	started       bool
	gameStarted   bool
	player        protocol.Player
	theme         storage.Theme
	reduceEffects bool
	styles        styles
	keys          keyMap

	input      textinput.Model
	spinner    spinner.Model
	errorView  errorview.Model
	rosterView rosterview.Model
	chatView   chatview.Model
	statusView statusview.Model
	events     lobbyevents.Model
}

func initialModel(l *lobby.Lobby, s storage.Service) model {
	settings := storage.DefaultSettings()
	if s != nil {
		settings = s.Settings()
	}

	return model{
		lobby:         l,
		storage:       s,
		theme:         settings.Theme,
		reduceEffects: settings.ReduceEffects && config.IsEnabled(config.FlagReduceEffects),
		styles:        newStyles(settings.Theme),
		keys:          defaultKeyMap,
		input:         createInput(l.AdmissionConfig().MaxLength),
		spinner:       createSpinner(),
		errorView:     errorview.New(),
		rosterView:    rosterview.New("", l.MaxPlayers(), l.ColorFor),
		chatView:      chatview.New(l.ColorFor),
		statusView:    statusview.New(l.Address()),
		events:        lobbyevents.New(l.Subscribe()),
	}
}

func createInput(maxLength int) textinput.Model {
	input := textinput.New()
	input.Placeholder = "Message, or /ready /start /quit"
	input.Prompt = "> "
	input.CharLimit = maxLength
	input.Focus()
	return input
}

func createSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.events.Init(),
		commands.StartLobby(m.lobby),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := update.NewUpdateCommands()

	switch msg := msg.(type) {
	case messages.FatalErrorMessage:
		m.fatalError = msg.Err

	case messages.LobbyStarted:
		m.started = true
		m.player = m.lobby.Player()
		m.rosterView.SetSelf(m.player.ID)
		cmds.AppendMessage(messages.StateMessage{State: m.lobby.State()})

	case messages.LobbyEvent:
		switch msg.Event.Tag {
		case lobby.EventGameStarted:
			m.gameStarted = true
		case lobby.EventLobbyFull:
			m.showError(m.lobbyFullError(msg.Event))
		}
		m.player = m.lobby.Player()
		cmds.AppendMessage(messages.StateMessage{State: m.lobby.State()})

	case messages.ThemeChanged:
		m.theme = msg.Theme
		m.styles = newStyles(msg.Theme)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			cmds.AppendCommand(commands.QuitApp(m.lobby))
		case key.Matches(msg, m.keys.Send):
			cmds.AppendCommand(m.processInput())
		case !config.IsEnabled(config.FlagKeyboardShortcuts):
		case key.Matches(msg, m.keys.ToggleReady):
			cmds.AppendCommand(commands.ToggleReady(m.lobby))
		case key.Matches(msg, m.keys.StartGame):
			cmds.AppendCommand(commands.StartGame(m.lobby))
		case key.Matches(msg, m.keys.ToggleTheme) && config.IsEnabled(config.FlagThemeToggle):
			cmds.AppendCommand(commands.ToggleTheme(m.storage, m.theme))
		}
	}

	m.input, cmds.InputCommand = m.input.Update(msg)
	if !m.reduceEffects {
		m.spinner, cmds.SpinnerCommand = m.spinner.Update(msg)
	}
	m.errorView = m.errorView.Update(msg)
	m.rosterView = m.rosterView.Update(msg)
	m.chatView = m.chatView.Update(msg)
	m.statusView = m.statusView.Update(msg)
	m.events, cmds.EventsCommand = m.events.Update(msg)

	return m, cmds.Batch()
}

func (m *model) showError(err error) {
	m.errorView = m.errorView.Update(messages.NewErrorMessage(err))
}

func (m model) lobbyFullError(event lobby.Event) error {
	refused, ok := event.Data.(protocol.Player)
	if !ok || refused.ID == m.player.ID {
		return errors.New("lobby is full")
	}
	return errors.Errorf("lobby is full, %s could not join", refused.Nickname)
}

// processInput sends the input as chat unless it is a /command.
func (m *model) processInput() tea.Cmd {
	value := m.input.Value()
	m.input.Reset()

	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "/") {
		return commands.SendChat(m.lobby, value)
	}

	command := strings.ToLower(strings.Fields(trimmed)[0])
	config.Logger.Debug("user command", zap.String("command", command))

	switch command {
	case "/ready":
		return commands.ToggleReady(m.lobby)
	case "/start":
		return commands.StartGame(m.lobby)
	case "/quit":
		return commands.QuitApp(m.lobby)
	case "/theme":
		if config.IsEnabled(config.FlagThemeToggle) {
			return commands.ToggleTheme(m.storage, m.theme)
		}
	}

	return func() tea.Msg {
		return messages.NewErrorMessage(errors.Errorf("unknown command: %s", command))
	}
}

func (m model) View() string {
	if m.fatalError != nil {
		return fmt.Sprintf(" fatal error: %s\n%s", m.fatalError, renderLogPath())
	}

	rows := make([]string, 0, 8)
	if config.Debug() {
		rows = append(rows, m.styles.muted.Render(renderLogPath()), "")
	}

	rows = append(rows, m.renderHeader())
	if config.IsEnabled(config.FlagStatusBadge) {
		rows = append(rows, m.renderStatus())
	}
	rows = append(rows, "")

	if m.gameStarted {
		rows = append(rows, m.styles.banner.Render("The game is starting!"), "")
	}

	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Top, m.rosterView.View(), " ", m.chatView.View()),
		m.input.View(),
		m.errorView.View(),
		m.renderHelp(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Left, "  ", lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m model) renderHeader() string {
	header := m.styles.title.Render("BlackCrown") + m.styles.muted.Render(" / Lobby")
	if m.player.Nickname != "" {
		header += "  " + m.styles.accent.Render("@"+m.player.Nickname)
	}
	if m.player.IsHost {
		header += m.styles.muted.Render(" (host)")
	}
	return header
}

func (m model) renderStatus() string {
	status := m.statusView.View()
	if m.statusView.Status() == transport.StateConnecting && !m.reduceEffects {
		status = m.spinner.View() + " " + status
	}
	return status
}

func (m model) renderHelp() string {
	help := []string{"enter send", "/ready", "/start", "/quit"}
	if config.IsEnabled(config.FlagKeyboardShortcuts) {
		help = append(help, "ctrl+r ready", "ctrl+g start")
		if config.IsEnabled(config.FlagThemeToggle) {
			help = append(help, "ctrl+t theme")
		}
	}
	return m.styles.muted.Render(strings.Join(help, " · "))
}

func renderLogPath() string {
	path := strings.Replace(config.LogFilePath, " ", "%20", -1)
	return fmt.Sprintf("Log: file:///%s", path)
}

var _ tea.Model = (*model)(nil)
