package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/blackcrown/lobby/internal/view/messages"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/storage"
)

func StartLobby(l *lobby.Lobby) tea.Cmd {
	return func() tea.Msg {
		err := l.Start()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to start lobby"),
			}
		}
		return messages.LobbyStarted{}
	}
}

func SendChat(l *lobby.Lobby, text string) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(l.SendChat(text))
	}
}

func ToggleReady(l *lobby.Lobby) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(l.ToggleReady())
	}
}

func StartGame(l *lobby.Lobby) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(l.StartGame())
	}
}

// ToggleTheme persists the next theme. Without storage the theme only
// changes for this session.
func ToggleTheme(s storage.Service, current storage.Theme) tea.Cmd {
	return func() tea.Msg {
		next := current.Toggle()
		if s == nil {
			return messages.ThemeChanged{Theme: next}
		}

		err := s.UpdateSettings(func(settings *storage.Settings) {
			settings.Theme = next
		})
		if err != nil {
			return messages.NewErrorMessage(errors.Wrap(err, "failed to save theme"))
		}
		return messages.ThemeChanged{Theme: next}
	}
}

func QuitApp(l *lobby.Lobby) tea.Cmd {
	return func() tea.Msg {
		if l != nil {
			l.Leave()
		}
		return tea.Quit()
	}
}
