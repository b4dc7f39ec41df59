package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Commands collects the commands produced during one Update call.
type Commands struct {
	commands       []tea.Cmd
	InputCommand   tea.Cmd
	SpinnerCommand tea.Cmd
	EventsCommand  tea.Cmd
}

func NewUpdateCommands() *Commands {
	return &Commands{
		commands: make([]tea.Cmd, 0, 4),
	}
}

func (u *Commands) AppendCommand(command tea.Cmd) {
	u.commands = append(u.commands, command)
}

func (u *Commands) AppendMessage(message tea.Msg) {
	u.commands = append(u.commands, func() tea.Msg {
		return message
	})
}

func (u *Commands) Batch() tea.Cmd {
	u.commands = append(u.commands,
		u.InputCommand,
		u.SpinnerCommand,
		u.EventsCommand,
	)
	return tea.Batch(u.commands...)
}
