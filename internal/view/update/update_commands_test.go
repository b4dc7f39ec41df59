package update

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/blackcrown/lobby/internal/testcommon"
)

func TestUpdateCommands(t *testing.T) {
	suite.Run(t, new(UpdateCommandsSuite))
}

type UpdateCommandsSuite struct {
	testcommon.Suite
}

func (s *UpdateCommandsSuite) TestEmpty() {
	update := NewUpdateCommands()
	s.Require().Nil(update.Batch())
}

func (s *UpdateCommandsSuite) TestAppendCommand() {
	sentMessage := gofakeit.LetterN(5)

	update := NewUpdateCommands()
	update.AppendCommand(func() tea.Msg {
		return sentMessage
	})
	update.AppendCommand(nil)

	batch := s.SplitBatch(update.Batch())
	s.Require().Len(batch, 1)
	s.Require().Equal(sentMessage, batch[0]())
}

func (s *UpdateCommandsSuite) TestAppendMessage() {
	sentMessage := gofakeit.LetterN(5)

	update := NewUpdateCommands()
	update.AppendMessage(sentMessage)

	batch := s.SplitBatch(update.Batch())
	s.Require().Len(batch, 1)
	s.Require().Equal(sentMessage, batch[0]())
}

func (s *UpdateCommandsSuite) TestStandardCommands() {
	messages := make([]string, 3)
	commands := make([]tea.Cmd, len(messages))
	for i := range messages {
		message := gofakeit.LetterN(5)
		messages[i] = message
		commands[i] = func() tea.Msg {
			return message
		}
	}

	update := NewUpdateCommands()
	update.InputCommand = commands[0]
	update.SpinnerCommand = commands[1]
	update.EventsCommand = commands[2]

	batch := s.SplitBatch(update.Batch())
	s.Require().Len(batch, len(commands))

	for i, command := range batch {
		s.Require().Equal(messages[i], command())
	}
}
