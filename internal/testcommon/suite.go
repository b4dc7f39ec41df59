package testcommon

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/internal/config"
)

const DefaultWaitTimeout = time.Second

type Suite struct {
	suite.Suite
	Logger *zap.Logger
}

func (s *Suite) SetupSuite() {
	s.Logger = SetupConfigLogger(s.T())
}

func (s *Suite) TearDownSuite() {
	_ = config.Logger.Sync()
}

func (s *Suite) SplitBatch(batch tea.Cmd) []tea.Cmd {
	s.Require().Equal(reflect.Func, reflect.TypeOf(batch).Kind())

	result := batch()
	s.Require().NotNil(result)

	batchMessage := result.(tea.BatchMsg)
	s.Require().NotNil(batchMessage)

	return batchMessage
}

// Receive waits for a value on ch or fails the test.
func Receive[T any](s *Suite, ch <-chan T) T {
	select {
	case value, ok := <-ch:
		s.Require().True(ok, "channel closed")
		return value
	case <-time.After(DefaultWaitTimeout):
		s.Require().Fail("timeout waiting for value")
	}
	var zero T
	return zero
}
