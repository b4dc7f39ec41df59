package demo

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"

	"github.com/blackcrown/lobby/internal/testcommon"
	"github.com/blackcrown/lobby/internal/transport"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/protocol"
)

func TestFleet(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite
	ctx     context.Context
	cancel  context.CancelFunc
	hub     *transport.Hub
	clock   clockwork.FakeClock
	address protocol.Address
	player  *lobby.Lobby
}

const (
	botsCount    = 3
	actionPeriod = 5 * time.Second
)

func (s *Suite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.hub = transport.NewHub()
	s.clock = clockwork.NewFakeClock()
	s.address = "mock://demo"

	connection := transport.Dial(s.address, transport.WithHub(s.hub), transport.WithLogger(s.Logger))
	s.player = lobby.New(
		lobby.WithConnection(connection),
		lobby.WithClock(s.clock),
		lobby.WithLogger(s.Logger),
		lobby.WithPlayerID("me"),
		lobby.WithPlayerName("Captain"),
		lobby.WithHost(true),
	)
	s.Require().NotNil(s.player)
	s.Require().NoError(s.player.Start())
}

func (s *Suite) TearDownTest() {
	s.player.Leave()
	s.cancel()
}

func (s *Suite) startFleet() *Fleet {
	fleet, err := Start(s.ctx, s.address,
		WithLogger(s.Logger),
		WithClock(s.clock),
		WithHub(s.hub),
		WithBotsCount(botsCount),
		WithActionPeriod(actionPeriod),
		WithSeed(42),
	)
	s.Require().NoError(err)
	s.Require().NotNil(fleet)
	s.Require().Equal(botsCount, fleet.Count())
	return fleet
}

func (s *Suite) waitPlayers(count int) {
	s.Require().Eventually(func() bool {
		return len(s.player.State().Players) == count
	}, time.Second, 5*time.Millisecond)
}

func (s *Suite) TestBotsJoinAndLeave() {
	fleet := s.startFleet()
	s.waitPlayers(botsCount + 1)

	state := s.player.State()
	for i := 0; i < botsCount; i++ {
		player, ok := state.Player(BotID(i))
		s.Require().True(ok)
		s.Require().Equal(BotNames[i], player.Nickname)
		s.Require().False(player.IsHost)
	}

	fleet.Stop()
	s.waitPlayers(1)
	s.Require().Equal(1, s.hub.Count(s.address.ChannelName()))
}

func (s *Suite) TestBotsAct() {
	fleet := s.startFleet()
	defer fleet.Stop()
	s.waitPlayers(botsCount + 1)

	s.clock.BlockUntil(botsCount)
	s.clock.Advance(actionPeriod)

	// Every bot either chatted or became ready on its first action
	s.Require().Eventually(func() bool {
		state := s.player.State()
		for i := 0; i < botsCount; i++ {
			player, _ := state.Player(BotID(i))
			chatted := false
			for _, entry := range state.History {
				chatted = chatted || entry.PlayerID == BotID(i)
			}
			if !player.Ready && !chatted {
				return false
			}
		}
		return true
	}, time.Second, 5*time.Millisecond)
}

func (s *Suite) TestNetworkAddressRefused() {
	fleet, err := Start(s.ctx, "wss://lobby.example.com")
	s.Require().Error(err)
	s.Require().Nil(fleet)
}

func (s *Suite) TestBotName() {
	s.Require().Equal("AquaBot", BotName(0))
	s.Require().Equal("SharkBait", BotName(len(BotNames)-1))
	s.Require().Equal("AquaBot2", BotName(len(BotNames)))
	s.Require().Equal(protocol.PlayerID("bot-1"), BotID(1))
}
