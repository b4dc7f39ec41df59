package storage

import (
	"github.com/blackcrown/lobby/pkg/protocol"
)

//go:generate mockgen -source=service.go -destination=mock/service.go

type Service interface {
	Initialize() error

	PlayerID() protocol.PlayerID
	SetPlayerID(id protocol.PlayerID) error

	Settings() Settings
	SetNickname(name string) error
	UpdateSettings(update func(*Settings)) error

	Track(name string, props map[string]any) error
	AnalyticsLog() []AnalyticsEvent
	ClearAnalytics() error
}
