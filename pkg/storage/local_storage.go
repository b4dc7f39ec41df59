package storage

import (
	"encoding/json"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/internal/config"
	"github.com/blackcrown/lobby/pkg/protocol"
)

const (
	settingsFileName  = "settings.json"
	analyticsFileName = "analytics.json"

	// MaxAnalyticsEvents bounds the analytics log, oldest events are dropped first.
	MaxAnalyticsEvents = 200
)

type AnalyticsEvent struct {
	Name      string         `json:"name"`
	Props     map[string]any `json:"props,omitempty"`
	Timestamp int64          `json:"ts"`
}

type settingsStorage struct {
	Settings
	PlayerID protocol.PlayerID `json:"bc:playerId"`
}

type LocalStorage struct {
	settings  settingsStorage
	analytics []AnalyticsEvent

	path   string
	folder *configdir.Config
	clock  clockwork.Clock
	logger *zap.Logger
	mutex  sync.RWMutex
}

// NewLocalStorage keeps files in the given directory, or in the global
// config folder of the application when path is empty.
func NewLocalStorage(path string) *LocalStorage {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalStorage{
		path:   path,
		clock:  clockwork.NewRealClock(),
		logger: logger.Named("storage"),
	}
}

func (s *LocalStorage) Initialize() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.path != "" {
		s.folder = &configdir.Config{
			Path: s.path,
			Type: configdir.Global,
		}
	} else {
		configDirs := configdir.New(config.VendorName, config.ApplicationName)
		folders := configDirs.QueryFolders(configdir.Global)
		if len(folders) == 0 {
			return errors.New("no config folder available")
		}
		s.folder = folders[0]
	}

	s.settings = settingsStorage{Settings: DefaultSettings()}
	s.analytics = nil

	err := s.readSettings()
	if err != nil {
		return err
	}

	err = s.readAnalytics()
	if err != nil {
		return err
	}

	s.logger.Info("storage initialized",
		zap.String("path", s.folder.Path),
		zap.String("playerID", string(s.settings.PlayerID)),
		zap.Int("analyticsEvents", len(s.analytics)),
	)
	return nil
}

func (s *LocalStorage) readSettings() error {
	if !s.folder.Exists(settingsFileName) {
		s.logger.Info("no settings found")
		return nil
	}

	data, err := s.folder.ReadFile(settingsFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read settings")
	}

	loaded := settingsStorage{Settings: DefaultSettings()}
	err = json.Unmarshal(data, &loaded)
	if err == nil {
		loaded.normalize()
		s.settings = loaded
		return nil
	}

	s.logger.Error("failed to parse settings, resetting to defaults", zap.Error(err))

	err = s.saveSettings()
	if err != nil {
		s.logger.Error("failed to reset settings", zap.Error(err))
	}

	return nil
}

func (s *LocalStorage) readAnalytics() error {
	if !s.folder.Exists(analyticsFileName) {
		return nil
	}

	data, err := s.folder.ReadFile(analyticsFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read analytics")
	}

	err = json.Unmarshal(data, &s.analytics)
	if err != nil {
		s.logger.Error("failed to parse analytics, clearing log", zap.Error(err))
		s.analytics = nil
		return nil
	}

	s.analytics = trimAnalytics(s.analytics)
	return nil
}

func (s *LocalStorage) saveSettings() error {
	data, err := json.Marshal(s.settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	err = s.folder.WriteFile(settingsFileName, data)
	if err != nil {
		return errors.Wrap(err, "failed to save settings")
	}

	return nil
}

func (s *LocalStorage) saveAnalytics() error {
	data, err := json.Marshal(s.analytics)
	if err != nil {
		return errors.Wrap(err, "failed to marshal analytics")
	}

	err = s.folder.WriteFile(analyticsFileName, data)
	if err != nil {
		return errors.Wrap(err, "failed to save analytics")
	}

	return nil
}

func (s *LocalStorage) PlayerID() protocol.PlayerID {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.settings.PlayerID
}

func (s *LocalStorage) SetPlayerID(id protocol.PlayerID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.settings.PlayerID = id
	return s.saveSettings()
}

func (s *LocalStorage) Settings() Settings {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.settings.Settings
}

func (s *LocalStorage) SetNickname(name string) error {
	return s.UpdateSettings(func(settings *Settings) {
		settings.Nickname = name
	})
}

// UpdateSettings applies update to a copy of the current settings and
// persists the result.
func (s *LocalStorage) UpdateSettings(update func(*Settings)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	settings := s.settings.Settings
	update(&settings)
	settings.normalize()
	s.settings.Settings = settings

	return s.saveSettings()
}

func (s *LocalStorage) Track(name string, props map[string]any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.analytics = trimAnalytics(append(s.analytics, AnalyticsEvent{
		Name:      name,
		Props:     props,
		Timestamp: s.clock.Now().UnixMilli(),
	}))

	return s.saveAnalytics()
}

func (s *LocalStorage) AnalyticsLog() []AnalyticsEvent {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]AnalyticsEvent(nil), s.analytics...)
}

func (s *LocalStorage) ClearAnalytics() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.analytics = nil
	return s.saveAnalytics()
}

func trimAnalytics(events []AnalyticsEvent) []AnalyticsEvent {
	if len(events) <= MaxAnalyticsEvents {
		return events
	}
	return append([]AnalyticsEvent(nil), events[len(events)-MaxAnalyticsEvents:]...)
}
