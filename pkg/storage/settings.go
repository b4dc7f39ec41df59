package storage

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "med"
	QualityHigh   Quality = "high"
)

type InputMode string

const (
	InputModeAuto  InputMode = "auto"
	InputModeTouch InputMode = "touch"
	InputModeMouse InputMode = "mouse"
)

// Settings keys are namespaced with "bc:" in the settings file.
type Settings struct {
	Nickname      string    `json:"bc:nickname"`
	Theme         Theme     `json:"bc:theme"`
	SoundEnabled  bool      `json:"bc:soundEnabled"`
	FPSCounter    bool      `json:"bc:fpsCounter"`
	Quality       Quality   `json:"bc:quality"`
	InputMode     InputMode `json:"bc:inputMode"`
	ReduceEffects bool      `json:"bc:reduceEffects"`
}

func DefaultSettings() Settings {
	return Settings{
		Nickname:      "",
		Theme:         ThemeDark,
		SoundEnabled:  true,
		FPSCounter:    false,
		Quality:       QualityMedium,
		InputMode:     InputModeAuto,
		ReduceEffects: false,
	}
}

// normalize replaces unknown enum values with defaults.
func (s *Settings) normalize() {
	defaults := DefaultSettings()

	switch s.Theme {
	case ThemeDark, ThemeLight:
	default:
		s.Theme = defaults.Theme
	}

	switch s.Quality {
	case QualityLow, QualityMedium, QualityHigh:
	default:
		s.Quality = defaults.Quality
	}

	switch s.InputMode {
	case InputModeAuto, InputModeTouch, InputModeMouse:
	default:
		s.InputMode = defaults.InputMode
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
