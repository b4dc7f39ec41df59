package config

import "sync"

type FlagKey string

const (
	FlagThemeToggle       FlagKey = "THEME_TOGGLE"
	FlagReduceEffects     FlagKey = "REDUCE_EFFECTS"
	FlagKeyboardShortcuts FlagKey = "KEYBOARD_SHORTCUTS"
	FlagStatusBadge       FlagKey = "STATUS_BADGE"
)

var flagsMutex sync.RWMutex

var flags = defaultFlags()

func defaultFlags() map[FlagKey]bool {
	return map[FlagKey]bool{
		FlagThemeToggle:       true,
		FlagReduceEffects:     true,
		FlagKeyboardShortcuts: true,
		FlagStatusBadge:       true,
	}
}

// IsEnabled reports false for unknown flags.
func IsEnabled(flag FlagKey) bool {
	flagsMutex.RLock()
	defer flagsMutex.RUnlock()
	return flags[flag]
}

func SetFlag(flag FlagKey, value bool) {
	flagsMutex.Lock()
	defer flagsMutex.Unlock()
	flags[flag] = value
}

func ResetFlags() {
	flagsMutex.Lock()
	defer flagsMutex.Unlock()
	flags = defaultFlags()
}
