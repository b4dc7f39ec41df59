package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcrown/lobby/internal/config"
	"github.com/blackcrown/lobby/pkg/storage"
)

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	banner lipgloss.Style
}

func newStyles(theme storage.Theme) styles {
	text := lipgloss.Color("#e6ebff")
	muted := config.ForegroundShadeColor
	if theme == storage.ThemeLight {
		text = lipgloss.Color("#1a1f36")
		muted = lipgloss.Color("#8a93ad")
	}

	return styles{
		title:  lipgloss.NewStyle().Foreground(text).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(muted),
		accent: lipgloss.NewStyle().Foreground(config.UserColor),
		banner: lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddba0")).Bold(true),
	}
}
