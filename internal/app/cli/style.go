package cli

import (
	"github.com/charmbracelet/lipgloss"

	"dockhand/internal/app/ui/components"
	"dockhand/internal/config"
)

// Headline - High-emphasis text for section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(components.ColorPrimary).MarginTop(1)
)

// Title - Medium-emphasis text for titles and subtitles
var (
	titleMedium = lipgloss.NewStyle().Bold(true).Foreground(components.ColorRunning)
)

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
)

// Label - Small text for labels, captions, and supplementary content
var (
	labelMedium = lipgloss.NewStyle().Foreground(components.ColorMuted)
)

// Semantic styles - mapped to the typography scale above
var (
	sectionHeader = headlineLarge.MarginBottom(1)

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(components.ColorWarning)

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.ColorPrimary)
	appVersionStyle = lipgloss.NewStyle().Foreground(components.ColorMuted)
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)

	successStyle = lipgloss.NewStyle().Foreground(components.ColorRunning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(components.ColorFailed)
	tableHeader  = lipgloss.NewStyle().Bold(true).Foreground(components.ColorPrimary).Padding(0, 1)
	tableCell    = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}
