package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// TitleStyle for view titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// HeaderStyle wraps the header line
	HeaderStyle = lipgloss.NewStyle().
			Padding(1, 1, 0, 1)

	// FooterStyle wraps the footer block
	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// ContentStyle wraps the main content area
	ContentStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorSeparator)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	// TimestampStyle for timestamp text
	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StderrStyle marks lines read from stderr
	StderrStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	// SuccessStyle for confirmations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorRunning)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(2)

	// CursorStyle highlights the line under the cursor
	CursorStyle = lipgloss.NewStyle().
			Background(ColorCursor)

	// SelectedMarkerStyle renders the gutter of selected lines
	SelectedMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorSelection).
				Bold(true)

	// SearchPromptStyle for the search input prompt
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)

// Source status styles
var (
	StatusRunningStyle = lipgloss.NewStyle().Foreground(ColorRunning)
	StatusStoppedStyle = lipgloss.NewStyle().Foreground(ColorStopped)
	StatusFailedStyle  = lipgloss.NewStyle().Foreground(ColorFailed)
)

// Log highlighting styles
var (
	LogLevelErrorStyle = lipgloss.NewStyle().Foreground(ColorLevelError).Bold(true)
	LogLevelWarnStyle  = lipgloss.NewStyle().Foreground(ColorLevelWarn).Bold(true)
	LogLevelInfoStyle  = lipgloss.NewStyle().Foreground(ColorLevelInfo)
	LogLevelDebugStyle = lipgloss.NewStyle().Foreground(ColorLevelDebug)
	UUIDStyle          = lipgloss.NewStyle().Foreground(ColorUUID)
)
