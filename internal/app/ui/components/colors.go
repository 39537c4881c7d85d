package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	ColorPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	ColorMuted   = lipgloss.Color("7")       // Light gray - muted elements
	ColorBorder  = lipgloss.Color("8")       // Gray - borders and help text

	ColorCursor    = lipgloss.Color("235") // Dark gray - cursor line background
	ColorSelection = lipgloss.Color("12")  // Blue - selection marker

	ColorRunning = lipgloss.Color("10") // Green - running source
	ColorWarning = lipgloss.Color("11") // Yellow - warnings
	ColorFailed  = lipgloss.Color("9")  // Red - errors and closed sources
	ColorStopped = lipgloss.Color("8")  // Gray - finished source
)

// Log level colors
var (
	ColorLevelError = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorLevelWarn  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	ColorLevelInfo  = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	ColorLevelDebug = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	ColorUUID       = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorSeparator  = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
)
