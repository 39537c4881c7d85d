package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate of the viewer
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the animation frame rate derived from the tick interval
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsInterval is how often process stats are sampled
	StatsInterval = 2 * time.Second
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Logs view constants
const (
	LogMessageMinWidth   = 20
	LogGutterWidth       = 4
	LogContinuationWidth = 2
	TipRotationTicks     = 50
	DefaultViewportWidth = 80
	ChromeHeight         = 5
	MinViewportHeight    = 3
)
