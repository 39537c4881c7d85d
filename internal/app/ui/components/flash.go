package components

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	flashFPS              = UITicksPerSecond
	flashAngularFrequency = 6.0
	flashDampingRatio     = 1.0

	// flashHoldShare is the share of the duration the message stays at full strength
	flashHoldShare = 0.6

	flashVisibleThreshold = 0.05
	flashFaintThreshold   = 0.5
)

// FlashKind selects the flash style
type FlashKind int

const (
	FlashSuccess FlashKind = iota
	FlashError
)

// Flash is a transient status message that fades out using spring physics
type Flash struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	holdTicks int
	ticks     int
	message   string
	kind      FlashKind
	enabled   bool
}

// NewFlash creates a flash that lasts roughly d; a zero duration disables it
func NewFlash(d time.Duration) *Flash {
	total := int(d / UITickInterval)

	return &Flash{
		spring:    harmonica.NewSpring(harmonica.FPS(flashFPS), flashAngularFrequency, flashDampingRatio),
		holdTicks: int(float64(total) * flashHoldShare),
		enabled:   total > 0,
	}
}

// Show displays message at full strength and restarts the fade
func (f *Flash) Show(message string, kind FlashKind) {
	if !f.enabled {
		return
	}

	f.message = message
	f.kind = kind
	f.position = 1
	f.velocity = 0
	f.target = 1
	f.ticks = 0
}

// Update advances the fade (called on each UI tick)
func (f *Flash) Update() {
	if !f.Visible() {
		return
	}

	f.ticks++
	if f.ticks > f.holdTicks {
		f.target = 0
	}

	f.position, f.velocity = f.spring.Update(f.position, f.velocity, f.target)

	if f.target == 0 && f.position < flashVisibleThreshold {
		f.message = ""
		f.position = 0
		f.velocity = 0
	}
}

// Visible reports whether a message is currently shown
func (f *Flash) Visible() bool {
	return f.message != ""
}

// Message returns the current message
func (f *Flash) Message() string {
	return f.message
}

// Render returns the styled message, faint while fading out
func (f *Flash) Render() string {
	if !f.Visible() {
		return ""
	}

	style := SuccessStyle
	if f.kind == FlashError {
		style = ErrorStyle
	}

	if f.position < flashFaintThreshold {
		style = style.Faint(true)
	}

	return style.Render(f.message)
}

// RenderWith renders the message using a custom style
func (f *Flash) RenderWith(style lipgloss.Style) string {
	if !f.Visible() {
		return ""
	}

	return style.Render(f.message)
}
