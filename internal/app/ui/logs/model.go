package logs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/looplab/fsm"

	"dockhand/internal/app/monitor"
	"dockhand/internal/app/ui/components"
	"dockhand/internal/config/logger"
)

const tabWidth = 4

// Options configures a viewer session
type Options struct {
	Source     string
	Buffer     int
	Wrap       bool
	Autoscroll bool
	Flash      time.Duration
}

type sourceStatus struct {
	pid    int
	stats  monitor.Stats
	closed bool
	err    error
}

// Model is the log viewer of a single source
type Model struct {
	ctx  context.Context
	opts Options

	buffer   *ring
	filtered []*Entry
	offsets  []int

	selection  *Selection
	matcher    Matcher
	matcherErr error
	prevSearch string
	mode       *fsm.FSM

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	flash    *components.Flash

	monitor monitor.Monitor
	log     logger.Logger

	status      sourceStatus
	cursor      int
	dirty       bool
	ready       bool
	width       int
	height      int
	tickCounter int
}

// NewModel creates a viewer for one source; monitor may be nil
func NewModel(ctx context.Context, opts Options, clipboard Clipboard, mon monitor.Monitor, log logger.Logger) *Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.PromptStyle = components.SearchPromptStyle
	input.Placeholder = "text or glob"
	input.CharLimit = 256

	m := &Model{
		ctx:      ctx,
		opts:     opts,
		buffer:   newRing(opts.Buffer),
		input:    input,
		viewport: viewport.New(components.DefaultViewportWidth, components.MinViewportHeight),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		flash:    components.NewFlash(opts.Flash),
		monitor:  mon,
		log:      log,
	}

	m.selection = NewSelection(clipboard, m.onExport)
	m.selection.SetWrapLines(opts.Wrap)
	m.selection.SetAutoScroll(opts.Autoscroll)
	m.mode = newModeFSM(m, log)

	return m
}

// Selection exposes the session's selection state
func (m *Model) Selection() *Selection {
	return m.selection
}

// Mode returns the current mode, Browsing or Searching
func (m *Model) Mode() string {
	return m.mode.Current()
}

func (m *Model) addEntry(msg LogMsg) {
	message := strings.TrimRight(msg.Message, "\r\n")

	m.buffer.push(Entry{
		Timestamp:   msg.Timestamp,
		Source:      msg.Source,
		Stream:      msg.Stream,
		Message:     message,
		highlighted: highlightLogLevel(expandTabs(message)),
	})

	m.dirty = true
}

// sync applies pending entries so that filtered and the ring agree
func (m *Model) sync() {
	if m.dirty {
		m.rebuild()
	}
}

// rebuild refilters the buffer and re-renders the viewport
func (m *Model) rebuild() {
	m.dirty = false
	m.filtered = m.filtered[:0]

	lines := make([]string, 0, m.buffer.len())

	for i := 0; i < m.buffer.len(); i++ {
		entry := m.buffer.at(i)
		if !m.matcher.Match(entry.Message) {
			continue
		}

		m.filtered = append(m.filtered, entry)
		lines = append(lines, entry.Message)
	}

	m.selection.SetFilteredLogs(lines)

	if m.selection.AutoScroll() {
		m.cursor = len(m.filtered) - 1
	}

	m.clampCursor()
	m.render()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()

	if delta < 0 && m.selection.AutoScroll() {
		m.selection.SetAutoScroll(false)
	}

	m.render()
}

func (m *Model) pageSize() int {
	if m.viewport.Height < 1 {
		return 1
	}

	return m.viewport.Height
}

func (m *Model) setSearch(text string) {
	matcher, err := NewMatcher(text)
	if err != nil {
		m.log.Debug().Err(err).Msgf("Invalid glob '%s', matching as text", text)
	}

	m.matcher = matcher
	m.matcherErr = err
	m.selection.SetSearch(text)
	m.rebuild()
}

func (m *Model) fire(event string) {
	if err := m.mode.Event(m.ctx, event); err != nil {
		m.log.Debug().Err(err).Msgf("Ignored mode event '%s'", event)
	}
}

func (m *Model) beginSearch() {
	m.prevSearch = m.selection.Search()
	m.input.SetValue(m.prevSearch)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) endSearch() {
	m.input.Blur()
}

func (m *Model) applySearch() {
	m.setSearch(m.input.Value())
}

func (m *Model) cancelSearch() {
	m.input.SetValue(m.prevSearch)
	m.setSearch(m.prevSearch)
}

func (m *Model) onExport(e Export) {
	if e.Err != nil {
		m.log.Warn().Err(e.Err).Msg("Failed to copy to clipboard")
		m.flash.Show(fmt.Sprintf("Clipboard error: %v", e.Err), components.FlashError)

		return
	}

	m.log.Debug().Msgf("Copied %d lines to clipboard", e.Lines)
	m.flash.Show(copiedMessage(e.Lines), components.FlashSuccess)
}

func (m *Model) clearBuffer() {
	m.buffer.reset()
	m.selection.ClearSelection()
	m.cursor = 0
	m.rebuild()
}

func copiedMessage(n int) string {
	if n == 1 {
		return "copied 1 line"
	}

	return fmt.Sprintf("copied %d lines", n)
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
