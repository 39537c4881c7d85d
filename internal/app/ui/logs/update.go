package logs

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/app/monitor"
	"dockhand/internal/app/ui/components"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000
)

// tickMsg signals a UI tick for animations and batched rendering
type tickMsg time.Time

// statsMsg carries a resource sample of the source process
type statsMsg struct {
	pid   int
	stats monitor.Stats
	err   error
}

// Init starts the tick loop
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)

		return m, nil

	case LogMsg:
		m.addEntry(msg)

		return m, nil

	case SourceOpenedMsg:
		m.status.pid = msg.PID
		m.log.Debug().Msgf("Source '%s' opened (pid %d)", msg.Source, msg.PID)

		return m, m.statsCmd()

	case SourceClosedMsg:
		m.status.closed = true
		m.status.err = msg.Err

		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Msgf("Source '%s' closed", msg.Source)
		}

		return m, nil

	case statsMsg:
		return m, m.applyStats(msg)

	case tickMsg:
		m.tickCounter++
		if m.tickCounter >= tickCounterMaximum {
			m.tickCounter = 0
		}

		m.flash.Update()
		m.sync()

		return m, tickCmd()
	}

	if m.mode.Current() == Searching {
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	m.sync()

	if m.mode.Current() == Searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())

	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.filtered))

	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.filtered))

	case key.Matches(msg, m.keys.Select):
		if len(m.filtered) > 0 {
			m.selection.SelectLine(m.filtered[m.cursor].Message)
			m.render()
		}

	case key.Matches(msg, m.keys.ClearSelect):
		m.selection.ClearSelection()
		m.render()

	case key.Matches(msg, m.keys.CopySelection):
		m.copy(m.selection.CopySelection)

	case key.Matches(msg, m.keys.CopyAll):
		m.copy(m.selection.CopyAll)

	case key.Matches(msg, m.keys.Wrap):
		m.selection.SetWrapLines(!m.selection.WrapLines())
		m.render()

	case key.Matches(msg, m.keys.Autoscroll):
		m.selection.SetAutoScroll(!m.selection.AutoScroll())

		if m.selection.AutoScroll() {
			m.cursor = len(m.filtered) - 1
			m.clampCursor()
		}

		m.render()

	case key.Matches(msg, m.keys.Search):
		m.fire(SearchEvent)

		return m, textinput.Blink

	case key.Matches(msg, m.keys.ClearLogs):
		m.clearBuffer()
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		m.fire(ApplyEvent)

		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.fire(CancelEvent)

		return m, nil
	}

	var cmd tea.Cmd

	previous := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != previous {
		m.setSearch(m.input.Value())
	}

	return m, cmd
}

func (m *Model) copy(export func()) {
	if !m.selection.State().CopySupported {
		m.flash.Show("Clipboard is not available", components.FlashError)
		return
	}

	export()
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	viewportHeight := height - components.ChromeHeight
	if viewportHeight < components.MinViewportHeight {
		viewportHeight = components.MinViewportHeight
	}

	m.viewport.Width = width - 2
	m.viewport.Height = viewportHeight
	m.input.Width = width - 4
	m.ready = true

	m.sync()
	m.render()
}

func (m *Model) statsCmd() tea.Cmd {
	if m.monitor == nil || m.status.pid <= 0 || m.status.closed {
		return nil
	}

	ctx, mon, pid := m.ctx, m.monitor, m.status.pid

	return tea.Tick(components.StatsInterval, func(time.Time) tea.Msg {
		stats, err := mon.GetStats(ctx, pid)

		return statsMsg{pid: pid, stats: stats, err: err}
	})
}

func (m *Model) applyStats(msg statsMsg) tea.Cmd {
	if msg.pid != m.status.pid {
		return nil
	}

	if msg.err != nil {
		m.log.Debug().Err(msg.err).Msgf("Stopped sampling pid %d", msg.pid)
		m.status.pid = 0
		m.status.stats = monitor.Stats{}

		return nil
	}

	m.status.stats = msg.stats

	return m.statsCmd()
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
