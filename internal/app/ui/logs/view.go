package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dockhand/internal/app/runtime"
	"dockhand/internal/app/ui/components"
)

// View returns the rendered viewer
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	header := components.RenderHeader(m.width, m.title(), m.info())
	footer := components.RenderFooter(m.width, m.flash.Render(), m.helpView())

	return lipgloss.JoinVertical(lipgloss.Left, header, components.RenderContent(m.body()), m.filterBar(), footer)
}

func (m *Model) body() string {
	if len(m.filtered) > 0 {
		return m.viewport.View()
	}

	var message string

	switch {
	case m.buffer.len() > 0:
		message = "No lines match the filter. Press '/' to change it."
	case m.status.closed:
		message = "The source ended without output."
	default:
		message = "Waiting for log output…\n\n" + components.Tip(m.tickCounter/components.TipRotationTicks)
	}

	return lipgloss.NewStyle().
		Height(m.viewport.Height).
		MaxHeight(m.viewport.Height).
		Render(components.EmptyStateStyle.Render(message))
}

func (m *Model) title() string {
	var dot string

	switch {
	case m.status.closed && m.status.err != nil:
		dot = components.StatusFailedStyle.Render("✕")
	case m.status.closed:
		dot = components.StatusStoppedStyle.Render("○")
	default:
		dot = components.StatusRunningStyle.Render("●")
	}

	return dot + " " + components.TitleStyle.Render(m.opts.Source)
}

func (m *Model) info() string {
	parts := []string{fmt.Sprintf("%d/%d lines", len(m.filtered), m.buffer.len())}

	if n := m.selection.Count(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}

	if m.status.pid > 0 {
		parts = append(parts, fmt.Sprintf("cpu %.1f%% mem %.1fMB", m.status.stats.CPU, m.status.stats.MEM))
	}

	if !m.selection.AutoScroll() {
		parts = append(parts, "paused")
	}

	return components.TimestampStyle.Render(strings.Join(parts, " · "))
}

func (m *Model) filterBar() string {
	if m.mode.Current() == Searching {
		return m.input.View()
	}

	switch {
	case m.status.closed && m.status.err != nil:
		return components.ErrorStyle.Render("stream ended: " + m.status.err.Error())
	case m.matcherErr != nil:
		return components.ErrorStyle.Render("invalid glob, matching text: " + m.matcher.Pattern())
	case m.matcher.Pattern() != "":
		kind := "filter"
		if m.matcher.IsGlob() {
			kind = "glob"
		}

		return components.TimestampStyle.Render(kind + ": " + m.matcher.Pattern())
	case m.status.closed:
		return components.TimestampStyle.Render("stream ended")
	}

	return ""
}

func (m *Model) helpView() string {
	if m.mode.Current() == Searching {
		return m.help.View(searchKeyMap{m.keys})
	}

	return m.help.View(m.keys)
}

func (m *Model) contentWidth() int {
	width := m.viewport.Width - components.LogGutterWidth
	if width < components.LogMessageMinWidth {
		width = components.LogMessageMinWidth
	}

	return width
}

// render lays out filtered entries into the viewport, keeping the cursor in view
func (m *Model) render() {
	width := m.contentWidth()
	wrapped := hasClass(ViewerClass(ViewState{WrapLines: m.selection.WrapLines()}), WrapClassName)

	selected := make(map[string]struct{}, m.selection.Count())
	for _, line := range m.selection.State().SelectedLines {
		selected[line] = struct{}{}
	}

	var builder strings.Builder

	m.offsets = m.offsets[:0]
	row := 0

	for i, entry := range m.filtered {
		m.offsets = append(m.offsets, row)

		_, isSelected := selected[entry.Message]

		for j, line := range entry.layout(width, wrapped) {
			if row > 0 {
				builder.WriteByte('\n')
			}

			builder.WriteString(gutter(i == m.cursor && j == 0, isSelected, entry.Stream == runtime.StreamStderr && j == 0))
			builder.WriteString(line)

			row++
		}
	}

	m.offsets = append(m.offsets, row)

	yOffset := m.viewport.YOffset
	m.viewport.SetContent(builder.String())

	if m.selection.AutoScroll() {
		m.viewport.GotoBottom()
		return
	}

	m.viewport.SetYOffset(yOffset)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if len(m.filtered) == 0 {
		return
	}

	top := m.offsets[m.cursor]
	bottom := m.offsets[m.cursor+1] - 1

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// layout returns the display rows of the entry, cached per width and wrap mode
func (e *Entry) layout(width int, wrapped bool) []string {
	if e.rows != nil && e.rowsWidth == width && e.rowsWrapped == wrapped {
		return e.rows
	}

	if wrapped {
		e.rows = wrapRows(e.highlighted, width)
	} else {
		e.rows = []string{highlightLogLevel(components.Truncate(expandTabs(e.Message), width))}
	}

	e.rowsWidth = width
	e.rowsWrapped = wrapped

	return e.rows
}

// wrapRows wraps a line; continuation rows get a tree prefix
func wrapRows(text string, width int) []string {
	first := wrapText(text, width)
	if len(first) <= 1 {
		return first
	}

	rest := wrapText(strings.Join(first[1:], " "), width-components.LogContinuationWidth)

	rows := make([]string, 0, len(rest)+1)
	rows = append(rows, first[0])

	for i, line := range rest {
		prefix := "│ "
		if i == len(rest)-1 {
			prefix = "└ "
		}

		rows = append(rows, components.SeparatorStyle.Render(prefix)+line)
	}

	return rows
}

func gutter(cursor, selected, stderr bool) string {
	var b strings.Builder

	if cursor {
		b.WriteString(components.TitleStyle.Render("▸"))
	} else {
		b.WriteByte(' ')
	}

	if selected {
		b.WriteString(components.SelectedMarkerStyle.Render("▌"))
	} else {
		b.WriteByte(' ')
	}

	if stderr {
		b.WriteString(components.StderrStyle.Render("!"))
	} else {
		b.WriteByte(' ')
	}

	b.WriteByte(' ')

	return b.String()
}
