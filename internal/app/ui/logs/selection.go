package logs

import "strings"

// Viewer class names
const (
	ViewerClassName = "log_viewer"
	WrapClassName   = "wrap_lines"
)

// ExportScope identifies which lines an export carried
type ExportScope int

const (
	ExportAll ExportScope = iota
	ExportSelection
)

// Export describes a finished clipboard export
type Export struct {
	Scope ExportScope
	Lines int
	Err   error
}

// ViewState is the session-scoped presentation state of the log viewer
type ViewState struct {
	FilteredLogs  []string
	SelectedLines []string
	WrapLines     bool
	AutoScroll    bool
	CopySupported bool
	Search        string
}

// Selection tracks which displayed lines are selected and mediates clipboard export.
// It is owned by a single viewer session and is not safe for concurrent use.
type Selection struct {
	state     ViewState
	clipboard Clipboard
	onExport  func(Export)
}

// NewSelection creates an empty selection; onExport may be nil
func NewSelection(clipboard Clipboard, onExport func(Export)) *Selection {
	return &Selection{
		state: ViewState{
			FilteredLogs:  []string{},
			SelectedLines: []string{},
			CopySupported: clipboard != nil && clipboard.Supported(),
		},
		clipboard: clipboard,
		onExport:  onExport,
	}
}

// SelectLine toggles membership of line, removing it when present and appending it otherwise
func (s *Selection) SelectLine(line string) {
	idx := s.indexOf(line)
	if idx == -1 {
		s.state.SelectedLines = append(s.state.SelectedLines, line)
		return
	}

	s.state.SelectedLines = append(s.state.SelectedLines[:idx], s.state.SelectedLines[idx+1:]...)
}

// ClearSelection empties the selection
func (s *Selection) ClearSelection() {
	s.state.SelectedLines = []string{}
}

// IsSelected reports whether line is part of the selection
func (s *Selection) IsSelected(line string) bool {
	return s.indexOf(line) != -1
}

// Count returns the number of selected lines
func (s *Selection) Count() int {
	return len(s.state.SelectedLines)
}

// CopyAll exports the filtered log in display order
func (s *Selection) CopyAll() {
	s.export(ExportAll, s.state.FilteredLogs)
}

// CopySelection exports the selected lines in the order they were selected
func (s *Selection) CopySelection() {
	s.export(ExportSelection, s.state.SelectedLines)
}

// SetFilteredLogs replaces the displayed lines
func (s *Selection) SetFilteredLogs(lines []string) {
	s.state.FilteredLogs = lines
}

// SetSearch records the current filter text
func (s *Selection) SetSearch(search string) {
	s.state.Search = search
}

// SetWrapLines sets the wrap flag
func (s *Selection) SetWrapLines(wrap bool) {
	s.state.WrapLines = wrap
}

// SetAutoScroll sets the autoscroll flag
func (s *Selection) SetAutoScroll(autoScroll bool) {
	s.state.AutoScroll = autoScroll
}

// WrapLines reports the wrap flag
func (s *Selection) WrapLines() bool {
	return s.state.WrapLines
}

// AutoScroll reports the autoscroll flag
func (s *Selection) AutoScroll() bool {
	return s.state.AutoScroll
}

// Search returns the current filter text
func (s *Selection) Search() string {
	return s.state.Search
}

// State returns a snapshot that shares no memory with the selection
func (s *Selection) State() ViewState {
	snapshot := s.state
	snapshot.FilteredLogs = cloneLines(s.state.FilteredLogs)
	snapshot.SelectedLines = cloneLines(s.state.SelectedLines)

	return snapshot
}

func cloneLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	return out
}

// ViewerClass maps the view state to its presentation class
func ViewerClass(state ViewState) string {
	if state.WrapLines {
		return ViewerClassName + " " + WrapClassName
	}

	return ViewerClassName
}

// hasClass reports whether a space separated class list contains name
func hasClass(classes, name string) bool {
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}

	return false
}

func (s *Selection) indexOf(line string) int {
	for i, selected := range s.state.SelectedLines {
		if selected == line {
			return i
		}
	}

	return -1
}

func (s *Selection) export(scope ExportScope, lines []string) {
	if !s.state.CopySupported {
		return
	}

	err := s.clipboard.CopyText(lines)

	if s.onExport != nil {
		s.onExport(Export{Scope: scope, Lines: len(lines), Err: err})
	}
}
