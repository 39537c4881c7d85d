package logs

import (
	"context"

	"github.com/looplab/fsm"

	"dockhand/internal/config/logger"
)

// Viewer modes
const (
	Browsing  = "browsing"
	Searching = "searching"
)

// Mode events
const (
	SearchEvent = "search"
	ApplyEvent  = "apply"
	CancelEvent = "cancel"
)

// Mode callbacks
const (
	OnSearching      = "enter_searching"
	OnLeaveSearching = "leave_searching"
	OnApply          = "after_apply"
	OnCancel         = "after_cancel"
)

// modeHooks receives mode transitions
type modeHooks interface {
	beginSearch()
	endSearch()
	applySearch()
	cancelSearch()
}

// newModeFSM creates the browsing/searching state machine of the viewer
func newModeFSM(hooks modeHooks, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Browsing,
		fsm.Events{
			{Name: SearchEvent, Src: []string{Browsing}, Dst: Searching},
			{Name: ApplyEvent, Src: []string{Searching}, Dst: Browsing},
			{Name: CancelEvent, Src: []string{Searching}, Dst: Browsing},
		},
		fsm.Callbacks{
			"after_event": func(_ context.Context, e *fsm.Event) {
				log.Debug().Msgf("MODE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			OnSearching: func(_ context.Context, _ *fsm.Event) {
				hooks.beginSearch()
			},
			OnLeaveSearching: func(_ context.Context, _ *fsm.Event) {
				hooks.endSearch()
			},
			OnApply: func(_ context.Context, _ *fsm.Event) {
				hooks.applySearch()
			},
			OnCancel: func(_ context.Context, _ *fsm.Event) {
				hooks.cancelSearch()
			},
		},
	)
}
