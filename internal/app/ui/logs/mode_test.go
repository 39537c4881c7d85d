package logs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dockhand/internal/config/logger"
)

type recordingHooks struct {
	calls []string
}

func (h *recordingHooks) beginSearch()  { h.calls = append(h.calls, "begin") }
func (h *recordingHooks) endSearch()    { h.calls = append(h.calls, "end") }
func (h *recordingHooks) applySearch()  { h.calls = append(h.calls, "apply") }
func (h *recordingHooks) cancelSearch() { h.calls = append(h.calls, "cancel") }

func Test_ModeFSM(t *testing.T) {
	tests := []struct {
		name          string
		events        []string
		expectedState string
		expectedCalls []string
	}{
		{name: "Initial state", events: nil, expectedState: Browsing, expectedCalls: nil},
		{name: "Open search", events: []string{SearchEvent}, expectedState: Searching, expectedCalls: []string{"begin"}},
		{name: "Apply search", events: []string{SearchEvent, ApplyEvent}, expectedState: Browsing, expectedCalls: []string{"begin", "end", "apply"}},
		{name: "Cancel search", events: []string{SearchEvent, CancelEvent}, expectedState: Browsing, expectedCalls: []string{"begin", "end", "cancel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hooks := &recordingHooks{}
			mode := newModeFSM(hooks, newTestLogger(t))

			for _, event := range tt.events {
				require.NoError(t, mode.Event(context.Background(), event))
			}

			assert.Equal(t, tt.expectedState, mode.Current())
			assert.Equal(t, tt.expectedCalls, hooks.calls)
		})
	}
}

func Test_ModeFSM_InvalidTransitions(t *testing.T) {
	hooks := &recordingHooks{}
	mode := newModeFSM(hooks, newTestLogger(t))

	assert.Error(t, mode.Event(context.Background(), ApplyEvent))
	assert.Error(t, mode.Event(context.Background(), CancelEvent))

	require.NoError(t, mode.Event(context.Background(), SearchEvent))
	assert.Error(t, mode.Event(context.Background(), SearchEvent))

	assert.Equal(t, Searching, mode.Current())
	assert.Equal(t, []string{"begin"}, hooks.calls)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Warn().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()

	return log
}
