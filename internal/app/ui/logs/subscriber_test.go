package logs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dockhand/internal/app/runtime"
)

func Test_Sender(t *testing.T) {
	s := NewSender()

	assert.NotPanics(t, func() { s.Send("dropped") })

	var got []tea.Msg

	s.Set(func(msg tea.Msg) { got = append(got, msg) })
	s.Send("delivered")

	assert.Equal(t, []tea.Msg{"delivered"}, got)
}

func Test_toMsg(t *testing.T) {
	now := time.Now()
	closeErr := errors.New("gone")

	tests := []struct {
		name     string
		event    runtime.Event
		expected tea.Msg
	}{
		{
			name: "Log line",
			event: runtime.Event{
				Type:      runtime.EventLogLine,
				Timestamp: now,
				Data:      runtime.LogLineData{Source: "web", Stream: runtime.StreamStderr, Message: "boom"},
			},
			expected: LogMsg{Timestamp: now, Source: "web", Stream: runtime.StreamStderr, Message: "boom"},
		},
		{
			name:     "Source opened",
			event:    runtime.Event{Type: runtime.EventSourceOpened, Data: runtime.SourceOpenedData{Source: "web", PID: 42}},
			expected: SourceOpenedMsg{Source: "web", PID: 42},
		},
		{
			name:     "Source closed",
			event:    runtime.Event{Type: runtime.EventSourceClosed, Data: runtime.SourceClosedData{Source: "web", Error: closeErr}},
			expected: SourceClosedMsg{Source: "web", Err: closeErr},
		},
		{
			name:     "Mismatched payload",
			event:    runtime.Event{Type: runtime.EventSourceClosed, Data: runtime.LogLineData{Message: "x"}},
			expected: nil,
		},
		{
			name:     "Unknown payload",
			event:    runtime.Event{Type: runtime.EventLogLine, Data: "raw"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toMsg(tt.event))
		})
	}
}

func Test_Subscriber_ForwardsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBus := runtime.NewMockEventBus(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan runtime.Event, 3)
	mockBus.EXPECT().Subscribe(ctx).Return((<-chan runtime.Event)(events))

	var (
		mu  sync.Mutex
		got []tea.Msg
	)

	sender := NewSender()
	sender.Set(func(msg tea.Msg) {
		mu.Lock()
		defer mu.Unlock()

		got = append(got, msg)
	})

	subscriber := NewSubscriber(mockBus, sender)
	subscriber.Start(ctx)

	events <- runtime.Event{Type: runtime.EventSourceOpened, Data: runtime.SourceOpenedData{Source: "web", PID: 7}}
	events <- runtime.Event{Type: runtime.EventLogLine, Data: runtime.LogLineData{Source: "web", Message: "hello"}}
	events <- runtime.Event{Type: runtime.EventSourceClosed, Data: runtime.SourceClosedData{Source: "web"}}
	close(events)

	select {
	case <-subscriber.Done():
	case <-time.After(time.Second):
		t.Fatal("subscriber did not finish")
	}

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, got, 3)
	assert.Equal(t, SourceOpenedMsg{Source: "web", PID: 7}, got[0])
	assert.Equal(t, "hello", got[1].(LogMsg).Message)
	assert.Equal(t, SourceClosedMsg{Source: "web"}, got[2])
}
