package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_EventBus_Publish_And_Subscribe(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := eb.Subscribe(ctx)

	eb.Publish(Event{
		Type: EventLogLine,
		Data: LogLineData{Source: "web", Stream: StreamStdout, Message: "GET / 200"},
	})

	select {
	case received := <-sub:
		assert.Equal(t, EventLogLine, received.Type)
		assert.NotZero(t, received.Timestamp)
		data, ok := received.Data.(LogLineData)
		assert.True(t, ok)
		assert.Equal(t, "web", data.Source)
		assert.Equal(t, "GET / 200", data.Message)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for event")
	}
}

func Test_EventBus_Publish_KeepsTimestamp(t *testing.T) {
	eb := NewEventBus(1)
	defer eb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := eb.Subscribe(ctx)
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	eb.Publish(Event{Type: EventLogLine, Timestamp: ts})

	received := <-sub
	assert.Equal(t, ts, received.Timestamp)
}

func Test_EventBus_Multiple_Subscribers(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub1 := eb.Subscribe(ctx)
	sub2 := eb.Subscribe(ctx)

	eb.Publish(Event{Type: EventSourceClosed, Data: SourceClosedData{Source: "db", Error: errors.New("eof")}})

	for i, sub := range []<-chan Event{sub1, sub2} {
		select {
		case received := <-sub:
			assert.Equal(t, EventSourceClosed, received.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("timeout waiting for event on sub%d", i+1)
		}
	}
}

func Test_EventBus_Unsubscribe_On_Context_Cancel(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := eb.Subscribe(ctx)

	cancel()

	select {
	case _, ok := <-sub:
		assert.False(t, ok, "channel should be closed after context cancellation")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}
}

func Test_EventBus_DropsNonCriticalWhenFull(t *testing.T) {
	eb := NewEventBus(1)
	defer eb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := eb.Subscribe(ctx)

	eb.Publish(Event{Type: EventLogLine, Data: LogLineData{Message: "first"}})
	eb.Publish(Event{Type: EventLogLine, Data: LogLineData{Message: "second"}})

	received := <-sub
	assert.Equal(t, "first", received.Data.(LogLineData).Message)
	assert.Len(t, sub, 0)
}

func Test_EventBus_Close(t *testing.T) {
	eb := NewEventBus(10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := eb.Subscribe(ctx)

	eb.Close()
	eb.Close()

	_, ok := <-sub
	assert.False(t, ok)

	eb.Publish(Event{Type: EventLogLine})

	late := eb.Subscribe(ctx)
	_, ok = <-late
	assert.False(t, ok, "subscribing to a closed bus yields a closed channel")
}
