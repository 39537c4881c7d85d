//go:generate mockgen -source=events.go -destination=events_mock.go -package=runtime
package runtime

import (
	"context"
	"sync"
	"time"
)

// EventType represents the type of event
type EventType string

const (
	EventLogLine      EventType = "log_line"
	EventSourceOpened EventType = "source_opened"
	EventSourceClosed EventType = "source_closed"
)

// Stream names for log lines
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// Event represents a runtime event
type Event struct {
	Type      EventType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// LogLineData contains a single log line emitted by a source
type LogLineData struct {
	Source  string
	Stream  string
	Message string
}

// SourceOpenedData contains details about a source that started streaming
type SourceOpenedData struct {
	Source string
	PID    int
}

// SourceClosedData contains the reason a source stopped streaming
type SourceClosedData struct {
	Source string
	Error  error
}

// EventBus defines the interface for event publishing and subscription
type EventBus interface {
	Subscribe(ctx context.Context) <-chan Event
	Publish(event Event)
	Close()
}

type eventBus struct {
	subscribers []chan Event
	mu          sync.RWMutex
	bufferSize  int
	closed      bool
}

// NewEventBus creates a new event bus with the specified buffer size
func NewEventBus(bufferSize int) EventBus {
	return &eventBus{
		subscribers: make([]chan Event, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a new subscription channel for events
func (eb *eventBus) Subscribe(ctx context.Context) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, eb.bufferSize)

	if eb.closed {
		close(ch)
		return ch
	}

	eb.subscribers = append(eb.subscribers, ch)

	go func() {
		<-ctx.Done()
		eb.unsubscribe(ch)
	}()

	return ch
}

// Publish sends an event to all subscribers
func (eb *eventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Critical {
		for _, ch := range eb.subscribers {
			ch <- event
		}
	} else {
		for _, ch := range eb.subscribers {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// Close closes all subscriber channels
func (eb *eventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	eb.closed = true

	for _, ch := range eb.subscribers {
		close(ch)
	}

	eb.subscribers = nil
}

func (eb *eventBus) unsubscribe(ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, sub := range eb.subscribers {
		if sub == ch {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}
