package logs

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/app/runtime"
)

// LogMsg carries one log line into the viewer
type LogMsg struct {
	Timestamp time.Time
	Source    string
	Stream    string
	Message   string
}

// SourceOpenedMsg reports that the source started streaming
type SourceOpenedMsg struct {
	Source string
	PID    int
}

// SourceClosedMsg reports that the source stopped; Err is nil on a clean end
type SourceClosedMsg struct {
	Source string
	Err    error
}

// Sender holds a function to send messages to Bubble Tea
type Sender struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewSender creates a new Sender
func NewSender() *Sender {
	return &Sender{}
}

// Set sets the send function
func (s *Sender) Set(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.send = send
}

// Send sends a message if the send function is set
func (s *Sender) Send(msg tea.Msg) {
	s.mu.RLock()
	send := s.send
	s.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

// Subscriber forwards source events from the EventBus via Sender
type Subscriber struct {
	eventBus runtime.EventBus
	sender   *Sender
	done     chan struct{}
}

// NewSubscriber creates a new log subscriber
func NewSubscriber(eventBus runtime.EventBus, sender *Sender) *Subscriber {
	return &Subscriber{
		eventBus: eventBus,
		sender:   sender,
		done:     make(chan struct{}),
	}
}

// Start subscribes immediately and forwards events in the background until ctx ends or the bus closes
func (s *Subscriber) Start(ctx context.Context) {
	eventChan := s.eventBus.Subscribe(ctx)

	go s.processEvents(eventChan)
}

// Done is closed once the subscription channel has been drained
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

func (s *Subscriber) processEvents(eventChan <-chan runtime.Event) {
	defer close(s.done)

	for event := range eventChan {
		if msg := toMsg(event); msg != nil {
			s.sender.Send(msg)
		}
	}
}

func toMsg(event runtime.Event) tea.Msg {
	switch data := event.Data.(type) {
	case runtime.LogLineData:
		if event.Type != runtime.EventLogLine {
			return nil
		}

		return LogMsg{
			Timestamp: event.Timestamp,
			Source:    data.Source,
			Stream:    data.Stream,
			Message:   data.Message,
		}
	case runtime.SourceOpenedData:
		return SourceOpenedMsg(data)
	case runtime.SourceClosedData:
		return SourceClosedMsg{Source: data.Source, Err: data.Error}
	}

	return nil
}
