package runtime

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

// LogWriter prints log line events to a writer, used when the TUI is disabled
type LogWriter interface {
	Start(ctx context.Context, out io.Writer)
	Close() error
}

type logWriter struct {
	eventBus EventBus
	out      *bufio.Writer
	mu       sync.Mutex
	done     chan struct{}
	started  bool
	cancel   context.CancelFunc
	err      error
}

// NewLogWriter creates a new log writer
func NewLogWriter(eventBus EventBus) LogWriter {
	return &logWriter{
		eventBus: eventBus,
		done:     make(chan struct{}),
	}
}

// Start begins listening for log events and writing them to out
func (lw *logWriter) Start(ctx context.Context, out io.Writer) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.started {
		return
	}

	lw.started = true
	lw.out = bufio.NewWriter(out)

	ctx, cancel := context.WithCancel(ctx)
	lw.cancel = cancel

	eventChan := lw.eventBus.Subscribe(ctx)

	go lw.processEvents(eventChan)
}

// Close stops the subscription, writes whatever was already queued and flushes the output
func (lw *logWriter) Close() error {
	lw.mu.Lock()
	started := lw.started
	lw.mu.Unlock()

	if !started {
		return nil
	}

	lw.cancel()
	<-lw.done

	lw.mu.Lock()
	defer lw.mu.Unlock()

	if err := lw.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush log output: %w", err)
	}

	return lw.err
}

func (lw *logWriter) processEvents(eventChan <-chan Event) {
	defer close(lw.done)

	for event := range eventChan {
		lw.handleEvent(event)

		if len(eventChan) == 0 {
			lw.flush()
		}
	}
}

func (lw *logWriter) flush() {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if err := lw.out.Flush(); err != nil && lw.err == nil {
		lw.err = fmt.Errorf("failed to flush log output: %w", err)
	}
}

func (lw *logWriter) handleEvent(event Event) {
	if event.Type != EventLogLine {
		return
	}

	data, ok := event.Data.(LogLineData)
	if !ok {
		return
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	if _, err := fmt.Fprintln(lw.out, data.Message); err != nil && lw.err == nil {
		lw.err = fmt.Errorf("failed to write log line: %w", err)
	}
}
