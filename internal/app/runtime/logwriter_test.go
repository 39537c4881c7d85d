package runtime

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LogWriter_WritesLogLines(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	var buf bytes.Buffer

	lw := NewLogWriter(eb)
	lw.Start(context.Background(), &buf)

	eb.Publish(Event{Type: EventLogLine, Data: LogLineData{Source: "api", Message: "first"}, Critical: true})
	eb.Publish(Event{Type: EventSourceOpened, Data: SourceOpenedData{Source: "api"}, Critical: true})
	eb.Publish(Event{Type: EventLogLine, Data: "not a log line", Critical: true})
	eb.Publish(Event{Type: EventLogLine, Data: LogLineData{Source: "api", Message: "second"}, Critical: true})

	assert.NoError(t, lw.Close())
	assert.Equal(t, "first\nsecond\n", buf.String())
}

func Test_LogWriter_CloseWithoutStart(t *testing.T) {
	lw := NewLogWriter(NewEventBus(1))

	assert.NoError(t, lw.Close())
}

func Test_LogWriter_StartTwice(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	var first, second bytes.Buffer

	lw := NewLogWriter(eb)
	lw.Start(context.Background(), &first)
	lw.Start(context.Background(), &second)

	eb.Publish(Event{Type: EventLogLine, Data: LogLineData{Message: "only once"}, Critical: true})

	assert.NoError(t, lw.Close())
	assert.Equal(t, "only once\n", first.String())
	assert.Empty(t, second.String())
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
