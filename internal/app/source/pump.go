//go:generate mockgen -source=pump.go -destination=pump_mock.go -package=source
package source

import (
	"context"

	"dockhand/internal/app/runtime"
	"dockhand/internal/config/logger"
)

// Pump runs a source and publishes what it produces on the event bus
type Pump interface {
	Run(ctx context.Context, src Source) error
}

type pump struct {
	eventBus runtime.EventBus
	log      logger.Logger
}

// NewPump creates a new pump
func NewPump(eventBus runtime.EventBus, log logger.Logger) Pump {
	return &pump{
		eventBus: eventBus,
		log:      log.WithComponent("PUMP"),
	}
}

// Run opens src and streams it until the source ends or ctx is cancelled.
// Every run ends with exactly one source_closed event.
func (p *pump) Run(ctx context.Context, src Source) error {
	info, err := src.Open(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msgf("Failed to open source '%s'", src.Name())
		p.closed(src.Name(), err)

		return err
	}

	name := src.Name()

	p.eventBus.Publish(runtime.Event{
		Type:     runtime.EventSourceOpened,
		Data:     runtime.SourceOpenedData{Source: name, PID: info.PID},
		Critical: true,
	})

	p.log.Info().Msgf("Streaming '%s'", name)

	err = src.Stream(ctx, func(line Line) {
		p.eventBus.Publish(runtime.Event{
			Type:     runtime.EventLogLine,
			Data:     runtime.LogLineData{Source: name, Stream: line.Stream, Message: line.Message},
			Critical: true,
		})
	})

	if ctx.Err() != nil {
		err = nil
	}

	if err != nil {
		p.log.Warn().Err(err).Msgf("Source '%s' failed", name)
	}

	p.closed(name, err)

	return err
}

func (p *pump) closed(name string, err error) {
	p.eventBus.Publish(runtime.Event{
		Type:     runtime.EventSourceClosed,
		Data:     runtime.SourceClosedData{Source: name, Error: err},
		Critical: true,
	})
}
