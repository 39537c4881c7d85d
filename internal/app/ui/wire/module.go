package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"dockhand/internal/app/monitor"
	"dockhand/internal/app/runtime"
	"dockhand/internal/app/ui/logs"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// UI creates a Bubble Tea program viewing the named source.
// The program is subscribed to the event bus before it is returned, so
// events published after the call are not lost.
type UI func(ctx context.Context, source string) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	logs.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	EventBus  runtime.EventBus
	Monitor   monitor.Monitor
	Clipboard logs.Clipboard
	Sender    *logs.Sender
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, source string) (*tea.Program, error) {
		log := params.Logger.WithComponent("TUI")

		model := logs.NewModel(
			ctx,
			logs.Options{
				Source:     source,
				Buffer:     params.Config.Viewer.Buffer,
				Wrap:       params.Config.Viewer.Wrap,
				Autoscroll: params.Config.Viewer.Autoscroll,
				Flash:      params.Config.Viewer.Flash,
			},
			params.Clipboard,
			params.Monitor,
			log,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Sender.Set(p.Send)
		logs.NewSubscriber(params.EventBus, params.Sender).Start(ctx)

		log.Debug().Msgf("Program created for '%s'", source)

		return p, nil
	}
}
