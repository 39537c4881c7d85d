package runtime

import (
	"go.uber.org/fx"

	"dockhand/internal/config"
)

// Module provides runtime dependencies for dependency injection
var Module = fx.Module("runtime",
	fx.Provide(
		func(cfg *config.Config) EventBus { return NewEventBus(cfg.Viewer.Buffer) },
		NewLogWriter,
	),
)
