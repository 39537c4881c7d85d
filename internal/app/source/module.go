package source

import "go.uber.org/fx"

// Module provides the source pump
var Module = fx.Module("source",
	fx.Provide(NewPump),
)
