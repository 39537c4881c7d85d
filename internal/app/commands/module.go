package commands

import "go.uber.org/fx"

// Module provides the registry client and the store opener
var Module = fx.Module("commands",
	fx.Provide(
		NewClient,
		NewOpener,
	),
)
