package logs

import "go.uber.org/fx"

// Module provides the log viewer collaborators
var Module = fx.Options(
	fx.Provide(
		NewClipboard,
		NewSender,
	),
)
