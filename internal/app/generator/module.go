package generator

import "go.uber.org/fx"

// Module provides the dockhand.yaml template generator
var Module = fx.Module("generator",
	fx.Provide(NewGenerator),
)
