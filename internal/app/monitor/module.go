package monitor

import "go.uber.org/fx"

// Module provides the process sampler used by the viewer header
var Module = fx.Module("monitor",
	fx.Provide(NewMonitor),
)
