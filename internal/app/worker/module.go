package worker

import "go.uber.org/fx"

// Module provides the log stream pool
var Module = fx.Module("worker",
	fx.Provide(NewWorkerPool),
)
