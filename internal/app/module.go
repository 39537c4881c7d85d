package app

import (
	"go.uber.org/fx"

	"dockhand/internal/app/api"
	"dockhand/internal/app/cli"
	"dockhand/internal/app/commands"
	"dockhand/internal/app/docker"
	"dockhand/internal/app/generator"
	"dockhand/internal/app/monitor"
	"dockhand/internal/app/notify"
	"dockhand/internal/app/runtime"
	"dockhand/internal/app/source"
	"dockhand/internal/app/ui/wire"
	"dockhand/internal/app/worker"
)

// Module assembles every component of the application
var Module = fx.Options(
	runtime.Module,
	docker.Module,
	monitor.Module,
	source.Module,
	commands.Module,
	notify.Module,
	worker.Module,
	api.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
