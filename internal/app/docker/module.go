package docker

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the Docker engine client and closes it on shutdown
var Module = fx.Module("docker",
	fx.Provide(NewClient),
	fx.Invoke(registerClose),
)

func registerClose(lc fx.Lifecycle, client Client) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
}
