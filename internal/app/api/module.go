package api

import "go.uber.org/fx"

// Module provides the API server and token authenticator
var Module = fx.Module("api",
	fx.Provide(
		NewAuthenticator,
		NewServer,
	),
)
