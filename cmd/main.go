package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"dockhand/internal/app"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	loadEnv()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	initSentry(cfg)

	args := os.Args[1:]
	noUI := hasNoUIFlag(args) || !term.IsTerminal(os.Stdout.Fd())
	application := createApp(cfg, usesViewer(args) && !noUI)
	application.Run()
}

// loadEnv reads the optional .env file so its values can override the config
func loadEnv() {
	if err := godotenv.Load(config.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to read %s: %v\n", config.EnvFile, err)
	}
}

// hasNoUIFlag checks if --no-ui flag is present in args
func hasNoUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--no-ui" {
			return true
		}
	}

	return false
}

// usesViewer reports whether the command may hand the terminal to the TUI
func usesViewer(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "logs", "l", "tail", "run", "r":
			return true
		}
	}

	return false
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// initSentry enables crash reporting when a DSN is configured
func initSentry(cfg *config.Config) {
	if cfg.Sentry.DSN == "" {
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     config.AppName + "@" + config.Version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialise sentry: %v\n", err)
	}
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, silent bool) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			if silent {
				return logger.NewSilentLogger(cfg)
			}

			return logger.NewLogger(cfg)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
