//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"dockhand/internal/app/api"
	"dockhand/internal/app/commands"
	"dockhand/internal/app/docker"
	"dockhand/internal/app/generator"
	"dockhand/internal/app/runtime"
	"dockhand/internal/app/source"
	"dockhand/internal/app/ui/wire"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	// Execute runs the command named by the process arguments and returns the exit code
	Execute() (int, error)
}

// Params contains the dependencies of the command dispatcher
type Params struct {
	fx.In

	Config    *config.Config
	Docker    docker.Client
	Pump      source.Pump
	LogWriter runtime.LogWriter
	UI        wire.UI
	Commands  commands.Service
	Server    api.Server
	Auth      *api.Authenticator
	Generator generator.Generator
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	cfg       *config.Config
	args      []string
	docker    docker.Client
	pump      source.Pump
	logWriter runtime.LogWriter
	ui        wire.UI
	commands  commands.Service
	server    api.Server
	auth      *api.Authenticator
	generator generator.Generator
	log       logger.Logger

	out      io.Writer
	errOut   io.Writer
	terminal func() bool
	signals  func(ctx context.Context) (context.Context, context.CancelFunc)
}

// NewCLI creates a new cli instance for the process arguments
func NewCLI(p Params) CLI {
	return &cli{
		cfg:       p.Config,
		args:      os.Args[1:],
		docker:    p.Docker,
		pump:      p.Pump,
		logWriter: p.LogWriter,
		ui:        p.UI,
		commands:  p.Commands,
		server:    p.Server,
		auth:      p.Auth,
		generator: p.Generator,
		log:       p.Logger.WithComponent("CLI"),
		out:       os.Stdout,
		errOut:    os.Stderr,
		terminal:  isTerminal,
		signals:   notifyContext,
	}
}

// Execute parses the arguments and dispatches the selected command
func (c *cli) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		c.log.Debug().Err(err).Msg("Failed to parse arguments")
		fmt.Fprintf(c.errOut, "%s %v\n", errorStyle.Render("Error:"), err)
		fmt.Fprintf(c.errOut, "Use '%s' for more information.\n", commandName.Render(config.AppName+" help"))

		return 1, err
	}

	ctx, stop := c.signals(context.Background())
	defer stop()

	if err := c.dispatch(ctx, opts); err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		sentry.CaptureException(err)

		return 1, err
	}

	return 0, nil
}

func (c *cli) dispatch(ctx context.Context, opts *Options) error {
	switch opts.Type {
	case CommandLogs:
		return c.handleLogs(ctx, opts)
	case CommandTail:
		return c.handleTail(ctx, opts)
	case CommandRun:
		return c.handleRun(ctx, opts)
	case CommandServe:
		return c.handleServe(ctx)
	case CommandList:
		return c.handleList(ctx)
	case CommandGet:
		return c.handleGet(ctx, opts)
	case CommandAdd:
		return c.handleAdd(ctx, opts)
	case CommandUpdate:
		return c.handleUpdate(ctx, opts)
	case CommandRemove:
		return c.handleRemove(ctx, opts)
	case CommandToken:
		return c.handleToken(opts)
	case CommandInit:
		return c.handleInit(opts)
	case CommandVersion:
		return c.handleVersion()
	default:
		return c.handleHelp()
	}
}

func (c *cli) tail(opts *Options) int {
	if opts.Tail >= 0 {
		return opts.Tail
	}

	return c.cfg.Viewer.Tail
}

func (c *cli) handleLogs(ctx context.Context, opts *Options) error {
	c.log.Debug().Msgf("Viewing logs of container '%s'", opts.Target)

	src := source.NewDockerSource(c.docker, opts.Target, c.tail(opts), true, c.log)

	return c.view(ctx, src, opts.Target, opts.NoUI)
}

func (c *cli) handleTail(ctx context.Context, opts *Options) error {
	c.log.Debug().Msgf("Viewing file '%s'", opts.Target)

	src := source.NewFileSource(opts.Target, c.tail(opts), true, c.log)

	return c.view(ctx, src, src.Name(), opts.NoUI)
}

func (c *cli) handleRun(ctx context.Context, opts *Options) error {
	id, err := commands.ParseID(opts.Target)
	if err != nil {
		return err
	}

	command, err := c.commands.Command(ctx, id)
	if err != nil {
		fmt.Fprintf(c.errOut, "%s Unable to retrieve command %d\n", errorStyle.Render("Error:"), id)
		return err
	}

	containerID, err := c.docker.Run(ctx, docker.RunSpec{
		Name:    command.Name,
		Image:   command.Image,
		Command: command.Command,
	})
	if err != nil {
		fmt.Fprintf(c.errOut, "%s Unable to start '%s'\n", errorStyle.Render("Error:"), command.Name)
		return err
	}

	c.log.Info().Msgf("Started command '%s' as container %s", command.Name, containerID)

	src := source.NewDockerSource(c.docker, containerID, c.tail(opts), true, c.log)

	return c.view(ctx, src, command.Name, opts.NoUI)
}

// view pumps src into the event bus and shows it in the TUI or prints it
func (c *cli) view(ctx context.Context, src source.Source, name string, noUI bool) error {
	if noUI || !c.terminal() {
		return c.print(ctx, src)
	}

	viewCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p, err := c.ui(viewCtx, name)
	if err != nil {
		return fmt.Errorf("failed to create UI: %w", err)
	}

	done := make(chan error, 1)

	go func() {
		done <- c.pump.Run(viewCtx, src)
	}()

	_, runErr := p.Run()

	cancel()

	pumpErr := <-done
	if pumpErr != nil {
		c.log.Debug().Err(pumpErr).Msgf("Source '%s' ended", name)
	}

	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run UI: %w", runErr)
	}

	return nil
}

func (c *cli) print(ctx context.Context, src source.Source) error {
	c.logWriter.Start(ctx, c.out)

	err := c.pump.Run(ctx, src)

	if closeErr := c.logWriter.Close(); closeErr != nil {
		c.log.Warn().Err(closeErr).Msg("Failed to write log output")
	}

	return err
}

func (c *cli) handleServe(ctx context.Context) error {
	if err := c.server.Start(ctx); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s Serving on %s\n", successStyle.Render("✓"), c.server.Addr())

	var serveErr error

	select {
	case <-ctx.Done():
		c.log.Info().Msg("Shutting down server")
	case serveErr = <-c.server.Errors():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := c.server.Stop(stopCtx); err != nil && serveErr == nil {
		return err
	}

	return serveErr
}

func (c *cli) handleToken(opts *Options) error {
	role := api.RoleUser
	if opts.Admin {
		role = api.RoleAdmin
	}

	token, err := c.auth.Issue(role, opts.TTL)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, token)

	return nil
}

func (c *cli) handleInit(opts *Options) error {
	path := config.Path()
	if err := c.generator.Generate(path, opts.Force, opts.DryRun); err != nil {
		fmt.Fprintf(c.errOut, "%s %v\n", errorStyle.Render("Error:"), err)
		return err
	}

	if !opts.DryRun {
		fmt.Fprintf(c.out, "%s Created %s\n", successStyle.Render("✓"), path)
	}

	return nil
}

func (c *cli) handleHelp() error {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())

	return nil
}

func (c *cli) handleVersion() error {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())
	fmt.Fprintln(c.out)

	return nil
}

func isTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

func notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
