package cli

import (
	"time"

	"github.com/spf13/cobra"

	"dockhand/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandHelp CommandType = iota
	CommandLogs
	CommandTail
	CommandRun
	CommandServe
	CommandList
	CommandGet
	CommandAdd
	CommandUpdate
	CommandRemove
	CommandToken
	CommandInit
	CommandVersion
)

// Options contains the parsed command-line arguments
type Options struct {
	Type CommandType
	// Target is the container, file or command ID the command acts on
	Target string
	IDs    []string
	// Tail is the number of existing lines to show, negative uses viewer.tail
	Tail   int
	NoUI   bool
	Force  bool
	DryRun bool
	Admin  bool
	TTL    time.Duration

	Name    string
	Image   string
	Command string
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandHelp,
		Tail: -1,
	}

	root := buildRootCommand(result)
	root.AddCommand(
		buildLogsCommand(result),
		buildTailCommand(result),
		buildRunCommand(result),
		buildServeCommand(result),
		buildCommandsCommand(result),
		buildTokenCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         config.AppDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandHelp
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Print log lines instead of starting the viewer")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

func buildLogsCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs <container>",
		Aliases: []string{"l"},
		Short:   "View the logs of a container",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandLogs
			result.Target = args[0]
		},
	}

	cmd.Flags().IntVarP(&result.Tail, "tail", "n", -1, "Number of existing lines to show")

	return cmd
}

func buildTailCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail <file>",
		Short: "View and follow a local log file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandTail
			result.Target = args[0]
		},
	}

	cmd.Flags().IntVarP(&result.Tail, "lines", "n", -1, "Number of existing lines to show")

	return cmd
}

func buildRunCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "run <command-id>",
		Aliases: []string{"r"},
		Short:   "Start a registered command and view its logs",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
			result.Target = args[0]
		},
	}
}

func buildServeCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the command registry API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandServe
		},
	}
}

func buildCommandsCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "commands",
		Aliases: []string{"cmd"},
		Short:   "Manage registered commands",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandList
		},
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered commands",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandList
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a registered command",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandGet
			result.Target = args[0]
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Register a command",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandAdd
		},
	}

	addCommandFlags(add, result)
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("image")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the non-empty fields of a command",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandUpdate
			result.Target = args[0]
		},
	}

	addCommandFlags(update, result)

	remove := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove"},
		Short:   "Remove one or more commands",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRemove
			result.IDs = args
		},
	}

	cmd.AddCommand(list, get, add, update, remove)

	return cmd
}

func addCommandFlags(cmd *cobra.Command, result *Options) {
	cmd.Flags().StringVar(&result.Name, "name", "", "Command name")
	cmd.Flags().StringVar(&result.Image, "image", "", "Image to start")
	cmd.Flags().StringVar(&result.Command, "command", "", "Command line passed to the container")
}

func buildTokenCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API bearer token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandToken
		},
	}

	cmd.Flags().BoolVar(&result.Admin, "admin", false, "Grant the administrator role")
	cmd.Flags().DurationVar(&result.TTL, "ttl", config.TokenTTL, "Token lifetime")

	return cmd
}

func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate a " + config.FileName + " template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
