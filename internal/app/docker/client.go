//go:generate mockgen -source=client.go -destination=client_mock.go -package=docker
package docker

import (
	"context"
	"io"
)

// Label marks containers started from a registered command
const Label = "dockhand.command"

// Container is the inspected state of a container
type Container struct {
	ID      string
	Name    string
	Image   string
	State   string
	Running bool
	PID     int
	TTY     bool
}

// LogsOptions controls which log lines are returned; a negative Tail returns everything
type LogsOptions struct {
	Tail   int
	Follow bool
}

// RunSpec describes a container to create and start
type RunSpec struct {
	Name    string
	Image   string
	Command string
}

// Client is the subset of the Docker engine API the console relies on
type Client interface {
	// Ping verifies the engine answers
	Ping(ctx context.Context) error
	// Inspect returns the container identified by id or name
	Inspect(ctx context.Context, id string) (Container, error)
	// Logs opens the log stream of a container
	Logs(ctx context.Context, id string, opts LogsOptions) (*LogStream, error)
	// Run creates and starts a container from a local image and returns its ID
	Run(ctx context.Context, spec RunSpec) (string, error)
	// Close releases the engine connection
	Close() error
}

// LogStream holds the demultiplexed output of a container.
// For TTY containers everything arrives on Stdout.
type LogStream struct {
	Stdout io.Reader
	Stderr io.Reader
	TTY    bool

	closer io.Closer
}

// NewLogStream assembles a stream; closer may be nil
func NewLogStream(stdout, stderr io.Reader, tty bool, closer io.Closer) *LogStream {
	return &LogStream{
		Stdout: stdout,
		Stderr: stderr,
		TTY:    tty,
		closer: closer,
	}
}

// Close stops the underlying connection, unblocking readers
func (s *LogStream) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}
