//go:generate mockgen -source=source.go -destination=source_mock.go -package=source
package source

import (
	"context"
	"strings"
)

// Line is one line read from a source
type Line struct {
	Stream  string
	Message string
}

// Info describes an opened source
type Info struct {
	// PID is the host process ID behind the source, zero when unknown
	PID int
}

// Source produces log lines from a container or a file
type Source interface {
	// Name identifies the source in the viewer header and events
	Name() string
	// Open resolves the source and reports what is known about it
	Open(ctx context.Context) (Info, error)
	// Stream emits lines until the source ends or ctx is cancelled.
	// emit is never called concurrently.
	Stream(ctx context.Context, emit func(Line)) error
}

func trimLine(s string) string {
	return strings.TrimRight(s, "\r\n")
}
