//go:generate mockgen -source=command.go -destination=command_mock.go -package=commands
package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dockhand/internal/app/errors"
)

// CommandID identifies a registered command
type CommandID int

// Command is a named image plus command line that can be started as a container
type Command struct {
	ID      CommandID `json:"Id"`
	Name    string    `json:"Name"`
	Image   string    `json:"Image"`
	Command string    `json:"Command"`
}

// Service manages registered commands
type Service interface {
	Command(ctx context.Context, id CommandID) (*Command, error)
	Commands(ctx context.Context) ([]Command, error)
	// CreateCommand assigns an ID to command and saves it
	CreateCommand(ctx context.Context, command *Command) error
	UpdateCommand(ctx context.Context, id CommandID, command *Command) error
	DeleteCommand(ctx context.Context, id CommandID) error
}

// ParseID converts a path or argument value into a CommandID
func ParseID(s string) (CommandID, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidCommandID, s)
	}

	return CommandID(id), nil
}

// Merge copies the non-empty fields of patch onto c
func (c *Command) Merge(patch Command) {
	if patch.Name != "" {
		c.Name = patch.Name
	}

	if patch.Image != "" {
		c.Image = patch.Image
	}

	if patch.Command != "" {
		c.Command = patch.Command
	}
}
