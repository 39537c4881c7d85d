package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"dockhand/internal/app/commands"
	"dockhand/internal/app/errors"
)

func (c *cli) handleList(ctx context.Context) error {
	list, err := c.commands.Commands(ctx)
	if err != nil {
		fmt.Fprintf(c.errOut, "%s Unable to retrieve commands\n", errorStyle.Render("Error:"))
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(c.out, labelMedium.Render("No commands registered"))
		return nil
	}

	fmt.Fprintln(c.out, renderCommands(list))

	return nil
}

func (c *cli) handleGet(ctx context.Context, opts *Options) error {
	id, err := commands.ParseID(opts.Target)
	if err != nil {
		return err
	}

	command, err := c.commands.Command(ctx, id)
	if err != nil {
		fmt.Fprintf(c.errOut, "%s Unable to retrieve command %d\n", errorStyle.Render("Error:"), id)
		return err
	}

	fmt.Fprintln(c.out, renderCommands([]commands.Command{*command}))

	return nil
}

// handleAdd registers a command and removes it again when the engine cannot run it
func (c *cli) handleAdd(ctx context.Context, opts *Options) error {
	command := &commands.Command{
		Name:    opts.Name,
		Image:   opts.Image,
		Command: opts.Command,
	}

	if err := c.commands.CreateCommand(ctx, command); err != nil {
		fmt.Fprintf(c.errOut, "%s Unable to create command\n", errorStyle.Render("Error:"))
		return err
	}

	if err := c.docker.Ping(ctx); err != nil {
		c.log.Warn().Err(err).Msgf("Docker engine unreachable, removing command %d", command.ID)

		if delErr := c.commands.DeleteCommand(ctx, command.ID); delErr != nil {
			c.log.Error().Err(delErr).Msgf("Failed to remove command %d", command.ID)
		}

		fmt.Fprintf(c.errOut, "%s Unable to create command\n", errorStyle.Render("Error:"))

		return err
	}

	fmt.Fprintf(c.out, "%s Created command %d\n", successStyle.Render("✓"), command.ID)

	return nil
}

func (c *cli) handleUpdate(ctx context.Context, opts *Options) error {
	id, err := commands.ParseID(opts.Target)
	if err != nil {
		return err
	}

	patch := &commands.Command{
		Name:    opts.Name,
		Image:   opts.Image,
		Command: opts.Command,
	}

	if err := c.commands.UpdateCommand(ctx, id, patch); err != nil {
		fmt.Fprintf(c.errOut, "%s Unable to update command %d\n", errorStyle.Render("Error:"), id)
		return err
	}

	fmt.Fprintf(c.out, "%s Updated command %d\n", successStyle.Render("✓"), id)

	return nil
}

// handleRemove removes every listed command, continuing past failures
func (c *cli) handleRemove(ctx context.Context, opts *Options) error {
	failed := 0

	for _, raw := range opts.IDs {
		id, err := commands.ParseID(raw)
		if err == nil {
			err = c.commands.DeleteCommand(ctx, id)
		}

		if err != nil {
			failed++

			c.log.Debug().Err(err).Msgf("Failed to remove command '%s'", raw)
			fmt.Fprintf(c.errOut, "%s Unable to remove command %s: %v\n", errorStyle.Render("Error:"), raw, err)

			continue
		}

		fmt.Fprintf(c.out, "%s Removed command %s\n", successStyle.Render("✓"), raw)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errors.ErrCommandsFailed, failed, len(opts.IDs))
	}

	return nil
}

func renderCommands(list []commands.Command) string {
	rows := make([][]string, 0, len(list))
	for _, command := range list {
		rows = append(rows, []string{
			strconv.Itoa(int(command.ID)),
			command.Name,
			command.Image,
			command.Command,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(labelMedium).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}

			return tableCell
		}).
		Headers("ID", "NAME", "IMAGE", "COMMAND").
		Rows(rows...).
		Render()
}
