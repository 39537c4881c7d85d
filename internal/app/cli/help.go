package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"dockhand/internal/config"
)

type helpEntry struct {
	usage       string
	description string
}

var usageEntries = []helpEntry{
	{"logs <container> [-n N]", "View the logs of a container"},
	{"tail <file> [-n N]", "View and follow a local log file"},
	{"run <command-id>", "Start a registered command and view its logs"},
	{"serve", "Serve the command registry API"},
	{"commands [list]", "List registered commands"},
	{"commands get <id>", "Show a registered command"},
	{"commands add --name --image", "Register a command"},
	{"commands update <id>", "Change the non-empty fields of a command"},
	{"commands rm <id>...", "Remove one or more commands"},
	{"token [--admin] [--ttl]", "Mint an API bearer token"},
	{"init [-f] [--dry-run]", "Generate a " + config.FileName + " template"},
	{"version", "Show version information"},
	{"help", "Show help"},
}

var exampleEntries = []helpEntry{
	{"logs api -n 200", "Last 200 lines of the api container"},
	{"tail /var/log/syslog --no-ui", "Print a file instead of opening the viewer"},
	{"commands add --name web --image nginx", "Register an nginx command"},
	{"run 1", "Start command 1 and follow it"},
}

var keyEntries = []helpEntry{
	{"↑/k ↓/j", "Move the cursor"},
	{"/", "Search, enter applies, esc cancels"},
	{"space", "Select or unselect the line"},
	{"c / y", "Copy selection / copy all"},
	{"w / a", "Toggle wrap / autoscroll"},
	{"q", "Quit"},
}

func renderEntries(entries []helpEntry, style lipgloss.Style) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.usage))
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		usage := fmt.Sprintf("%-*s", width, e.usage)
		lines = append(lines, bodyMedium.Render("  "+style.Render(usage)+"   "+labelMedium.Render(e.description)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderHelp renders the usage screen
func renderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderEntries(prefixed(usageEntries), commandName),
		sectionHeader.Render("Examples:"),
		renderEntries(prefixed(exampleEntries), exampleCode),
		sectionHeader.Render("Viewer keys:"),
		renderEntries(keyEntries, commandName),
		sectionHeader.Render("Options:"),
		renderEntries([]helpEntry{{"--no-ui", "Print log lines instead of starting the viewer"}}, commandName),
	) + "\n"
}

func prefixed(entries []helpEntry) []helpEntry {
	out := make([]helpEntry, len(entries))
	for i, e := range entries {
		out[i] = helpEntry{usage: config.AppName + " " + e.usage, description: e.description}
	}

	return out
}
