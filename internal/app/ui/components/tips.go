package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed while the viewer waits for output
var Tips = []string{
	tipDesc("Press ") + tipKey("space") + tipDesc(" to select the line under the cursor"),
	tipDesc("Press ") + tipKey("c") + tipDesc(" to copy the selection, ") + tipKey("y") + tipDesc(" to copy everything shown"),
	tipDesc("Press ") + tipKey("/") + tipDesc(" to filter, globs like ") + tipKey("*timeout*") + tipDesc(" work too"),
	tipDesc("Press ") + tipKey("w") + tipDesc(" to toggle line wrapping"),
	tipDesc("Pipe output without the TUI using ") + tipKey("dockhand logs web --no-ui"),
	tipDesc("Follow a local file with ") + tipKey("dockhand tail app.log"),
}

// Tip returns the tip for the n-th tick, cycling through Tips
func Tip(n int) string {
	if n < 0 {
		n = -n
	}

	return Tips[n%len(Tips)]
}
