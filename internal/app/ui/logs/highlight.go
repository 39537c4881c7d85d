package logs

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dockhand/internal/app/ui/components"
)

type levelRule struct {
	keywords string
	style    lipgloss.Style
}

var levelRules = []levelRule{
	{keywords: "ERROR|FATAL|PANIC|ERR", style: components.LogLevelErrorStyle},
	{keywords: "WARNING|WARN", style: components.LogLevelWarnStyle},
	{keywords: "INFO|INF", style: components.LogLevelInfoStyle},
	{keywords: "DEBUG|DBG|TRACE", style: components.LogLevelDebugStyle},
}

type highlightRule struct {
	pattern *regexp.Regexp
	render  func(match string) string
}

// Highlighter colors log levels, UUIDs and leading timestamps
type Highlighter struct {
	rules []highlightRule
}

func newHighlighter() Highlighter {
	var rules []highlightRule

	for _, lr := range levelRules {
		style := lr.style
		rules = append(rules,
			highlightRule{
				pattern: regexp.MustCompile(`(?i)\blevel=(` + lr.keywords + `)\b`),
				render:  func(m string) string { return style.Render(strings.ToLower(m)) },
			},
			highlightRule{
				pattern: regexp.MustCompile(`(?i)(^|[\s\[])(` + lr.keywords + `)\b\]?`),
				render:  func(m string) string { return renderKeyword(m, style) },
			},
		)
	}

	rules = append(rules,
		highlightRule{
			pattern: regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`),
			render:  func(m string) string { return components.UUIDStyle.Render(m) },
		},
		highlightRule{
			pattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?`),
			render:  func(m string) string { return components.TimestampStyle.Render(m) },
		},
	)

	return Highlighter{rules: rules}
}

// renderKeyword keeps the leading separator unstyled and upper-cases the level
func renderKeyword(match string, style lipgloss.Style) string {
	lead := ""
	if match != "" && (match[0] == ' ' || match[0] == '\t') {
		lead, match = match[:1], match[1:]
	}

	return lead + style.Render(strings.ToUpper(match))
}

var defaultHighlighter = newHighlighter()

func (h Highlighter) highlight(message string) string {
	result := message

	for _, r := range h.rules {
		result = r.pattern.ReplaceAllStringFunc(result, r.render)
	}

	return result
}

// highlightLogLevel applies color to log level keywords in the message
func highlightLogLevel(message string) string {
	return defaultHighlighter.highlight(message)
}
