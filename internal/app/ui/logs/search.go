package logs

import (
	"strings"

	"github.com/gobwas/glob"
)

const globMetaChars = "*?[{"

// Matcher filters log lines by the search text.
// Plain text matches as a case-insensitive substring; text with glob
// metacharacters must match the whole line.
type Matcher struct {
	pattern string
	needle  string
	glob    glob.Glob
}

// NewMatcher compiles pattern; an invalid glob falls back to substring matching and returns the compile error
func NewMatcher(pattern string) (Matcher, error) {
	m := Matcher{
		pattern: pattern,
		needle:  strings.ToLower(pattern),
	}

	if !strings.ContainsAny(pattern, globMetaChars) {
		return m, nil
	}

	g, err := glob.Compile(m.needle)
	if err != nil {
		return m, err
	}

	m.glob = g

	return m, nil
}

// Pattern returns the text the matcher was built from
func (m Matcher) Pattern() string {
	return m.pattern
}

// IsGlob reports whether the pattern is matched as a glob
func (m Matcher) IsGlob() bool {
	return m.glob != nil
}

// Match reports whether line passes the filter; an empty pattern matches everything
func (m Matcher) Match(line string) bool {
	if m.needle == "" {
		return true
	}

	lower := strings.ToLower(line)

	if m.glob != nil {
		return m.glob.Match(lower)
	}

	return strings.Contains(lower, m.needle)
}
