//go:generate mockgen -source=clipboard.go -destination=clipboard_mock.go -package=logs
package logs

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard capability used for exports
type Clipboard interface {
	// Supported reports whether the environment provides clipboard access
	Supported() bool
	// CopyText writes the lines, newline separated, to the clipboard
	CopyText(lines []string) error
}

type systemClipboard struct{}

// NewClipboard returns the system clipboard backed by xclip/xsel/wl-copy, pbcopy or the Windows API
func NewClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) Supported() bool {
	return !clipboard.Unsupported
}

func (c *systemClipboard) CopyText(lines []string) error {
	return clipboard.WriteAll(strings.Join(lines, "\n"))
}
