package logs

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/ansi"
)

// wrapText splits text into lines no wider than width display cells.
// Breaks happen at spaces; words wider than a line are split by cell.
// ANSI escape sequences are kept and take no width.
func wrapText(text string, width int) []string {
	if width <= 0 || ansi.PrintableRuneWidth(text) <= width {
		return []string{text}
	}

	var (
		lines     []string
		line      strings.Builder
		lineWidth int
		hasWord   bool
	)

	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()

		lineWidth = 0
		hasWord = false
	}

	for _, word := range strings.Split(text, " ") {
		w := ansi.PrintableRuneWidth(word)

		gap := 0
		if hasWord {
			gap = 1
		}

		if lineWidth+gap+w <= width {
			if gap == 1 {
				line.WriteByte(' ')
			}

			line.WriteString(word)
			lineWidth += gap + w
			hasWord = true

			continue
		}

		if hasWord {
			flush()
		}

		if w <= width {
			line.WriteString(word)
			lineWidth = w
			hasWord = true

			continue
		}

		pieces := breakWord(word, width)
		for _, piece := range pieces[:len(pieces)-1] {
			lines = append(lines, piece)
		}

		last := pieces[len(pieces)-1]
		line.WriteString(last)
		lineWidth = ansi.PrintableRuneWidth(last)
		hasWord = true
	}

	if hasWord {
		flush()
	}

	return lines
}

// breakWord cuts a single word into chunks of at most width cells
func breakWord(word string, width int) []string {
	var (
		pieces     []string
		piece      strings.Builder
		pieceWidth int
	)

	for i := 0; i < len(word); {
		if word[i] == '\x1b' {
			end := escapeEnd(word, i)
			piece.WriteString(word[i:end])
			i = end

			continue
		}

		r, size := utf8.DecodeRuneInString(word[i:])

		w := ansi.PrintableRuneWidth(string(r))
		if pieceWidth+w > width && pieceWidth > 0 {
			pieces = append(pieces, piece.String())
			piece.Reset()

			pieceWidth = 0
		}

		piece.WriteString(word[i : i+size])
		pieceWidth += w
		i += size
	}

	return append(pieces, piece.String())
}

// escapeEnd returns the index just past the escape sequence starting at i
func escapeEnd(s string, i int) int {
	j := i + 1
	for j < len(s) {
		c := s[j]
		j++

		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			break
		}
	}

	return j
}
