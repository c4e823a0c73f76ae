package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/qline/internal/editor"
)

const (
	ansiCursor = "\033[42m"
	ansiReset  = "\033[0m"
)

// Text renders the view for a plain terminal: one line per row, the active
// row prefixed with marker when the marker is on (other rows get padding
// of the same width) and the cursor rune wrapped in a green background
// when highlighting is on.
func Text(v editor.View, marker string) string {
	var b strings.Builder
	pad := strings.Repeat(" ", runewidth.StringWidth(marker))
	for i, row := range v.Lines() {
		if v.LineMarker {
			if i == v.ActiveRow-1 {
				b.WriteString(marker)
			} else {
				b.WriteString(pad)
			}
		}
		if i == v.ActiveRow-1 && v.CursorHighlight && row != "" {
			b.WriteString(highlight(row, v.Col))
		} else {
			b.WriteString(row)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func highlight(line string, col int) string {
	runes := []rune(line)
	if col < 1 || col > len(runes) {
		return line
	}
	return string(runes[:col-1]) + ansiCursor + string(runes[col-1]) + ansiReset + string(runes[col:])
}

// HelpText renders the help listing, one entry per line.
func HelpText() string {
	var b strings.Builder
	for _, e := range editor.Help() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
