package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/qline/internal/editor"
)

// Frame is everything drawn in one pass: the editor view plus the state
// of the prompt owned by the input loop.
type Frame struct {
	View        editor.View
	Marker      string
	Prompt      string
	Input       []rune
	InputCursor int
	Status      string
	ShowHelp    bool
}

// Render draws rows at the top, a status line and the prompt line at the
// bottom. The terminal cursor always sits in the prompt.
func Render(s tcell.Screen, f Frame, st Styles) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	statusY := h - 2
	promptY := h - 1
	viewHeight := h - 2
	if viewHeight < 0 {
		viewHeight = 0
	}

	s.SetStyle(st.Main)
	s.Clear()

	lines := f.View.Lines()
	top := 0
	if f.View.ActiveRow > viewHeight {
		top = f.View.ActiveRow - viewHeight
	}
	gutter := 0
	if f.View.LineMarker {
		gutter = runewidth.StringWidth(f.Marker)
	}
	for y := 0; y < viewHeight; y++ {
		idx := top + y
		if idx >= len(lines) {
			break
		}
		active := idx == f.View.ActiveRow-1
		if active && f.View.LineMarker {
			drawText(s, 0, y, w, f.Marker, st.Marker)
		}
		drawLine(s, gutter, y, w, lines[idx], active, f.View, st)
	}

	if statusY >= 0 {
		clearLine(s, statusY, w, st.Status)
		drawText(s, 0, statusY, w, statusText(f), st.Status)
	}

	clearLine(s, promptY, w, st.Main)
	x := drawText(s, 0, promptY, w, f.Prompt, st.Prompt)
	cursorX := x
	for i, r := range f.Input {
		if i == f.InputCursor {
			cursorX = x
		}
		x = drawRune(s, x, promptY, w, r, st.Main)
	}
	if f.InputCursor >= len(f.Input) {
		cursorX = x
	}

	if f.ShowHelp {
		renderHelp(s, w, viewHeight, st.Help)
	}

	if cursorX >= w {
		cursorX = w - 1
	}
	s.SetCursorStyle(tcell.CursorStyleSteadyBar)
	s.ShowCursor(cursorX, promptY)
	s.Show()
}

func drawLine(s tcell.Screen, x, y, w int, line string, active bool, v editor.View, st Styles) {
	col := 0
	for _, r := range line {
		col++
		style := st.Main
		if active && v.CursorHighlight && col == v.Col {
			style = st.Cursor
		}
		x = drawRune(s, x, y, w, r, style)
		if x >= w {
			return
		}
	}
}

func statusText(f Frame) string {
	if f.Status != "" {
		return f.Status
	}
	v := f.View
	text := fmt.Sprintf(" row %d/%d  col %d  undo %d", v.ActiveRow, v.RowCount(), v.Col, v.Depth-1)
	if v.RowCount() == 0 {
		text = fmt.Sprintf(" no rows  col %d  undo %d", v.Col, v.Depth-1)
	}
	if v.HasClipboard {
		text += fmt.Sprintf("  yank %q", v.Clipboard)
	}
	return text
}

func renderHelp(s tcell.Screen, w, viewHeight int, style tcell.Style) {
	entries := editor.Help()
	boxW := 0
	for _, e := range entries {
		if n := runewidth.StringWidth(e.String()); n > boxW {
			boxW = n
		}
	}
	boxW += 2
	if boxW > w {
		boxW = w
	}
	for y := 0; y < viewHeight && y < len(entries); y++ {
		for x := 0; x < boxW; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
		drawText(s, 1, y, boxW, entries[y].String(), style)
	}
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func drawText(s tcell.Screen, x, y, w int, text string, style tcell.Style) int {
	for _, r := range text {
		if x >= w {
			break
		}
		x = drawRune(s, x, y, w, r, style)
	}
	return x
}

// drawRune places r at x and returns the next free column. Wide runes that
// do not fit are dropped.
func drawRune(s tcell.Screen, x, y, w int, r rune, style tcell.Style) int {
	rw := runewidth.RuneWidth(r)
	if rw == 0 {
		rw = 1
	}
	if x+rw > w {
		return x + rw
	}
	s.SetContent(x, y, r, nil, style)
	return x + rw
}
