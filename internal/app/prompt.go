package app

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// prompt is the editable input line with recall of earlier submissions.
type prompt struct {
	label  string
	text   []rune
	cursor int

	history      []string
	historyLimit int
	// historyIndex is -1 while not browsing.
	historyIndex  int
	historyPrefix string
}

func newPrompt(label string, limit int) *prompt {
	return &prompt{label: label, historyLimit: limit, historyIndex: -1}
}

// take returns the current input, records it for recall and clears the
// line.
func (p *prompt) take() string {
	raw := string(p.text)
	if !isBlank(raw) && (len(p.history) == 0 || p.history[len(p.history)-1] != raw) {
		p.history = append(p.history, raw)
		if p.historyLimit > 0 && len(p.history) > p.historyLimit {
			p.history = p.history[len(p.history)-p.historyLimit:]
		}
	}
	p.reset()
	return raw
}

func (p *prompt) reset() {
	p.text = p.text[:0]
	p.cursor = 0
	p.historyIndex = -1
}

func (p *prompt) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlU:
		p.reset()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.cursor > 0 && len(p.text) > 0 {
			p.text = append(p.text[:p.cursor-1], p.text[p.cursor:]...)
			p.cursor--
			p.historyIndex = -1
		}
	case tcell.KeyDelete:
		if p.cursor < len(p.text) {
			p.text = append(p.text[:p.cursor], p.text[p.cursor+1:]...)
			p.historyIndex = -1
		}
	case tcell.KeyLeft, tcell.KeyCtrlB:
		if p.cursor > 0 {
			p.cursor--
		}
	case tcell.KeyRight, tcell.KeyCtrlF:
		if p.cursor < len(p.text) {
			p.cursor++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		p.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		p.cursor = len(p.text)
	case tcell.KeyUp, tcell.KeyCtrlP:
		p.historyUp()
	case tcell.KeyDown, tcell.KeyCtrlN:
		p.historyDown()
	case tcell.KeyCtrlK:
		p.text = p.text[:p.cursor]
		p.historyIndex = -1
	case tcell.KeyRune:
		p.text = append(p.text[:p.cursor], append([]rune{ev.Rune()}, p.text[p.cursor:]...)...)
		p.cursor++
		p.historyIndex = -1
	}
}

// historyUp moves to the previous entry starting with what was typed
// before browsing began.
func (p *prompt) historyUp() {
	if len(p.history) == 0 {
		return
	}
	if p.historyIndex == -1 {
		p.historyPrefix = string(p.text)
		p.historyIndex = len(p.history)
	}
	for i := p.historyIndex - 1; i >= 0; i-- {
		if strings.HasPrefix(p.history[i], p.historyPrefix) {
			p.historyIndex = i
			p.setText(p.history[i])
			return
		}
	}
}

func (p *prompt) historyDown() {
	if p.historyIndex == -1 {
		return
	}
	for i := p.historyIndex + 1; i < len(p.history); i++ {
		if strings.HasPrefix(p.history[i], p.historyPrefix) {
			p.historyIndex = i
			p.setText(p.history[i])
			return
		}
	}
	p.historyIndex = -1
	p.setText(p.historyPrefix)
}

func (p *prompt) setText(text string) {
	p.text = []rune(text)
	p.cursor = len(p.text)
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
