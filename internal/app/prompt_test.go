package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func typeText(p *prompt, text string) {
	for _, r := range text {
		p.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestPromptEditing(t *testing.T) {
	p := newPrompt("> ", 10)
	typeText(p, "iac")
	p.handleKey(key(tcell.KeyLeft))
	typeText(p, "b")
	if got := string(p.text); got != "iabc" {
		t.Fatalf("text = %q, want %q", got, "iabc")
	}
	if p.cursor != 3 {
		t.Fatalf("cursor = %d, want 3", p.cursor)
	}
	p.handleKey(key(tcell.KeyBackspace2))
	if got := string(p.text); got != "iac" {
		t.Fatalf("after backspace = %q, want %q", got, "iac")
	}
	p.handleKey(key(tcell.KeyHome))
	p.handleKey(key(tcell.KeyDelete))
	if got := string(p.text); got != "ac" {
		t.Fatalf("after delete = %q, want %q", got, "ac")
	}
	p.handleKey(key(tcell.KeyCtrlK))
	if len(p.text) != 0 {
		t.Fatalf("after kill = %q, want empty", string(p.text))
	}
}

func TestPromptTakeKeepsSpaces(t *testing.T) {
	p := newPrompt("> ", 10)
	typeText(p, "i  two  ")
	if got := p.take(); got != "i  two  " {
		t.Fatalf("take = %q, want %q", got, "i  two  ")
	}
	if len(p.text) != 0 || p.cursor != 0 {
		t.Fatalf("prompt not cleared: %q cursor %d", string(p.text), p.cursor)
	}
}

func TestPromptRecallPrefix(t *testing.T) {
	p := newPrompt("> ", 10)
	for _, in := range []string{"ifoo", "l", "l", "ibar"} {
		typeText(p, in)
		p.take()
	}
	if len(p.history) != 3 {
		t.Fatalf("history = %q, want consecutive duplicates merged", p.history)
	}

	typeText(p, "i")
	p.handleKey(key(tcell.KeyUp))
	if got := string(p.text); got != "ibar" {
		t.Fatalf("up = %q, want %q", got, "ibar")
	}
	p.handleKey(key(tcell.KeyUp))
	if got := string(p.text); got != "ifoo" {
		t.Fatalf("up = %q, want %q", got, "ifoo")
	}
	p.handleKey(key(tcell.KeyUp))
	if got := string(p.text); got != "ifoo" {
		t.Fatalf("up past oldest = %q, want %q", got, "ifoo")
	}
	p.handleKey(key(tcell.KeyDown))
	if got := string(p.text); got != "ibar" {
		t.Fatalf("down = %q, want %q", got, "ibar")
	}
	p.handleKey(key(tcell.KeyDown))
	if got := string(p.text); got != "i" {
		t.Fatalf("down past newest = %q, want typed prefix", got)
	}
}

func TestPromptHistoryLimit(t *testing.T) {
	p := newPrompt("> ", 2)
	for _, in := range []string{"h", "l", "0"} {
		typeText(p, in)
		p.take()
	}
	if len(p.history) != 2 || p.history[0] != "l" || p.history[1] != "0" {
		t.Fatalf("history = %q, want [l 0]", p.history)
	}
}

func TestPromptBlankNotRecorded(t *testing.T) {
	p := newPrompt("> ", 10)
	typeText(p, "   ")
	p.take()
	if len(p.history) != 0 {
		t.Fatalf("history = %q, want empty", p.history)
	}
}
