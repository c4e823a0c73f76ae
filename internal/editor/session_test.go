package editor

import (
	"errors"
	"reflect"
	"testing"
)

func mustExec(t *testing.T, s *Session, token, arg string) {
	t.Helper()
	if err := s.ExecuteToken(token, arg); err != nil {
		t.Fatalf("execute %q: %v", token, err)
	}
}

func TestNewSessionBootstrap(t *testing.T) {
	s := NewSession()
	cur := s.Current()
	if cur.Command != CmdNone || cur.Line != "" || cur.Col != 1 || cur.ActiveRow != 1 {
		t.Fatalf("bootstrap = %+v", cur)
	}
	if cur.CursorHighlight || cur.LineMarker || cur.RowCount() != 0 {
		t.Fatalf("bootstrap toggles/rows = %+v", cur)
	}
	if s.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth())
	}
}

func TestUndoAtRootIsIdempotent(t *testing.T) {
	s := NewSession()
	before := s.Current()
	for i := 0; i < 3; i++ {
		mustExec(t, s, "u", "")
	}
	if s.Depth() != 1 || !reflect.DeepEqual(s.Current(), before) {
		t.Fatalf("undo at root changed state: %+v", s.Current())
	}
}

func TestInsertUndoRoundTrip(t *testing.T) {
	s := NewSession()
	mustExec(t, s, "a", "hello")
	before := s.Current()
	mustExec(t, s, "i", "x")
	mustExec(t, s, "u", "")
	if !reflect.DeepEqual(s.Current(), before) {
		t.Fatalf("after undo = %+v, want %+v", s.Current(), before)
	}
}

func TestEveryEditPushesOneSnapshot(t *testing.T) {
	s := NewSession()
	for _, tok := range []string{"h", "l", "^", "$", "w", "b", "x", "dw", ".", "j", "k", "yy", "p", "P", "dd", "o", "O", ";", "s"} {
		depth := s.Depth()
		mustExec(t, s, tok, "")
		if s.Depth() != depth+1 {
			t.Fatalf("%q: depth = %d, want %d", tok, s.Depth(), depth+1)
		}
		if got := s.Current().Command.Token(); got != tok {
			t.Fatalf("%q: recorded command %q", tok, got)
		}
	}
}

func TestHelpAndQuitPushNothing(t *testing.T) {
	s := NewSession()
	mustExec(t, s, "?", "")
	if err := s.ExecuteToken("q", ""); !errors.Is(err, ErrQuit) {
		t.Fatalf("quit err = %v, want ErrQuit", err)
	}
	if s.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth())
	}
}

func TestUnknownToken(t *testing.T) {
	s := NewSession()
	err := s.ExecuteToken("zz", "")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
	if err := s.Execute(Command(999), ""); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
	if s.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth())
	}
}

func TestYankWithoutRowsClearsClipboard(t *testing.T) {
	s := NewSession()
	s.clipboard.Set("stale")
	mustExec(t, s, "yy", "")
	if _, ok := s.Clipboard().Get(); ok {
		t.Fatalf("clipboard still set")
	}
}

func TestYankPasteBelowScenario(t *testing.T) {
	s := newTestSession(state(1, 1, "ab", "cd"))
	mustExec(t, s, "yy", "")
	if text, ok := s.Clipboard().Get(); !ok || text != "ab" {
		t.Fatalf("clipboard = %q %v, want %q", text, ok, "ab")
	}
	mustExec(t, s, "p", "")
	cur := s.Current()
	if rows := cur.Lines(); !equalRows(rows, []string{"ab", "ab", "cd"}) {
		t.Fatalf("rows = %q, want [ab ab cd]", rows)
	}
	if cur.ActiveRow != 2 {
		t.Fatalf("active row = %d, want 2", cur.ActiveRow)
	}
}

func TestUndoKeepsClipboard(t *testing.T) {
	s := newTestSession(state(1, 1, "ab"))
	mustExec(t, s, "yy", "")
	mustExec(t, s, "u", "")
	if text, ok := s.Clipboard().Get(); !ok || text != "ab" {
		t.Fatalf("clipboard = %q %v after undo", text, ok)
	}
}

func TestDeleteLineOnRootOnlyLeavesState(t *testing.T) {
	root := state(1, 1, "")
	s := newTestSession(root)
	mustExec(t, s, "dd", "")
	cur := s.Current()
	if rows := cur.Lines(); !equalRows(rows, []string{""}) {
		t.Fatalf("rows = %q, want [\"\"]", rows)
	}
	if cur.Line != "" || cur.Col != 1 || cur.ActiveRow != 1 {
		t.Fatalf("state = %+v", cur)
	}
}

func TestClipboardMirror(t *testing.T) {
	var got []string
	s := NewSession(WithClipboardMirror(func(text string) error {
		got = append(got, text)
		return nil
	}))
	mustExec(t, s, "yy", "")
	mustExec(t, s, "a", "copy me")
	mustExec(t, s, "yy", "")
	if len(got) != 1 || got[0] != "copy me" {
		t.Fatalf("mirror = %q, want [copy me]", got)
	}

	failing := NewSession(WithClipboardMirror(func(string) error {
		return errors.New("no clipboard")
	}))
	mustExec(t, failing, "a", "x")
	mustExec(t, failing, "yy", "")
	if text, ok := failing.Clipboard().Get(); !ok || text != "x" {
		t.Fatalf("clipboard = %q %v, want x", text, ok)
	}
}

func TestRepeatAppendReusesText(t *testing.T) {
	s := NewSession()
	mustExec(t, s, "a", "hi")
	mustExec(t, s, "r", "")
	cur := s.Current()
	if cur.Line != "hihi" || cur.Col != 4 {
		t.Fatalf("repeat = %q col %d, want %q col 4", cur.Line, cur.Col, "hihi")
	}
	if cur.Argument != " hi" {
		t.Fatalf("argument = %q, want %q", cur.Argument, " hi")
	}
}

func TestRepeatCommandWithoutText(t *testing.T) {
	s := NewSession()
	mustExec(t, s, "a", "abc")
	mustExec(t, s, "^", "")
	mustExec(t, s, "x", "")
	mustExec(t, s, "r", "")
	cur := s.Current()
	if cur.Line != "c" || cur.Command != CmdDeleteChar || cur.Argument != "" {
		t.Fatalf("repeat = %q cmd %v arg %q", cur.Line, cur.Command, cur.Argument)
	}
}

func TestRepeatAtRootIsNoOp(t *testing.T) {
	s := NewSession()
	mustExec(t, s, "r", "")
	if s.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth())
	}
}

func TestRowsSurviveNavigationAndUndo(t *testing.T) {
	s := NewSession()
	mustExec(t, s, "a", "one")
	mustExec(t, s, "o", "")
	mustExec(t, s, "a", "two")
	mustExec(t, s, "j", "")
	cur := s.Current()
	if cur.Line != "one" || cur.ActiveRow != 1 {
		t.Fatalf("after up = %q row %d", cur.Line, cur.ActiveRow)
	}
	if rows := cur.Lines(); !equalRows(rows, []string{"one", "two"}) {
		t.Fatalf("rows = %q", rows)
	}
	mustExec(t, s, "u", "")
	cur = s.Current()
	if cur.Line != "two" || cur.ActiveRow != 2 {
		t.Fatalf("after undo = %q row %d", cur.Line, cur.ActiveRow)
	}
	if rows := cur.Rows(); !equalRows(rows, []string{"one", ""}) {
		t.Fatalf("stored rows = %q, want [one \"\"]", rows)
	}
}

func TestViewReportsClipboard(t *testing.T) {
	s := newTestSession(state(2, 1, "ab"))
	v := s.View()
	if v.HasClipboard || v.Depth != 1 {
		t.Fatalf("view = %+v", v)
	}
	mustExec(t, s, "yy", "")
	v = s.View()
	if !v.HasClipboard || v.Clipboard != "ab" || v.Line != "ab" || v.Depth != 2 {
		t.Fatalf("view = %+v", v)
	}
}
