package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kobzarvs/qline/internal/logger"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing text argument")
	// ErrQuit is returned for the quit command; the host decides how to exit.
	ErrQuit = errors.New("quit requested")
)

// Session owns the undo history and the clipboard of one editor. It is
// not safe for concurrent use.
type Session struct {
	history   *History
	clipboard Clipboard
	mirror    func(string) error
}

type Option func(*Session)

// WithClipboardMirror copies every yanked line to an external clipboard
// as well. Errors from write are logged and otherwise ignored.
func WithClipboardMirror(write func(string) error) Option {
	return func(s *Session) {
		s.mirror = write
	}
}

// withRoot replaces the bootstrap snapshot.
func withRoot(root Snapshot) Option {
	return func(s *Session) {
		root.Command = CmdNone
		root.Argument = ""
		root.Col = clampCol(root.Col, root.Line)
		if root.ActiveRow < 1 {
			root.ActiveRow = 1
		}
		s.history = NewHistory(root)
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{history: NewHistory(bootstrap())}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View is the read-only state handed to renderers.
type View struct {
	Snapshot
	Clipboard    string
	HasClipboard bool
	Depth        int
}

func (s *Session) View() View {
	text, ok := s.clipboard.Get()
	return View{
		Snapshot:     s.history.Current(),
		Clipboard:    text,
		HasClipboard: ok,
		Depth:        s.history.Len(),
	}
}

func (s *Session) Current() Snapshot {
	return s.history.Current()
}

func (s *Session) Depth() int {
	return s.history.Len()
}

func (s *Session) Clipboard() Clipboard {
	return s.clipboard
}

// ExecuteToken resolves token and executes it with arg.
func (s *Session) ExecuteToken(token, arg string) error {
	cmd, ok := Lookup(token)
	if !ok {
		logger.Warn("unknown command", "token", token)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, token)
	}
	return s.Execute(cmd, arg)
}

// Execute applies cmd. Every editing command pushes exactly one snapshot,
// even when its preconditions leave the state unchanged, so that undo
// always reverts the last command. Undo, help and quit push nothing;
// repeat pushes whatever the repeated command pushes.
func (s *Session) Execute(cmd Command, arg string) error {
	cur := s.history.Current()
	logger.Debug("execute", "cmd", cmd.String(), "depth", s.history.Len())

	var next Snapshot
	switch cmd {
	case CmdQuit:
		return ErrQuit
	case CmdHelp:
		return nil
	case CmdUndo:
		if !s.history.Undo() {
			logger.Debug("undo at root")
		}
		return nil
	case CmdRepeat:
		return s.RepeatLast()
	case CmdInsert:
		next = insertText(cur, arg)
	case CmdAppend:
		next = appendText(cur, arg)
	case CmdMoveLeft:
		next = moveLeft(cur)
	case CmdMoveRight:
		next = moveRight(cur)
	case CmdLineStart:
		next = moveLineStart(cur)
	case CmdLineEnd:
		next = moveLineEnd(cur)
	case CmdWordForward:
		next = moveWordForward(cur)
	case CmdWordBackward:
		next = moveWordBackward(cur)
	case CmdDeleteChar:
		next = deleteChar(cur)
	case CmdDeleteWord:
		next = deleteWord(cur)
	case CmdToggleCursor:
		next = toggleCursorHighlight(cur)
	case CmdMoveUp:
		next = moveUp(cur)
	case CmdMoveDown:
		next = moveDown(cur)
	case CmdYankLine:
		s.yank(cur)
		next = cur.next(CmdYankLine)
	case CmdPasteBelow:
		next = pasteLine(cur, s.clipboard, false)
	case CmdPasteAbove:
		next = pasteLine(cur, s.clipboard, true)
	case CmdDeleteLine:
		next = deleteLine(cur, s.history.Len())
	case CmdOpenBelow:
		next = openLine(cur, false)
	case CmdOpenAbove:
		next = openLine(cur, true)
	case CmdToggleMarker:
		next = toggleRowMarker(cur)
	case CmdShow:
		next = cur.next(CmdShow)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	s.history.Push(next)
	return nil
}

// RepeatLast runs the command that produced the current snapshot again.
// Insert and append reuse their text; every other command is handed its
// own token as argument.
func (s *Session) RepeatLast() error {
	if s.history.Len() <= 1 {
		return nil
	}
	top := s.history.Current()
	arg := top.Command.Token()
	if top.Command.TakesText() {
		arg = strings.TrimPrefix(top.Argument, " ")
	}
	logger.Debug("repeat", "cmd", top.Command.String())
	return s.Execute(top.Command, arg)
}

func (s *Session) yank(cur Snapshot) {
	if len(cur.rows) == 0 {
		s.clipboard.Clear()
		return
	}
	s.clipboard.Set(cur.Line)
	if s.mirror == nil {
		return
	}
	if err := s.mirror(cur.Line); err != nil {
		logger.Warn("clipboard mirror failed", "error", err)
	}
}
