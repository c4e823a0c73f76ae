package editor

// Command identifies one editing operation. The set is closed; every value
// except CmdNone has exactly one input token.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdAppend
	CmdInsert
	CmdMoveLeft
	CmdMoveRight
	CmdLineStart
	CmdLineEnd
	CmdWordForward
	CmdWordBackward
	CmdDeleteChar
	CmdDeleteWord
	CmdUndo
	CmdRepeat
	CmdToggleCursor
	CmdMoveUp
	CmdMoveDown
	CmdYankLine
	CmdPasteBelow
	CmdPasteAbove
	CmdDeleteLine
	CmdOpenBelow
	CmdOpenAbove
	CmdToggleMarker
	CmdShow
	CmdHelp
)

var commandTokens = [...]string{
	CmdNone:         "",
	CmdQuit:         "q",
	CmdAppend:       "a",
	CmdInsert:       "i",
	CmdMoveLeft:     "h",
	CmdMoveRight:    "l",
	CmdLineStart:    "^",
	CmdLineEnd:      "$",
	CmdWordForward:  "w",
	CmdWordBackward: "b",
	CmdDeleteChar:   "x",
	CmdDeleteWord:   "dw",
	CmdUndo:         "u",
	CmdRepeat:       "r",
	CmdToggleCursor: ".",
	CmdMoveUp:       "j",
	CmdMoveDown:     "k",
	CmdYankLine:     "yy",
	CmdPasteBelow:   "p",
	CmdPasteAbove:   "P",
	CmdDeleteLine:   "dd",
	CmdOpenBelow:    "o",
	CmdOpenAbove:    "O",
	CmdToggleMarker: ";",
	CmdShow:         "s",
	CmdHelp:         "?",
}

var tokenCommands = func() map[string]Command {
	m := make(map[string]Command, len(commandTokens))
	for cmd, tok := range commandTokens {
		if tok != "" {
			m[tok] = Command(cmd)
		}
	}
	return m
}()

// Token returns the input token for c, or "" for CmdNone and unknown values.
func (c Command) Token() string {
	if c < 0 || int(c) >= len(commandTokens) {
		return ""
	}
	return commandTokens[c]
}

func (c Command) String() string {
	if c == CmdNone {
		return "none"
	}
	if tok := c.Token(); tok != "" {
		return tok
	}
	return "invalid"
}

// TakesText reports whether the command consumes trailing text from the
// input line.
func (c Command) TakesText() bool {
	return c == CmdInsert || c == CmdAppend
}

// Lookup resolves an exact input token.
func Lookup(token string) (Command, bool) {
	cmd, ok := tokenCommands[token]
	return cmd, ok
}

// HelpEntry is one line of the help listing.
type HelpEntry struct {
	Token       string
	Description string
}

var helpEntries = []HelpEntry{
	{"?", "display this help info"},
	{".", "toggle row cursor on and off"},
	{";", "toggle line cursor on and off"},
	{"h", "move cursor left"},
	{"j", "move cursor up"},
	{"k", "move cursor down"},
	{"l", "move cursor right"},
	{"^", "move cursor to beginning of the line"},
	{"$", "move cursor to end of the line"},
	{"w", "move cursor to beginning of next word"},
	{"b", "move cursor to beginning of previous word"},
	{"i", "insert <text> before cursor"},
	{"a", "append <text> after cursor"},
	{"x", "delete character at cursor"},
	{"dw", "delete word and trailing spaces at cursor"},
	{"yy", "copy current line to memory"},
	{"p", "paste copied line(s) below line cursor"},
	{"P", "paste copied line(s) above line cursor"},
	{"dd", "delete line"},
	{"o", "insert empty line below"},
	{"O", "insert empty line above"},
	{"u", "undo previous command"},
	{"r", "repeat last command"},
	{"s", "show content"},
	{"q", "quit program"},
}

// Help returns the help listing in display order.
func Help() []HelpEntry {
	out := make([]HelpEntry, len(helpEntries))
	copy(out, helpEntries)
	return out
}

// String formats the entry the way the help command prints it.
func (h HelpEntry) String() string {
	return h.Token + " - " + h.Description
}
