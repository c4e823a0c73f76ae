package editor

import "unicode/utf8"

// Snapshot is the full editor state after one command. Values are never
// modified once pushed; the row slice is copied before any change.
type Snapshot struct {
	Command  Command
	Argument string

	// Line is the text of the active row and is authoritative for it;
	// rows[ActiveRow-1] is only refreshed when a command crosses rows.
	Line string
	// Col is 1-indexed, 1 <= Col <= max(1, runes in Line).
	Col int

	CursorHighlight bool
	LineMarker      bool

	// ActiveRow is 1-indexed and ignored while there are no rows.
	ActiveRow int
	rows      []string
}

func bootstrap() Snapshot {
	return Snapshot{Col: 1, ActiveRow: 1}
}

// Rows returns a copy of the stored rows.
func (s Snapshot) Rows() []string {
	if len(s.rows) == 0 {
		return nil
	}
	out := make([]string, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s Snapshot) RowCount() int {
	return len(s.rows)
}

// Lines returns the rows as they should be displayed, with the active line
// in place of its possibly stale row.
func (s Snapshot) Lines() []string {
	return s.flush()
}

// next starts a snapshot for cmd from s, dropping the previous argument.
func (s Snapshot) next(cmd Command) Snapshot {
	n := s
	n.Command = cmd
	n.Argument = ""
	return n
}

// flush copies the rows and writes the active line into its row.
func (s Snapshot) flush() []string {
	rows := s.Rows()
	if s.ActiveRow >= 1 && s.ActiveRow <= len(rows) {
		rows[s.ActiveRow-1] = s.Line
	}
	return rows
}

func (s Snapshot) withRows(rows []string) Snapshot {
	if len(rows) == 0 {
		rows = nil
	}
	s.rows = rows
	return s
}

func runeLen(text string) int {
	return utf8.RuneCountInString(text)
}

// clampCol limits col to the length of line, never going below 1.
func clampCol(col int, line string) int {
	if n := runeLen(line); col > n {
		col = n
	}
	return normalizeCol(col)
}

func normalizeCol(col int) int {
	if col < 1 {
		return 1
	}
	return col
}
