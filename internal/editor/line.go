package editor

import "unicode"

// Single-line edits. Each returns the snapshot to push for the command.

func insertText(s Snapshot, text string) Snapshot {
	line := []rune(s.Line)
	at := s.Col - 1
	if at > len(line) {
		at = len(line)
	}
	n := s.next(CmdInsert)
	n.Argument = " " + text
	n.Line = string(line[:at]) + text + string(line[at:])
	return ensureRow(n)
}

func appendText(s Snapshot, text string) Snapshot {
	line := []rune(s.Line)
	n := s.next(CmdAppend)
	n.Argument = " " + text
	if len(line) == 0 {
		n.Line = text
		n.Col = normalizeCol(s.Col + runeLen(text) - 1)
	} else {
		at := s.Col
		if at > len(line) {
			at = len(line)
		}
		n.Line = string(line[:at]) + text + string(line[at:])
		n.Col = normalizeCol(s.Col + runeLen(text))
	}
	return ensureRow(n)
}

// ensureRow starts a one-row buffer when text is typed with no rows yet.
func ensureRow(s Snapshot) Snapshot {
	if len(s.rows) > 0 {
		return s
	}
	s.ActiveRow = 1
	return s.withRows([]string{""})
}

func moveLeft(s Snapshot) Snapshot {
	n := s.next(CmdMoveLeft)
	if s.Line != "" && s.Col > 1 {
		n.Col = s.Col - 1
	}
	return n
}

func moveRight(s Snapshot) Snapshot {
	n := s.next(CmdMoveRight)
	if s.Line != "" {
		n.Col = clampCol(s.Col+1, s.Line)
	}
	return n
}

func moveLineStart(s Snapshot) Snapshot {
	n := s.next(CmdLineStart)
	n.Col = 1
	return n
}

func moveLineEnd(s Snapshot) Snapshot {
	n := s.next(CmdLineEnd)
	if s.Line != "" {
		n.Col = runeLen(s.Line)
	}
	return n
}

func moveWordForward(s Snapshot) Snapshot {
	n := s.next(CmdWordForward)
	n.Col = nextWordStart([]rune(s.Line), s.Col)
	return n
}

func moveWordBackward(s Snapshot) Snapshot {
	n := s.next(CmdWordBackward)
	n.Col = prevWordStart([]rune(s.Line), s.Col)
	return n
}

func deleteChar(s Snapshot) Snapshot {
	n := s.next(CmdDeleteChar)
	line := []rune(s.Line)
	if len(line) == 0 || s.Col > len(line) {
		return n
	}
	line = append(line[:s.Col-1], line[s.Col:]...)
	n.Line = string(line)
	if s.Col == len(line)+1 {
		n.Col = normalizeCol(s.Col - 1)
	}
	return n
}

// deleteWord removes from the cursor to the start of the next word. On a
// space only the run of spaces goes.
func deleteWord(s Snapshot) Snapshot {
	n := s.next(CmdDeleteWord)
	line := []rune(s.Line)
	if len(line) == 0 || s.Col > len(line) {
		return n
	}
	var end int
	if unicode.IsSpace(line[s.Col-1]) {
		end = nonSpaceFrom(line, s.Col)
	} else {
		end = wordStartFrom(line, s.Col)
	}
	if end < 0 {
		end = len(line)
	}
	n.Line = string(line[:s.Col-1]) + string(line[end:])
	if end == len(line) {
		n.Col = normalizeCol(s.Col - 1)
	}
	return n
}

func toggleCursorHighlight(s Snapshot) Snapshot {
	n := s.next(CmdToggleCursor)
	n.CursorHighlight = !s.CursorHighlight
	return n
}
