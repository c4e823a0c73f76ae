package editor

import "slices"

// Multi-row edits. Anything that leaves the active row flushes Line into
// its row first.

func moveUp(s Snapshot) Snapshot {
	n := s.next(CmdMoveUp)
	if s.ActiveRow <= 1 || s.ActiveRow > len(s.rows) {
		return n
	}
	return n.enterRow(s.flush(), s.ActiveRow-1)
}

func moveDown(s Snapshot) Snapshot {
	n := s.next(CmdMoveDown)
	if s.ActiveRow >= len(s.rows) {
		return n
	}
	return n.enterRow(s.flush(), s.ActiveRow+1)
}

// enterRow makes row (1-indexed) of rows the active line, keeping the
// cursor column where the new line allows.
func (s Snapshot) enterRow(rows []string, row int) Snapshot {
	s = s.withRows(rows)
	s.ActiveRow = row
	s.Line = rows[row-1]
	s.Col = clampCol(s.Col, s.Line)
	return s
}

// insertRow flushes and places text after the active row, or before it
// when above is set. It returns the new row's index and the rows.
func (s Snapshot) insertRow(text string, above bool) (int, []string) {
	rows := s.flush()
	at := s.ActiveRow
	if above {
		at = s.ActiveRow - 1
	}
	if at < 0 {
		at = 0
	}
	if at > len(rows) {
		at = len(rows)
	}
	return at + 1, slices.Insert(rows, at, text)
}

func pasteLine(s Snapshot, clip Clipboard, above bool) Snapshot {
	cmd := CmdPasteBelow
	if above {
		cmd = CmdPasteAbove
	}
	n := s.next(cmd)
	text, ok := clip.Get()
	if !ok {
		return n
	}
	n.Line = text
	if len(s.rows) == 0 {
		n.Col = normalizeCol(runeLen(text))
		n.ActiveRow = 1
		return n.withRows([]string{text})
	}
	n.Col = clampCol(s.Col, text)
	row, rows := s.insertRow(text, above)
	n.ActiveRow = row
	return n.withRows(rows)
}

// deleteLine drops the active row. depth is the current history length;
// with only the root snapshot present nothing changes.
func deleteLine(s Snapshot, depth int) Snapshot {
	n := s.next(CmdDeleteLine)
	if depth <= 1 {
		return n
	}
	if len(s.rows) > 1 && s.ActiveRow >= 1 && s.ActiveRow <= len(s.rows) {
		idx := s.ActiveRow - 1
		rows := slices.Delete(s.Rows(), idx, idx+1)
		if s.ActiveRow == len(s.rows) {
			idx--
		}
		return n.enterRow(rows, idx+1)
	}
	n.Line = ""
	n.Col = 1
	n.ActiveRow = 1
	return n.withRows(nil)
}

func openLine(s Snapshot, above bool) Snapshot {
	cmd := CmdOpenBelow
	if above {
		cmd = CmdOpenAbove
	}
	n := s.next(cmd)
	n.Line = ""
	n.Col = 1
	if len(s.rows) == 0 {
		n.ActiveRow = 1
		return n.withRows([]string{""})
	}
	row, rows := s.insertRow("", above)
	n.ActiveRow = row
	return n.withRows(rows)
}

func toggleRowMarker(s Snapshot) Snapshot {
	n := s.next(CmdToggleMarker)
	n.LineMarker = !s.LineMarker
	return n
}
