package editor

// state builds a snapshot on row active of rows, with that row as the
// active line.
func state(col, active int, rows ...string) Snapshot {
	s := Snapshot{Col: col, ActiveRow: active}
	if len(rows) > 0 {
		s.Line = rows[active-1]
	}
	return s.withRows(append([]string(nil), rows...))
}

func lone(line string, col int) Snapshot {
	return Snapshot{Line: line, Col: col, ActiveRow: 1}
}

func newTestSession(root Snapshot) *Session {
	return NewSession(withRoot(root))
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
