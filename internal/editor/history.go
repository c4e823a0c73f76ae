package editor

// History is the undo stack. It always holds at least the root snapshot.
type History struct {
	snapshots []Snapshot
}

func NewHistory(root Snapshot) *History {
	return &History{snapshots: []Snapshot{root}}
}

// Current returns the most recent snapshot.
func (h *History) Current() Snapshot {
	return h.snapshots[len(h.snapshots)-1]
}

func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots, s)
}

// Undo drops the most recent snapshot. The root is never removed; Undo
// reports whether anything was dropped.
func (h *History) Undo() bool {
	if len(h.snapshots) <= 1 {
		return false
	}
	h.snapshots[len(h.snapshots)-1] = Snapshot{}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return true
}

func (h *History) Len() int {
	return len(h.snapshots)
}
