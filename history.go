package ncube

// History is a fixed-capacity ring buffer of recorded moves, used for
// undo. Once full, the oldest entry is silently overwritten; no
// operation fails. A capacity of 0 disables recording entirely.
type History struct {
	moves  []Move
	cursor int // next write position
	size   int // logical size, <= capacity
}

// NewHistory creates a history with the given capacity. Capacity 0
// yields a disabled history whose Record is a no-op.
func NewHistory(capacity int) *History {
	h := &History{}
	if capacity > 0 {
		h.moves = make([]Move, capacity)
	}
	return h
}

// Record appends a move, overwriting the oldest entry when full.
func (h *History) Record(m Move) {
	if len(h.moves) == 0 {
		return
	}
	h.moves[h.cursor] = m
	h.cursor = (h.cursor + 1) % len(h.moves)
	if h.size < len(h.moves) {
		h.size++
	}
}

// PopLast removes and returns the most recently recorded move. The
// second return is false when the history is empty, meaning there is
// nothing to undo.
func (h *History) PopLast() (Move, bool) {
	if h.size == 0 {
		return Move{}, false
	}
	h.cursor = (h.cursor - 1 + len(h.moves)) % len(h.moves)
	h.size--
	return h.moves[h.cursor], true
}

// Len returns the number of moves currently recorded.
func (h *History) Len() int {
	return h.size
}

// Cap returns the history's capacity.
func (h *History) Cap() int {
	return len(h.moves)
}
