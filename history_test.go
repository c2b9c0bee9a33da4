package ncube

import "testing"

func TestHistoryRecordAndPop(t *testing.T) {
	h := NewHistory(4)
	moves := []Move{{X, 0, true}, {Y, 1, false}, {Z, 2, true}}
	for _, m := range moves {
		h.Record(m)
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	for i := len(moves) - 1; i >= 0; i-- {
		m, ok := h.PopLast()
		if !ok {
			t.Fatalf("PopLast returned empty at %d", i)
		}
		if m != moves[i] {
			t.Errorf("PopLast = %v, want %v", m, moves[i])
		}
	}
	if _, ok := h.PopLast(); ok {
		t.Error("PopLast on empty history should report empty")
	}
}

func TestHistoryWraparound(t *testing.T) {
	// With capacity C, after C+1 records the oldest move is gone and the
	// remaining C pop in reverse recording order.
	const capacity = 3
	h := NewHistory(capacity)
	recorded := []Move{
		{X, 0, true},  // move_0, overwritten
		{Y, 1, false}, // move_1
		{Z, 2, true},  // move_2
		{X, 1, false}, // move_3
	}
	for _, m := range recorded {
		h.Record(m)
	}
	if h.Len() != capacity {
		t.Fatalf("Len = %d, want %d", h.Len(), capacity)
	}
	for i := len(recorded) - 1; i >= 1; i-- {
		m, ok := h.PopLast()
		if !ok {
			t.Fatalf("PopLast returned empty for move_%d", i)
		}
		if m != recorded[i] {
			t.Errorf("PopLast = %v, want %v", m, recorded[i])
		}
	}
	if _, ok := h.PopLast(); ok {
		t.Error("move_0 should have been overwritten and unrecoverable")
	}
}

func TestHistoryZeroCapacityDisabled(t *testing.T) {
	h := NewHistory(0)
	h.Record(Move{X, 0, true})
	if h.Len() != 0 || h.Cap() != 0 {
		t.Errorf("disabled history recorded something: len=%d cap=%d", h.Len(), h.Cap())
	}
	if _, ok := h.PopLast(); ok {
		t.Error("disabled history should always pop empty")
	}
}

func TestHistoryRefillAfterDrain(t *testing.T) {
	h := NewHistory(2)
	h.Record(Move{X, 0, true})
	h.PopLast()
	h.Record(Move{Y, 1, true})
	h.Record(Move{Z, 0, false})
	h.Record(Move{X, 1, true}) // overwrites Y1
	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	m, _ := h.PopLast()
	if (m != Move{X, 1, true}) {
		t.Errorf("PopLast = %v, want X1", m)
	}
	m, _ = h.PopLast()
	if (m != Move{Z, 0, false}) {
		t.Errorf("PopLast = %v, want Z0'", m)
	}
}
