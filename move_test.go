package ncube

import "testing"

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		move Move
		want string
	}{
		{Move{X, 0, true}, "X0"},
		{Move{X, 0, false}, "X0'"},
		{Move{Y, 2, true}, "Y2"},
		{Move{Z, 11, false}, "Z11'"},
	}
	for _, c := range cases {
		if got := c.move.Notation(); got != c.want {
			t.Errorf("%+v.Notation() = %q, want %q", c.move, got, c.want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	m := Move{Y, 3, true}
	inv := m.Inverse()
	if inv.Axis != Y || inv.Layer != 3 || inv.Positive {
		t.Errorf("inverse of %v = %v", m, inv)
	}
	if inv.Inverse() != m {
		t.Error("double inverse should be the original move")
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"X0", Move{X, 0, true}},
		{"x0", Move{X, 0, true}},
		{"Y2'", Move{Y, 2, false}},
		{"z12", Move{Z, 12, true}},
		{" Z1' ", Move{Z, 1, false}},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in)
		if err != nil {
			t.Errorf("ParseMove(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "W0", "X-1", "Xa", "X0''"} {
		if _, err := ParseMove(in); err == nil {
			t.Errorf("ParseMove(%q) should fail", in)
		}
	}
}

func TestParseMovesSkipsInvalid(t *testing.T) {
	moves, err := ParseMoves("X0 junk Y2' Z1")
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(moves))
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	in := []Move{{X, 0, true}, {Y, 2, false}, {Z, 1, true}}
	s := FormatMoves(in)
	if s != "X0 Y2' Z1" {
		t.Errorf("FormatMoves = %q", s)
	}
	out, err := ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("round trip length %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("round trip move %d = %v, want %v", i, out[i], in[i])
		}
	}
}
