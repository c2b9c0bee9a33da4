package ncube

import (
	"math/rand"
	"testing"
)

func TestLayerSolvedBaseline(t *testing.T) {
	c, _ := New(3, NopFactory())
	for _, axis := range []Axis{X, Y, Z} {
		for _, layer := range []int{0, 2} {
			if !c.IsLayerSolved(axis, layer) {
				t.Errorf("fresh cube: layer %v/%d should be solved", axis, layer)
			}
		}
	}
}

func TestLayerSolvedInvalidArgs(t *testing.T) {
	c, _ := New(3, NopFactory())
	if c.IsLayerSolved(Axis(9), 0) {
		t.Error("invalid axis should report not solved")
	}
	if c.IsLayerSolved(X, 3) {
		t.Error("out-of-range layer should report not solved")
	}
}

func TestFaceTurnKeepsOwnLayerSolved(t *testing.T) {
	// Turning the X=0 face rotates all its pieces identically, so that
	// layer stays uniform while the tangent layers break.
	c, _ := New(3, NopFactory())
	c.Rotate(X, 0, true, 0)
	settle(c)

	if !c.IsLayerSolved(X, 0) {
		t.Error("the turned face itself should still be uniform")
	}
	if !c.IsLayerSolved(X, 2) {
		t.Error("the opposite face was untouched and should be uniform")
	}
	if c.IsLayerSolved(Y, 0) {
		t.Error("a tangent layer should have broken")
	}
	if c.IsSolved() {
		t.Error("cube should not be solved")
	}
}

func TestSolvedAfterRotateUndoPair(t *testing.T) {
	c, _ := New(3, NopFactory())
	c.Rotate(X, 0, true, 0)
	settle(c)
	if c.IsSolved() {
		t.Fatal("cube should not be solved after the recorded turn")
	}
	c.Undo(0)
	settle(c)
	if !c.IsSolved() {
		t.Error("cube should be solved again after undo")
	}
}

func TestShuffleThenReverseSolves(t *testing.T) {
	c, _ := New(3, NopFactory(), WithRand(rand.New(rand.NewSource(42))))

	var applied []Move
	c.OnChanged(func(m Move) { applied = append(applied, m) })

	c.Shuffle(20, 0)
	settle(c)
	if len(applied) != 20 {
		t.Fatalf("shuffle applied %d moves, want 20", len(applied))
	}
	if c.History().Len() != 0 {
		t.Error("shuffle steps must not be recorded")
	}

	// Replay the exact inverse sequence.
	c.OnChanged(nil)
	for i := len(applied) - 1; i >= 0; i-- {
		inv := applied[i].Inverse()
		if err := c.Rotate(inv.Axis, inv.Layer, inv.Positive, 0); err != nil {
			t.Fatal(err)
		}
		settle(c)
	}
	if !c.IsSolved() {
		t.Error("reversing the shuffle should solve the cube")
		t.Log(c.String())
	}
}

func TestSolvedIndependentOfPosition(t *testing.T) {
	// Turning every layer about one axis is a whole-cube reorientation:
	// positions permute and orientations change, but each face stays
	// uniform. The detector compares orientations piece-to-piece, not
	// against the identity, so this must still read solved.
	c, _ := New(3, NopFactory())
	for layer := 0; layer < 3; layer++ {
		c.Rotate(Z, layer, true, 0)
		settle(c)
	}
	if !c.IsSolved() {
		t.Error("a whole-cube reorientation should still read solved")
		t.Log(c.String())
	}
}
