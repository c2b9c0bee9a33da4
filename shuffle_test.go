package ncube

import (
	"math/rand"
	"testing"
)

func TestScrambleAxisConstraint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	moves := Scramble(4, 500, rng)
	if len(moves) != 500 {
		t.Fatalf("scramble length = %d, want 500", len(moves))
	}
	for i, m := range moves {
		if !m.Axis.Valid() {
			t.Fatalf("move %d has invalid axis %v", i, m.Axis)
		}
		if m.Layer < 0 || m.Layer > 3 {
			t.Fatalf("move %d has out-of-range layer %d", i, m.Layer)
		}
		if i > 0 && m.Axis == moves[i-1].Axis {
			t.Fatalf("moves %d and %d share axis %v", i-1, i, m.Axis)
		}
	}
}

func TestScrambleUsesAllAxesAndDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	moves := Scramble(3, 300, rng)
	axes := make(map[Axis]int)
	dirs := make(map[bool]int)
	for _, m := range moves {
		axes[m.Axis]++
		dirs[m.Positive]++
	}
	if len(axes) != 3 {
		t.Errorf("scramble used %d axes, want 3", len(axes))
	}
	if dirs[true] == 0 || dirs[false] == 0 {
		t.Error("scramble should use both directions")
	}
}

func TestShuffleRunsSequentially(t *testing.T) {
	c, _ := New(3, NopFactory(), WithRand(rand.New(rand.NewSource(5))))

	completed := 0
	c.OnChanged(func(Move) {
		completed++
		if c.IsRotating() {
			t.Error("Changed fired while a rotation was still in flight")
		}
	})

	c.Shuffle(12, 0)
	if !c.Busy() {
		t.Fatal("shuffle should leave the cube busy")
	}
	settle(c)

	if completed != 12 {
		t.Errorf("completed %d rotations, want 12", completed)
	}
	if c.History().Len() != 0 {
		t.Error("shuffle rotations must not be recorded")
	}
	if c.Busy() {
		t.Error("cube should be idle after the shuffle drains")
	}
}

func TestShuffleWhileBusyIgnored(t *testing.T) {
	c, _ := New(3, NopFactory(), WithRand(rand.New(rand.NewSource(6))))
	c.Shuffle(5, 0)
	c.Shuffle(50, 0) // dropped: a shuffle is already queued

	completed := 0
	c.OnChanged(func(Move) { completed++ })
	settle(c)
	if completed != 5 {
		t.Errorf("completed %d rotations, want the original 5", completed)
	}
}

func TestShuffleNonPositiveCountNoop(t *testing.T) {
	c, _ := New(2, NopFactory())
	c.Shuffle(0, 0)
	c.Shuffle(-3, 0)
	if c.Busy() {
		t.Error("non-positive shuffle counts should be no-ops")
	}
}
