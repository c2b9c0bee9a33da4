package ncube

import "math/rand"

// Scramble returns a random sequence of count moves for a cube of the
// given edge length. Consecutive moves never share an axis: when the
// draw repeats the previous axis, the next axis in cyclic order is used
// instead, so scrambles cannot pile turns onto one axis.
func Scramble(dimensions, count int, rng *rand.Rand) []Move {
	moves := make([]Move, 0, count)
	prev := Axis(-1)
	for i := 0; i < count; i++ {
		axis := Axis(rng.Intn(3))
		if axis == prev {
			axis = axis.next()
		}
		prev = axis
		moves = append(moves, Move{
			Axis:     axis,
			Layer:    rng.Intn(dimensions),
			Positive: rng.Intn(2) == 0,
		})
	}
	return moves
}

// Shuffle queues count pseudo-random unrecorded rotations and lets Tick
// execute them sequentially, each step's animation completing before the
// next begins. A shuffle requested while the cube is busy is silently
// dropped, like any other rotation request; shuffle steps never enter
// the move history.
func (c *Cube) Shuffle(count int, speed float64) {
	if c.Busy() || count <= 0 {
		return
	}
	c.pending = Scramble(c.dimensions, count, c.rng)
	c.pendingSpeed = speed
}
