package ncube

import "time"

// animation tracks the visual phase of an in-flight rotation. The grid
// is already in its final state by the time one of these exists; only
// the rendered angle is still catching up.
type animation struct {
	move     Move
	speed    float64 // quarter-turns per second
	progress float64 // 0..1
}

// Rotate performs one recorded 90-degree slice rotation. The logical
// grid update happens immediately and atomically; the visual turn then
// animates across subsequent Tick calls at the given speed, expressed in
// quarter-turns per second (speed <= 0 finishes on the next tick).
//
// Returns ErrInvalidAxis or ErrInvalidLayer for bad arguments. A call
// made while a rotation is in flight is silently dropped: concurrent
// requests are ignored, never queued.
func (c *Cube) Rotate(axis Axis, layer int, positive bool, speed float64) error {
	return c.rotate(Move{Axis: axis, Layer: layer, Positive: positive}, speed, true)
}

// Undo pops the most recent recorded move and replays it inverted,
// without recording. It is a no-op while the cube is busy or when the
// history is empty.
func (c *Cube) Undo(speed float64) {
	if c.Busy() {
		return
	}
	m, ok := c.history.PopLast()
	if !ok {
		return
	}
	c.rotate(m.Inverse(), speed, false)
}

func (c *Cube) rotate(m Move, speed float64, record bool) error {
	if !m.Axis.Valid() {
		return ErrInvalidAxis
	}
	if m.Layer < 0 || m.Layer > c.Border() {
		return ErrInvalidLayer
	}
	if c.rotating {
		return nil
	}

	c.rotating = true
	if record {
		c.history.Record(m)
	}
	c.applyMove(m)
	c.anim = &animation{move: m, speed: speed}
	return nil
}

// applyMove remaps every piece of the rotated slice and composes its
// orientation with the turn. Destinations are staged first and committed
// afterwards: writing into the grid mid-pass would overwrite pieces not
// yet read, corrupting the permutation.
func (c *Cube) applyMove(m Move) {
	ua, va := m.Axis.Tangents()
	border := c.Border()

	type staged struct {
		dst   Vec3
		piece *Piece
	}
	buf := make([]staged, 0, 4*c.dimensions)

	for u := 0; u <= border; u++ {
		for v := 0; v <= border; v++ {
			if !shellCell(u, v, m.Layer, border) {
				continue
			}
			src := coordAt(m.Axis, m.Layer, ua, u, va, v)
			du, dv := RotateQuarter(u, v, border, m.Positive)
			dst := coordAt(m.Axis, m.Layer, ua, du, va, dv)
			buf = append(buf, staged{dst: dst, piece: c.grid[src]})
		}
	}

	for _, s := range buf {
		s.piece.Position = s.dst
		s.piece.Orientation = s.piece.Orientation.Rotated(m.Axis, m.Positive)
		c.grid[s.dst] = s.piece
		s.piece.sync()
	}
}

// Tick advances the engine by dt. Hosts call it once per frame: it moves
// the in-flight animation forward, and once the turn completes it snaps
// to the exact 90-degree target, clears the rotating flag, fires the
// Changed callback and then, if the cube is now solved, the Solved
// callback. With shuffle steps queued, the next step starts as soon as
// the cube is idle.
func (c *Cube) Tick(dt time.Duration) {
	if a := c.anim; a != nil {
		if a.speed <= 0 {
			a.progress = 1
		} else {
			a.progress += a.speed * dt.Seconds()
		}
		if a.progress >= 1 {
			move := a.move
			c.anim = nil
			c.rotating = false
			c.fireChanged(move)
			if c.IsSolved() {
				c.fireSolved()
			}
		}
	}

	if !c.rotating && len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		c.rotate(next, c.pendingSpeed, false)
	}
}

// Animating reports the in-flight move and the current animation angle
// in degrees (0..90). Renderers use it to draw the turning slice; the
// sign of the turn is carried by the move's Positive flag.
func (c *Cube) Animating() (Move, float64, bool) {
	if c.anim == nil {
		return Move{}, 0, false
	}
	return c.anim.move, c.anim.progress * 90, true
}
