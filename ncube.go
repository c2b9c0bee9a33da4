// Package ncube implements the logical state and move algebra of an
// N×N×N slice-rotation puzzle (a generalized Rubik's cube).
//
// # Features
//
//   - Cube state for any edge length D >= 2 (shell pieces only)
//   - 90-degree slice rotations about any axis and layer
//   - Drift-free piece orientations (discrete quarter-turn algebra)
//   - Fixed-capacity move history with undo
//   - Solved-state detection per layer and for the whole cube
//   - Scramble generation with an anti-repetition axis rule
//   - Tick-driven rotation animation for host render loops
//
// # Quick Start
//
// Create a cube, rotate a slice, and drive the animation to completion:
//
//	cube, err := ncube.New(3, ncube.NopFactory())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.OnChanged(func(m ncube.Move) {
//	    fmt.Println("Completed:", m.Notation())
//	})
//	cube.OnSolved(func() {
//	    fmt.Println("Solved!")
//	})
//
//	cube.Rotate(ncube.X, 0, true, 4) // 4 quarter-turns per second
//	for cube.Busy() {
//	    cube.Tick(16 * time.Millisecond) // host frame loop
//	}
//
// # Rotation Contract
//
// Rotate applies the logical grid update immediately and atomically, then
// animates the turn across subsequent Tick calls. While a rotation is in
// flight every further Rotate, Undo, and Shuffle request is silently
// dropped; requests are never queued. Animating exposes the in-flight
// move and angle so a renderer can draw the turning slice.
//
// # Scrambling and Undo
//
//	cube.Shuffle(25, 8)      // 25 unrecorded random turns
//	cube.Rotate(ncube.Y, 2, false, 4)
//	cube.Undo(4)             // replays Y2 inverted, unrecorded
//
// Scramble steps never repeat the previous step's axis, and scrambles and
// undos never enter the move history.
package ncube
