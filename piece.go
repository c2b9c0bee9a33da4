package ncube

// Visual is the rendering-side counterpart of a piece. The engine only
// ever pushes state out through it: the final transform after each
// rotation and the initial face visibility. Implementations belong to
// the host (a TUI cell, a scene-graph node); the engine never reads from
// them.
type Visual interface {
	// SetTransform moves the visual to the piece's grid position and
	// orientation. Called once at initialization and again when a
	// rotation's logical update commits.
	SetTransform(position Vec3, orientation Orientation)

	// SetFaceVisible shows or hides one of the piece's six faces.
	// Called only during initialization.
	SetFaceVisible(f Face, visible bool)
}

// PieceFactory produces one visual per shell coordinate at
// initialization time.
type PieceFactory interface {
	NewPiece(at Vec3) Visual
}

// PieceFactoryFunc adapts a function to the PieceFactory interface.
type PieceFactoryFunc func(at Vec3) Visual

func (f PieceFactoryFunc) NewPiece(at Vec3) Visual {
	return f(at)
}

// NopFactory returns a factory producing no visuals. Use it for headless
// cubes: simulation, scramble generation, tests.
func NopFactory() PieceFactory {
	return PieceFactoryFunc(func(Vec3) Visual { return nil })
}

// Piece is one visible cublet occupying a shell coordinate.
type Piece struct {
	Position    Vec3
	Orientation Orientation

	visual Visual
}

// sync pushes the piece's current transform to its visual, if any.
func (p *Piece) sync() {
	if p.visual != nil {
		p.visual.SetTransform(p.Position, p.Orientation)
	}
}
