package ncube

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Cube is the logical state of one N×N×N slice-rotation puzzle: a grid
// of shell pieces, the move history, and the in-flight rotation state.
//
// All mutating operations are synchronous with respect to each other;
// only the animation phase of a rotation spans multiple Tick calls, and
// the rotating flag keeps any other mutation from starting during it. A
// Cube is built once via New (or Init) and never reset in place; to
// start over, create a new one.
type Cube struct {
	dimensions int
	grid       map[Vec3]*Piece
	history    *History
	rng        *rand.Rand

	rotating     bool
	anim         *animation
	pending      []Move // queued shuffle steps
	pendingSpeed float64

	mu        sync.RWMutex
	onChanged func(Move)
	onSolved  func()
}

// New creates and initializes a cube of the given edge length. The
// factory is invoked once per shell coordinate to create the piece
// visuals; use NopFactory for a headless cube.
func New(dimensions int, factory PieceFactory, opts ...Option) (*Cube, error) {
	c := &Cube{}
	if err := c.Init(dimensions, factory, opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Init populates an empty cube. It fails with ErrAlreadyInitialized if
// the cube already holds a grid, ErrInvalidDimension for dimensions < 2,
// ErrNilFactory for a nil factory, and ErrInvalidHistoryCapacity for a
// negative history capacity.
func (c *Cube) Init(dimensions int, factory PieceFactory, opts ...Option) error {
	if c.grid != nil {
		return ErrAlreadyInitialized
	}
	if dimensions < 2 {
		return ErrInvalidDimension
	}
	if factory == nil {
		return ErrNilFactory
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.historyCapacity < 0 {
		return ErrInvalidHistoryCapacity
	}

	c.dimensions = dimensions
	c.history = NewHistory(cfg.historyCapacity)
	c.rng = cfg.rng
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	border := dimensions - 1
	c.grid = make(map[Vec3]*Piece)
	for x := 0; x < dimensions; x++ {
		for y := 0; y < dimensions; y++ {
			for z := 0; z < dimensions; z++ {
				at := Vec3{x, y, z}
				if !c.isShell(at) {
					continue
				}
				p := &Piece{
					Position:    at,
					Orientation: IdentityOrientation(),
					visual:      factory.NewPiece(at),
				}
				if p.visual != nil && cfg.hideInteriorFaces {
					for _, f := range Faces {
						p.visual.SetFaceVisible(f, onBoundary(at, f, border))
					}
				}
				p.sync()
				c.grid[at] = p
			}
		}
	}

	return nil
}

// isShell reports whether at is a shell coordinate: at least one
// component at 0 or the border index.
func (c *Cube) isShell(at Vec3) bool {
	border := c.dimensions - 1
	return at.X == 0 || at.X == border ||
		at.Y == 0 || at.Y == border ||
		at.Z == 0 || at.Z == border
}

// onBoundary reports whether the face f of a piece at the given
// coordinate points out of the cube.
func onBoundary(at Vec3, f Face, border int) bool {
	if f.Positive() {
		return at.Comp(f.Axis()) == border
	}
	return at.Comp(f.Axis()) == 0
}

// Dimensions returns the cube's edge length.
func (c *Cube) Dimensions() int {
	return c.dimensions
}

// Border returns the maximum valid coordinate index, dimensions-1.
func (c *Cube) Border() int {
	return c.dimensions - 1
}

// PieceCount returns the number of shell pieces: D³ - (D-2)³.
func (c *Cube) PieceCount() int {
	return len(c.grid)
}

// PieceAt returns a copy of the piece currently at the given shell
// coordinate.
func (c *Cube) PieceAt(at Vec3) (Piece, bool) {
	p, ok := c.grid[at]
	if !ok {
		return Piece{}, false
	}
	return *p, true
}

// IsRotating reports whether a rotation is in flight. While true, every
// rotate, undo, and shuffle request is silently dropped.
func (c *Cube) IsRotating() bool {
	return c.rotating
}

// Busy reports whether a rotation is in flight or shuffle steps are
// still queued.
func (c *Cube) Busy() bool {
	return c.rotating || len(c.pending) > 0
}

// History returns the cube's move history.
func (c *Cube) History() *History {
	return c.history
}

// Event callbacks

// OnChanged sets a callback that fires after every completed rotation,
// recorded or not, once its animation has finished.
func (c *Cube) OnChanged(cb func(Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChanged = cb
}

// OnSolved sets a callback that fires when a completed rotation leaves
// the cube solved. It always fires after the Changed callback for the
// same rotation.
func (c *Cube) OnSolved(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSolved = cb
}

func (c *Cube) fireChanged(m Move) {
	c.mu.RLock()
	cb := c.onChanged
	c.mu.RUnlock()
	if cb != nil {
		cb(m)
	}
}

func (c *Cube) fireSolved() {
	c.mu.RLock()
	cb := c.onSolved
	c.mu.RUnlock()
	if cb != nil {
		cb()
	}
}

// FaceStickers returns, for one boundary face of the cube, the D×D grid
// of stickers currently showing there. Each sticker is identified by the
// piece-local face pointing outward; its Color() is the sticker color.
// The grid is indexed [u][v] along the face axis's tangent axes.
func (c *Cube) FaceStickers(f Face) [][]Face {
	axis := f.Axis()
	layer := 0
	if f.Positive() {
		layer = c.Border()
	}
	normal := f.Normal()
	ua, va := axis.Tangents()

	out := make([][]Face, c.dimensions)
	for u := 0; u < c.dimensions; u++ {
		out[u] = make([]Face, c.dimensions)
		for v := 0; v < c.dimensions; v++ {
			p := c.grid[coordAt(axis, layer, ua, u, va, v)]
			local := p.Orientation.Unapply(normal)
			sticker, _ := faceForNormal(local)
			out[u][v] = sticker
		}
	}
	return out
}

// String returns a text rendering of the cube's unfolded sticker net:
// the +Y face on top, then -X +Z +X -Z side by side, then -Y below.
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.dimensions)

	writeFace := func(stickers [][]Face, row int) {
		for col := 0; col < c.dimensions; col++ {
			b.WriteString(stickers[row][col].Color().String())
			b.WriteString(" ")
		}
	}

	up := c.FaceStickers(FacePosY)
	for row := 0; row < c.dimensions; row++ {
		b.WriteString(indent)
		writeFace(up, row)
		b.WriteString("\n")
	}

	sides := []Face{FaceNegX, FacePosZ, FacePosX, FaceNegZ}
	grids := make([][][]Face, len(sides))
	for i, f := range sides {
		grids[i] = c.FaceStickers(f)
	}
	for row := 0; row < c.dimensions; row++ {
		for i := range sides {
			writeFace(grids[i], row)
		}
		b.WriteString("\n")
	}

	down := c.FaceStickers(FaceNegY)
	for row := 0; row < c.dimensions; row++ {
		b.WriteString(indent)
		writeFace(down, row)
		b.WriteString("\n")
	}

	return b.String()
}
