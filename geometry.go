package ncube

// Axis identifies one of the three positive principal axes.
type Axis int

const (
	X Axis = 0
	Y Axis = 1
	Z Axis = 2
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether a is one of the three principal axes.
func (a Axis) Valid() bool {
	return a >= X && a <= Z
}

// Tangents returns the two axes orthogonal to a in the fixed cyclic
// order: X -> (Y, Z), Y -> (Z, X), Z -> (X, Y). The rotation engine and
// the solved detector both enumerate a slice's cross-section with these,
// so they always agree on which coordinate is "u" and which is "v".
func (a Axis) Tangents() (Axis, Axis) {
	switch a {
	case X:
		return Y, Z
	case Y:
		return Z, X
	default:
		return X, Y
	}
}

// Unit returns the unit vector along a.
func (a Axis) Unit() Vec3 {
	var v Vec3
	return v.SetComp(a, 1)
}

// next returns the following axis in cyclic order.
func (a Axis) next() Axis {
	return (a + 1) % 3
}

// Vec3 is an integer triple, used both for grid coordinates and for
// direction vectors.
type Vec3 struct {
	X, Y, Z int
}

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Scale returns v scaled by k.
func (v Vec3) Scale(k int) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) int {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Comp returns the component of v along axis a.
func (v Vec3) Comp(a Axis) int {
	switch a {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

// SetComp returns a copy of v with the component along a set to n.
func (v Vec3) SetComp(a Axis, n int) Vec3 {
	switch a {
	case X:
		v.X = n
	case Y:
		v.Y = n
	default:
		v.Z = n
	}
	return v
}

// RotateQuarter rotates the pair (u, v) by 90 degrees about the centre of
// a square slice whose valid indices run 0..border. positive selects the
// rotation direction. The centre sits at border/2, a half-integer for
// even dimensions, but 2*centre = border keeps the arithmetic integral:
//
//	positive: (u, v) -> (border-v, u)
//	negative: (u, v) -> (v, border-u)
//
// This is the only place quarter-turn arithmetic is defined; the rotation
// engine remaps grid positions with it and orientation composition reuses
// it with border = 0, so both always share the same sign convention.
func RotateQuarter(u, v, border int, positive bool) (int, int) {
	if positive {
		return border - v, u
	}
	return v, border - u
}

// coordAt assembles a grid coordinate from a slice index along axis and
// the (u, v) cross-section indices along its tangent axes.
func coordAt(axis Axis, layer int, ua Axis, u int, va Axis, v int) Vec3 {
	var c Vec3
	c = c.SetComp(axis, layer)
	c = c.SetComp(ua, u)
	return c.SetComp(va, v)
}

// shellCell reports whether the slice cell (u, v) in a layer lies on the
// cube's shell. Interior cells of interior layers hold no pieces.
func shellCell(u, v, layer, border int) bool {
	return u == 0 || u == border || v == 0 || v == border || layer == 0 || layer == border
}
