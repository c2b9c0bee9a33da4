package ncube

// Orientation describes how a piece's faces currently point, as the
// images of the piece's three local axes in the cube frame. Every value
// reachable through Rotated is one of the 24 exact quarter-turn cube
// rotations: the vectors stay integer unit vectors, so composition never
// drifts and no re-snapping pass is needed.
type Orientation [3]Vec3

// IdentityOrientation returns the orientation of a freshly placed piece:
// local axes aligned with the cube's own.
func IdentityOrientation() Orientation {
	return Orientation{X.Unit(), Y.Unit(), Z.Unit()}
}

// Rotated returns o composed with a 90-degree rotation about the given
// principal axis.
func (o Orientation) Rotated(axis Axis, positive bool) Orientation {
	for i := range o {
		o[i] = rotateVec(o[i], axis, positive)
	}
	return o
}

// Apply maps a direction from the piece's local frame to the cube frame.
func (o Orientation) Apply(local Vec3) Vec3 {
	return o[0].Scale(local.X).Add(o[1].Scale(local.Y)).Add(o[2].Scale(local.Z))
}

// Unapply maps a cube-frame direction back into the piece's local frame.
// The axis vectors are orthonormal, so the transpose is the inverse.
func (o Orientation) Unapply(world Vec3) Vec3 {
	return Vec3{o[0].Dot(world), o[1].Dot(world), o[2].Dot(world)}
}

// AlignedAxis returns the index of the local axis vector currently
// parallel (or anti-parallel) to the given principal axis. With
// orthonormal integer vectors exactly one index qualifies; the false
// return is a defensive fallback for a corrupted orientation.
func (o Orientation) AlignedAxis(a Axis) (int, bool) {
	unit := a.Unit()
	for i := range o {
		d := o[i].Dot(unit)
		if d == 1 || d == -1 {
			return i, true
		}
	}
	return 0, false
}

// rotateVec rotates a direction vector 90 degrees about a principal axis.
// The component along the axis is preserved; the tangent components turn
// via RotateQuarter about the origin (border 0).
func rotateVec(w Vec3, axis Axis, positive bool) Vec3 {
	ua, va := axis.Tangents()
	u, v := RotateQuarter(w.Comp(ua), w.Comp(va), 0, positive)
	w = w.SetComp(ua, u)
	return w.SetComp(va, v)
}
