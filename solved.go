package ncube

// IsSolved reports whether the puzzle is solved: every one of the six
// boundary layers shows a single uniform face. It may be queried at any
// time, including mid-animation, since the grid is already final once a
// rotation's logical update has committed.
func (c *Cube) IsSolved() bool {
	border := c.Border()
	for _, axis := range []Axis{X, Y, Z} {
		for _, layer := range []int{0, border} {
			if !c.IsLayerSolved(axis, layer) {
				return false
			}
		}
	}
	return true
}

// IsLayerSolved reports whether every piece in the given layer has the
// same face pointing along the layer's axis. The piece at the layer's
// (0,0) cell is the reference: its local axis aligned with the rotation
// axis picks the orientation vector index, and every other piece must
// have a parallel vector at that index. Diagnostic variant of IsSolved;
// invalid arguments report false.
func (c *Cube) IsLayerSolved(axis Axis, layer int) bool {
	if !axis.Valid() || layer < 0 || layer > c.Border() {
		return false
	}

	ua, va := axis.Tangents()
	border := c.Border()

	ref := c.grid[coordAt(axis, layer, ua, 0, va, 0)]
	idx, ok := ref.Orientation.AlignedAxis(axis)
	if !ok {
		// Orthonormal orientations always have an aligned axis; treat a
		// corrupted one as not solved rather than guessing.
		return false
	}
	refDir := ref.Orientation[idx]

	for u := 0; u <= border; u++ {
		for v := 0; v <= border; v++ {
			if !shellCell(u, v, layer, border) {
				continue
			}
			p := c.grid[coordAt(axis, layer, ua, u, va, v)]
			if refDir.Dot(p.Orientation[idx]) != 1 {
				return false
			}
		}
	}
	return true
}
