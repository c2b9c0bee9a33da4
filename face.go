package ncube

// Face identifies one of a piece's six faces by its outward normal in
// the solved state. The same values name the six boundary faces of the
// cube itself.
type Face int

const (
	FacePosX Face = 0 // Right when solved
	FaceNegX Face = 1 // Left when solved
	FacePosY Face = 2 // Up when solved
	FaceNegY Face = 3 // Down when solved
	FacePosZ Face = 4 // Front when solved
	FaceNegZ Face = 5 // Back when solved
)

// Faces lists all six faces in declaration order.
var Faces = [6]Face{FacePosX, FaceNegX, FacePosY, FaceNegY, FacePosZ, FaceNegZ}

func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	default:
		return "?"
	}
}

// Axis returns the principal axis the face is perpendicular to.
func (f Face) Axis() Axis {
	return Axis(f / 2)
}

// Positive reports whether the face's normal points along the positive
// direction of its axis.
func (f Face) Positive() bool {
	return f%2 == 0
}

// Normal returns the face's outward unit normal.
func (f Face) Normal() Vec3 {
	n := f.Axis().Unit()
	if !f.Positive() {
		n = n.Scale(-1)
	}
	return n
}

// faceForNormal returns the face whose normal equals n.
func faceForNormal(n Vec3) (Face, bool) {
	for _, f := range Faces {
		if f.Normal() == n {
			return f, true
		}
	}
	return FacePosX, false
}

// Color represents a sticker color.
type Color byte

const (
	Red    Color = 0 // +X face when solved
	Orange Color = 1 // -X face when solved
	White  Color = 2 // +Y face when solved
	Yellow Color = 3 // -Y face when solved
	Green  Color = 4 // +Z face when solved
	Blue   Color = 5 // -Z face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Color returns the sticker color of a face in the solved state. A
// piece's local faces keep this identity forever, so projecting local
// faces outward (see FaceStickers) yields the current sticker layout.
func (f Face) Color() Color {
	return Color(f)
}
