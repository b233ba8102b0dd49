package voxel

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// BlockFace is one of the six faces of a block. The declaration order is the
// cycle order used when rotating directional blocks.
type BlockFace uint8

const (
	North BlockFace = iota
	East
	South
	West
	Up
	Down
)

var faceNames = [...]string{"north", "east", "south", "west", "up", "down"}

// AllFaces in cycle order.
var AllFaces = [...]BlockFace{North, East, South, West, Up, Down}

// HorizontalFaces in cycle order.
var HorizontalFaces = [...]BlockFace{North, East, South, West}

func (f BlockFace) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "invalid"
}

func (f BlockFace) Valid() bool {
	return f <= Down
}

func (f BlockFace) Opposite() BlockFace {
	switch f {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	default:
		return Up
	}
}

func (f BlockFace) IsHorizontal() bool {
	return f <= West
}

func (f BlockFace) Axis() Axis {
	switch f {
	case East, West:
		return AxisX
	case Up, Down:
		return AxisY
	default:
		return AxisZ
	}
}

// Offset is the unit step towards the face. North is -Z, east is +X.
func (f BlockFace) Offset() Int3 {
	switch f {
	case North:
		return Int3{0, 0, -1}
	case South:
		return Int3{0, 0, 1}
	case East:
		return Int3{1, 0, 0}
	case West:
		return Int3{-1, 0, 0}
	case Up:
		return Int3{0, 1, 0}
	case Down:
		return Int3{0, -1, 0}
	}
	return Int3{}
}

func ParseBlockFace(s string) (BlockFace, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range faceNames {
		if n == name {
			return BlockFace(i), nil
		}
	}
	return North, errors.Errorf("unknown block face %q", s)
}

// HorizontalFaceFromDirection returns the horizontal face the direction points
// at most. Ties between the axes resolve to north/south.
func HorizontalFaceFromDirection(dir mgl64.Vec3) BlockFace {
	if math.Abs(dir.X()) > math.Abs(dir.Z()) {
		if dir.X() > 0 {
			return East
		}
		return West
	}
	if dir.Z() > 0 {
		return South
	}
	return North
}

// FaceSet is a bit set of block faces.
type FaceSet uint8

const (
	HorizontalFaceSet FaceSet = 1<<North | 1<<East | 1<<South | 1<<West
	AllFaceSet        FaceSet = HorizontalFaceSet | 1<<Up | 1<<Down
)

func NewFaceSet(faces ...BlockFace) FaceSet {
	var s FaceSet
	for _, f := range faces {
		s = s.With(f)
	}
	return s
}

func (s FaceSet) Has(f BlockFace) bool {
	return f.Valid() && s&(1<<f) != 0
}

func (s FaceSet) With(f BlockFace) FaceSet {
	if !f.Valid() {
		return s
	}
	return s | 1<<f
}

func (s FaceSet) Without(f BlockFace) FaceSet {
	return s &^ (1 << f)
}

func (s FaceSet) Toggle(f BlockFace) FaceSet {
	if !f.Valid() {
		return s
	}
	return s ^ 1<<f
}

func (s FaceSet) Empty() bool {
	return s&AllFaceSet == 0
}

// Faces lists the members in cycle order.
func (s FaceSet) Faces() []BlockFace {
	var faces []BlockFace
	for _, f := range AllFaces {
		if s.Has(f) {
			faces = append(faces, f)
		}
	}
	return faces
}

func (s FaceSet) Len() int {
	return len(s.Faces())
}

func (s FaceSet) String() string {
	names := make([]string, 0, 6)
	for _, f := range s.Faces() {
		names = append(names, f.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Axis is a block axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return "invalid"
}

func (a Axis) Valid() bool {
	return a <= AxisZ
}

func ParseAxis(s string) (Axis, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}
	return AxisY, errors.Errorf("unknown axis %q", s)
}

// AxisSet is a bit set of axes. The zero value means "every axis".
type AxisSet uint8

const AllAxes AxisSet = 1<<AxisX | 1<<AxisY | 1<<AxisZ

func NewAxisSet(axes ...Axis) AxisSet {
	var s AxisSet
	for _, a := range axes {
		if a.Valid() {
			s |= 1 << a
		}
	}
	return s
}

func (s AxisSet) Has(a Axis) bool {
	if !a.Valid() {
		return false
	}
	if s == 0 {
		return true
	}
	return s&(1<<a) != 0
}

// Axes lists the explicit members. The zero set lists nothing.
func (s AxisSet) Axes() []Axis {
	var axes []Axis
	for a := AxisX; a <= AxisZ; a++ {
		if s&(1<<a) != 0 {
			axes = append(axes, a)
		}
	}
	return axes
}
