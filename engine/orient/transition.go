package orient

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/voxel"
)

// Interaction is the geometry of one click.
type Interaction struct {
	Face voxel.BlockFace
	// Point is the click position relative to the block origin.
	Point    mgl64.Vec3
	HasPoint bool

	// Facing is the actor's horizontal facing.
	Facing    voxel.BlockFace
	Eye       mgl64.Vec3
	Direction mgl64.Vec3
	Pitch     float64
	Sneaking  bool
}

func (in Interaction) Octant() Octant {
	return DetectOctant(in.Point, in.HasPoint, in.Face, in.Facing)
}

// TryEdit applies one edit to s according to the category k classifies as and
// reports whether the state changed. Only the fields of that category are
// touched, so a stair edited as a plain directional block keeps its shape and half.
func TryEdit(k Kind, s State, in Interaction) (bool, State) {
	switch Classify(k) {
	case MultiFacing:
		return editMultiFacing(k, s, in)
	case Wall:
		return editWall(s, in)
	case Stairs:
		return editStairs(k, s, in)
	case Directional:
		return editDirectional(k, s)
	case AxisAligned:
		return editAxis(k, s)
	case Slab:
		return editSlab(s)
	}
	return false, s
}

func editMultiFacing(k Kind, s State, in Interaction) (bool, State) {
	side := in.Octant().Side
	if !k.Faces.Has(side) {
		return false, s
	}
	s.Faces = s.Faces.Toggle(side)
	return true, s
}

func editWall(s State, in Interaction) (bool, State) {
	side := in.Octant().Side
	if !side.IsHorizontal() {
		return false, s
	}
	s.Walls[side] = s.Walls[side].Next()
	return true, s
}

func editDirectional(k Kind, s State) (bool, State) {
	next, ok := nextFacing(k.Faces, s.Facing)
	if !ok || next == s.Facing {
		return false, s
	}
	s.Facing = next
	return true, s
}

// nextFacing is the next legal face after current in cycle order. A current
// facing outside the cycle starts over at the first legal face.
func nextFacing(legal voxel.FaceSet, current voxel.BlockFace) (voxel.BlockFace, bool) {
	if legal.Empty() {
		return current, false
	}
	if !current.Valid() {
		return firstLegalFace(legal, current), true
	}
	n := len(voxel.AllFaces)
	for i := 1; i <= n; i++ {
		candidate := voxel.AllFaces[(int(current)+i)%n]
		if legal.Has(candidate) {
			return candidate, true
		}
	}
	return current, false
}

func editAxis(k Kind, s State) (bool, State) {
	current := s.Axis
	if !current.Valid() {
		current = voxel.AxisX
	}
	for i := 1; i <= 3; i++ {
		candidate := voxel.Axis((int(current) + i) % 3)
		if k.Axes.Has(candidate) {
			if candidate == s.Axis {
				return false, s
			}
			s.Axis = candidate
			return true, s
		}
	}
	return false, s
}

func editSlab(s State) (bool, State) {
	switch s.Slab {
	case SlabTop:
		s.Slab = SlabBottom
	case SlabBottom:
		s.Slab = SlabTop
	default:
		return false, s
	}
	return true, s
}
