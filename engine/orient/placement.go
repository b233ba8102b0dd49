package orient

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/engine/voxel"
)

// PlacementState computes the initial orientation of a freshly placed block
// from the face of the reference block it was placed against, the interaction
// point and the actor's horizontal facing. Stairs always start straight.
func PlacementState(k Kind, refFace voxel.BlockFace, point mgl64.Vec3, actorFacing voxel.BlockFace) State {
	s := DefaultState(k)
	switch s.Category {
	case Directional:
		if facing := refFace.Opposite(); k.Faces.Has(facing) {
			s.Facing = facing
		}
	case AxisAligned:
		if axis := refFace.Axis(); k.Axes.Has(axis) {
			s.Axis = axis
		}
	case Slab:
		if placeOnTop(refFace, point) {
			s.Slab = SlabTop
		} else {
			s.Slab = SlabBottom
		}
	case Stairs:
		if k.Faces.Has(actorFacing) {
			s.Facing = actorFacing
		}
		if placeOnTop(refFace, point) {
			s.Half = Top
		} else {
			s.Half = Bottom
		}
		s.Shape = Straight
	}
	return s
}

// placeOnTop decides the upper half: against a ceiling always, against a floor
// never, against a wall by the height of the point within its block.
func placeOnTop(refFace voxel.BlockFace, point mgl64.Vec3) bool {
	switch refFace {
	case voxel.Down:
		return true
	case voxel.Up:
		return false
	}
	return util.Fract(point.Y()) >= 0.5
}
