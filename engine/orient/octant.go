package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/voxel"
)

// ReachThrough is how close to the block's middle a click on a horizontal face
// must land along that face's axis to select the far half instead of the near one.
const ReachThrough = 0.2

// Corner is a horizontal quadrant of a block. The order is the index order of
// the raised corner set used by the stairs model.
type Corner uint8

const (
	SW Corner = iota
	NW
	NE
	SE
)

var cornerNames = [...]string{"south_west", "north_west", "north_east", "south_east"}

func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return "invalid"
}

func cornerOf(east, south bool) Corner {
	switch {
	case east && south:
		return SE
	case east:
		return NE
	case south:
		return SW
	default:
		return NW
	}
}

// Octant is where on a block an interaction landed.
type Octant struct {
	// Corner is the quadrant used by the stairs model. Only valid with HasCorner.
	Corner    Corner
	HasCorner bool
	// Side is the horizontal side closest to the point, used for fences, panes and walls.
	Side voxel.BlockFace
	Top  bool
}

// DetectOctant resolves a local interaction point to a corner, a side and a
// half. Without a point the side is the clicked face when it is horizontal and
// the fallback facing otherwise.
func DetectOctant(point mgl64.Vec3, hasPoint bool, clicked, fallback voxel.BlockFace) Octant {
	if !hasPoint {
		side := fallback
		if clicked.IsHorizontal() {
			side = clicked
		}
		return Octant{Side: side}
	}

	x, y, z := point.X(), point.Y(), point.Z()
	o := Octant{
		Top:       y >= 0.5,
		Side:      closestSide(x-0.5, z-0.5),
		HasCorner: true,
	}

	east := x >= 0.5
	south := z >= 0.5
	switch clicked {
	case voxel.West:
		east = nearMiddle(x)
	case voxel.East:
		east = !nearMiddle(x)
	case voxel.North:
		south = nearMiddle(z)
	case voxel.South:
		south = !nearMiddle(z)
	}
	o.Corner = cornerOf(east, south)
	return o
}

// closestSide compares the centered coordinates. Ties go to the z axis and an
// exact zero resolves east or south.
func closestSide(dx, dz float64) voxel.BlockFace {
	if math.Abs(dx) > math.Abs(dz) {
		if dx >= 0 {
			return voxel.East
		}
		return voxel.West
	}
	if dz >= 0 {
		return voxel.South
	}
	return voxel.North
}

func nearMiddle(v float64) bool {
	return math.Abs(v-0.5) <= ReachThrough
}
