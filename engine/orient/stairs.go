package orient

import "github.com/memmaker/oaktools/engine/voxel"

// raisedCorners marks which quadrants of a stairs block carry the full height
// step, indexed by Corner.
type raisedCorners [4]bool

// northPatterns are the raised corners of each shape for a north facing stair.
var northPatterns = [...]raisedCorners{
	Straight:   {NW: true, NE: true},
	InnerLeft:  {SW: true, NW: true, NE: true},
	InnerRight: {NW: true, NE: true, SE: true},
	OuterLeft:  {NW: true},
	OuterRight: {NE: true},
}

// rotationSteps is the number of clockwise quarter turns from north.
func rotationSteps(facing voxel.BlockFace) int {
	switch facing {
	case voxel.East:
		return 1
	case voxel.South:
		return 2
	case voxel.West:
		return 3
	default:
		return 0
	}
}

// rotateClockwise moves every corner one quadrant clockwise: SW -> NW -> NE -> SE -> SW.
func (r raisedCorners) rotateClockwise() raisedCorners {
	return raisedCorners{r[SE], r[SW], r[NW], r[NE]}
}

func (r raisedCorners) count() int {
	n := 0
	for _, raised := range r {
		if raised {
			n++
		}
	}
	return n
}

func stairsCorners(facing voxel.BlockFace, shape StairsShape) raisedCorners {
	var r raisedCorners
	if shape.Valid() {
		r = northPatterns[shape]
	}
	for i := rotationSteps(facing); i > 0; i-- {
		r = r.rotateClockwise()
	}
	return r
}

// singleFacing is the facing of an outer corner raised only at the given corner.
var singleFacing = [4]voxel.BlockFace{
	SW: voxel.West,
	NW: voxel.North,
	NE: voxel.East,
	SE: voxel.South,
}

// missingFacing is the facing of an inner corner missing only the given corner.
var missingFacing = [4]voxel.BlockFace{
	SW: voxel.North,
	NW: voxel.East,
	NE: voxel.South,
	SE: voxel.West,
}

// shapeFromCorners turns a raised set back into facing and shape. Empty, full
// and diagonal sets have no stair shape; they collapse to a straight stair, which
// means toggling into them cannot be undone by toggling the same corner again.
func shapeFromCorners(r raisedCorners, previous voxel.BlockFace) (voxel.BlockFace, StairsShape) {
	switch r.count() {
	case 1:
		for c, raised := range r {
			if raised {
				return singleFacing[c], OuterLeft
			}
		}
	case 2:
		switch {
		case r[SW] && r[SE]:
			return voxel.South, Straight
		case r[NW] && r[NE]:
			return voxel.North, Straight
		case r[SW] && r[NW]:
			return voxel.West, Straight
		case r[NE] && r[SE]:
			return voxel.East, Straight
		}
		return voxel.North, Straight
	case 3:
		for c, raised := range r {
			if !raised {
				return missingFacing[c], InnerRight
			}
		}
	}
	return previous, Straight
}

// toggleStairsCorner flips one quadrant of the stair between raised and lowered.
func toggleStairsCorner(s State, corner Corner) State {
	r := stairsCorners(s.Facing, s.Shape)
	r[corner] = !r[corner]
	s.Facing, s.Shape = shapeFromCorners(r, s.Facing)
	return s
}

// ToggleHalf flips a stair between the top and bottom half.
func ToggleHalf(s State) (bool, State) {
	s.Half = s.Half.Flip()
	return true, s
}

func editStairs(k Kind, s State, in Interaction) (bool, State) {
	if !s.Shape.Valid() || !s.Facing.IsHorizontal() {
		return false, s
	}
	if in.Sneaking {
		return ToggleHalf(s)
	}
	octant := in.Octant()
	next := s
	if !octant.HasCorner {
		next.Shape = s.Shape.Next()
	} else {
		next = toggleStairsCorner(s, octant.Corner)
		if !k.Faces.Empty() && !k.Faces.Has(next.Facing) {
			return false, s
		}
	}
	return next != s, next
}
