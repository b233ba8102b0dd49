package orient

import (
	"fmt"
	"strings"

	"github.com/memmaker/oaktools/engine/voxel"
)

type WallHeight uint8

const (
	WallNone WallHeight = iota
	WallLow
	WallTall
)

var wallHeightNames = [...]string{"none", "low", "tall"}

func (h WallHeight) String() string {
	if int(h) < len(wallHeightNames) {
		return wallHeightNames[h]
	}
	return "invalid"
}

// Next advances none -> low -> tall -> none.
func (h WallHeight) Next() WallHeight {
	return (h + 1) % 3
}

type StairsShape uint8

const (
	Straight StairsShape = iota
	InnerLeft
	InnerRight
	OuterLeft
	OuterRight
)

var shapeNames = [...]string{"straight", "inner_left", "inner_right", "outer_left", "outer_right"}

func (s StairsShape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "invalid"
}

func (s StairsShape) Valid() bool {
	return int(s) < len(shapeNames)
}

// Next cycles the shapes in declaration order.
func (s StairsShape) Next() StairsShape {
	return (s + 1) % 5
}

type Half uint8

const (
	Bottom Half = iota
	Top
)

func (h Half) String() string {
	if h == Top {
		return "top"
	}
	return "bottom"
}

func (h Half) Flip() Half {
	if h == Top {
		return Bottom
	}
	return Top
}

type SlabType uint8

const (
	SlabBottom SlabType = iota
	SlabTop
	SlabDouble
)

var slabNames = [...]string{"bottom", "top", "double"}

func (s SlabType) String() string {
	if int(s) < len(slabNames) {
		return slabNames[s]
	}
	return "invalid"
}

// State is the orientation of one block. Category tags which fields carry
// meaning; the others stay at their zero value and pass through transitions
// untouched. States compare with ==.
type State struct {
	Category Category

	// MultiFacing
	Faces voxel.FaceSet
	// Wall, indexed by voxel.North, East, South, West
	Walls [4]WallHeight
	// Stairs and Directional
	Facing voxel.BlockFace
	// Stairs
	Shape StairsShape
	Half  Half
	// Axis
	Axis voxel.Axis
	// Slab
	Slab SlabType
}

// WallAt returns the wall height on a horizontal side.
func (s State) WallAt(side voxel.BlockFace) WallHeight {
	if !side.IsHorizontal() {
		return WallNone
	}
	return s.Walls[side]
}

func (s State) String() string {
	var parts []string
	switch s.Category {
	case MultiFacing:
		parts = append(parts, "faces="+s.Faces.String())
	case Wall:
		for _, side := range voxel.HorizontalFaces {
			parts = append(parts, fmt.Sprintf("%s=%s", side, s.WallAt(side)))
		}
	case Stairs:
		parts = append(parts, "facing="+s.Facing.String(), "shape="+s.Shape.String(), "half="+s.Half.String())
	case Directional:
		parts = append(parts, "facing="+s.Facing.String())
	case AxisAligned:
		parts = append(parts, "axis="+s.Axis.String())
	case Slab:
		parts = append(parts, "type="+s.Slab.String())
	}
	return s.Category.String() + "{" + strings.Join(parts, ",") + "}"
}

// DefaultState is the state a block of kind k takes without any geometry to go by.
func DefaultState(k Kind) State {
	s := State{Category: Classify(k)}
	switch s.Category {
	case Stairs:
		s.Facing = firstLegalFace(k.Faces, voxel.North)
		s.Shape = Straight
		s.Half = Bottom
	case Directional:
		s.Facing = firstLegalFace(k.Faces, voxel.North)
	case AxisAligned:
		s.Axis = voxel.AxisY
		if !k.Axes.Has(voxel.AxisY) {
			for _, a := range []voxel.Axis{voxel.AxisX, voxel.AxisZ} {
				if k.Axes.Has(a) {
					s.Axis = a
					break
				}
			}
		}
	case Slab:
		s.Slab = SlabBottom
	}
	return s
}

func firstLegalFace(legal voxel.FaceSet, fallback voxel.BlockFace) voxel.BlockFace {
	for _, f := range voxel.AllFaces {
		if legal.Has(f) {
			return f
		}
	}
	return fallback
}
