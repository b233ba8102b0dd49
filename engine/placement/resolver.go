// Package placement finds where a placement tool puts a block and which
// neighbouring surface its orientation is computed against.
package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/engine/voxel"
)

const (
	// MaxReach is the ray cast distance from the actor's eye.
	MaxReach = 6.0
	// LookingDownPitch is the pitch above which the horizontal probe is skipped.
	LookingDownPitch = 45.0
	parallelEpsilon  = 0.001
)

// Terrain is a read-only view of the world.
type Terrain interface {
	Traits(pos voxel.Int3) voxel.Traits
	// RayTrace casts from start along direction, passing through replaceable
	// blocks and fluids.
	RayTrace(start, direction mgl64.Vec3, maxDistance float64) util.HitInfo3D
}

type Actor interface {
	EyePosition() mgl64.Vec3
	Direction() mgl64.Vec3
	Facing() voxel.BlockFace
	Pitch() float64
}

// Click is the block interaction that triggered the placement. Point is in world space.
type Click struct {
	Pos      voxel.Int3
	Face     voxel.BlockFace
	Point    mgl64.Vec3
	HasPoint bool
}

// Basis records how the reference block was chosen.
type Basis uint8

const (
	BasisClicked Basis = iota
	BasisRayHit
	BasisFacing
	BasisBelow
	BasisSelf
)

var basisNames = [...]string{"clicked", "ray_hit", "facing", "below", "self"}

func (b Basis) String() string {
	if int(b) < len(basisNames) {
		return basisNames[b]
	}
	return "invalid"
}

// PointSource records where the interaction point came from.
type PointSource uint8

const (
	PointClick PointSource = iota
	PointRayHit
	PointReprojected
	PointTranslated
	PointCenter
)

var pointSourceNames = [...]string{"click", "ray_hit", "reprojected", "translated", "center"}

func (p PointSource) String() string {
	if int(p) < len(pointSourceNames) {
		return pointSourceNames[p]
	}
	return "invalid"
}

type Resolution struct {
	// Target is the block that will be created.
	Target voxel.Int3
	// Reference is the block whose face grounds the orientation.
	Reference voxel.Int3
	Face      voxel.BlockFace
	// Point is the interaction point in world space.
	Point  mgl64.Vec3
	Basis  Basis
	Source PointSource
}

// Resolve picks target, reference, face and interaction point for a click.
// It returns false when the block in front of a solid clicked block cannot be replaced.
func Resolve(t Terrain, click Click, a Actor) (Resolution, bool) {
	clicked := click.Pos
	traits := t.Traits(clicked)

	if !traits.Has(voxel.Replaceable) {
		target := clicked.Side(click.Face)
		if !t.Traits(target).Has(voxel.Replaceable) {
			util.LogPlacementDebug("target not replaceable", "target", target)
			return Resolution{}, false
		}
		r := Resolution{Target: target, Reference: clicked, Face: click.Face, Basis: BasisClicked}
		r.Point, r.Source = clickedPoint(click, clicked)
		return r, true
	}

	if traits.Has(voxel.UpperHalf) {
		clicked = clicked.Below()
		util.LogPlacementDebug("clicked upper half of tall plant, using lower half", "pos", clicked)
	}

	r := Resolution{Target: clicked}
	hit := t.RayTrace(a.EyePosition(), a.Direction(), MaxReach)
	if hit.Hit && hit.CollisionGridPosition != clicked &&
		t.Traits(hit.CollisionGridPosition).IsSupport() &&
		clicked.IsAdjacent(hit.CollisionGridPosition) {
		r.Reference, r.Face, r.Basis = hit.CollisionGridPosition, hit.Side, BasisRayHit
	} else if ref, face, ok := probeFacing(t, clicked, a); ok {
		r.Reference, r.Face, r.Basis = ref, face, BasisFacing
	} else if below := clicked.Below(); t.Traits(below).IsSupport() {
		r.Reference, r.Face, r.Basis = below, voxel.Up, BasisBelow
	} else {
		r.Reference, r.Face, r.Basis = clicked, click.Face, BasisSelf
	}

	if r.Reference == clicked {
		r.Point, r.Source = clickedPoint(click, clicked)
	} else {
		r.Point, r.Source = referencePoint(click, clicked, r.Reference, r.Face, hit, a)
	}
	util.LogPlacementDebug("resolved placement",
		"target", r.Target, "reference", r.Reference, "face", r.Face,
		"basis", r.Basis, "point_source", r.Source)
	return r, true
}

// probeFacing looks at the block next to the target in the actor's horizontal
// facing, unless the actor looks steeply down.
func probeFacing(t Terrain, target voxel.Int3, a Actor) (voxel.Int3, voxel.BlockFace, bool) {
	if a.Pitch() > LookingDownPitch {
		return voxel.Int3{}, voxel.North, false
	}
	facing := a.Facing()
	if !facing.IsHorizontal() {
		return voxel.Int3{}, voxel.North, false
	}
	probe := target.Side(facing)
	traits := t.Traits(probe)
	if traits.IsSupport() && traits.Has(voxel.FullCube) && !traits.Has(voxel.SlabShape) {
		return probe, facing.Opposite(), true
	}
	return voxel.Int3{}, voxel.North, false
}

func clickedPoint(click Click, clicked voxel.Int3) (mgl64.Vec3, PointSource) {
	if click.HasPoint {
		return click.Point, PointClick
	}
	return clicked.ToBlockCenterVec3(), PointCenter
}

func referencePoint(click Click, clicked, ref voxel.Int3, face voxel.BlockFace, hit util.HitInfo3D, a Actor) (mgl64.Vec3, PointSource) {
	if hit.Hit {
		if ref.Y <= clicked.Y {
			if p, ok := reproject(a.EyePosition(), a.Direction(), ref, face); ok {
				return p, PointReprojected
			}
		}
		return hit.CollisionWorldPosition, PointRayHit
	}
	if click.HasPoint {
		relative := click.Point.Sub(clicked.ToVec3())
		return ref.ToVec3().Add(relative), PointTranslated
	}
	return ref.ToBlockCenterVec3(), PointCenter
}

// reproject intersects the view ray with the plane of the reference block's
// face and clamps the height into the block. Vertical faces and near parallel
// views are left alone.
func reproject(eye, dir mgl64.Vec3, ref voxel.Int3, face voxel.BlockFace) (mgl64.Vec3, bool) {
	var axis int
	var plane float64
	switch face {
	case voxel.West:
		axis, plane = 0, float64(ref.X)
	case voxel.East:
		axis, plane = 0, float64(ref.X)+1
	case voxel.North:
		axis, plane = 2, float64(ref.Z)
	case voxel.South:
		axis, plane = 2, float64(ref.Z)+1
	default:
		return mgl64.Vec3{}, false
	}
	if math.Abs(dir[axis]) < parallelEpsilon {
		return mgl64.Vec3{}, false
	}
	t := (plane - eye[axis]) / dir[axis]
	p := eye.Add(dir.Mul(t))
	p[1] = util.Clamp(p.Y(), float64(ref.Y), float64(ref.Y)+1)
	return p, true
}
