package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/voxel"
)

type HitInfo3D struct {
	Distance float64
	// Side is the face of the hit block the ray entered through.
	Side                   voxel.BlockFace
	CollisionWorldPosition mgl64.Vec3
	PreviousGridPosition   voxel.Int3
	CollisionGridPosition  voxel.Int3
	Hit                    bool
}

// DDARaycast walks the voxel grid from rayStart to rayEnd and returns the first
// block for which stopRay returns true.
func DDARaycast(rayStart, rayEnd mgl64.Vec3, stopRay func(x, y, z int32) bool) HitInfo3D {
	// adapted from: https://github.com/fenomas/fast-voxel-raycast/blob/master/index.js
	t := 0.0
	ix := int32(math.Floor(rayStart.X()))
	iy := int32(math.Floor(rayStart.Y()))
	iz := int32(math.Floor(rayStart.Z()))

	ray := rayEnd.Sub(rayStart)
	maxRayLength := ray.Len()
	if maxRayLength == 0 {
		return HitInfo3D{Hit: false}
	}
	rayDir := ray.Normalize()

	stepx := int32(-1)
	if rayDir.X() > 0 {
		stepx = 1
	}
	stepy := int32(-1)
	if rayDir.Y() > 0 {
		stepy = 1
	}
	stepz := int32(-1)
	if rayDir.Z() > 0 {
		stepz = 1
	}

	txDelta := math.Abs(1.0 / rayDir.X())
	tyDelta := math.Abs(1.0 / rayDir.Y())
	tzDelta := math.Abs(1.0 / rayDir.Z())

	xdist := rayStart.X() - float64(ix)
	if stepx > 0 {
		xdist = float64(ix+1) - rayStart.X()
	}
	ydist := rayStart.Y() - float64(iy)
	if stepy > 0 {
		ydist = float64(iy+1) - rayStart.Y()
	}
	zdist := rayStart.Z() - float64(iz)
	if stepz > 0 {
		zdist = float64(iz+1) - rayStart.Z()
	}

	txMax := math.Inf(1)
	if txDelta < math.Inf(1) {
		txMax = txDelta * xdist
	}
	tyMax := math.Inf(1)
	if tyDelta < math.Inf(1) {
		tyMax = tyDelta * ydist
	}
	tzMax := math.Inf(1)
	if tzDelta < math.Inf(1) {
		tzMax = tzDelta * zdist
	}

	steppedIndex := -1

	for t <= maxRayLength {
		if stopRay(ix, iy, iz) {
			current := voxel.Int3{X: ix, Y: iy, Z: iz}
			side := entryFace(steppedIndex, rayDir)
			return HitInfo3D{
				Hit:                    true,
				Distance:               t,
				Side:                   side,
				CollisionWorldPosition: rayStart.Add(rayDir.Mul(t)),
				PreviousGridPosition:   current.Side(side),
				CollisionGridPosition:  current,
			}
		}

		if txMax < tyMax {
			if txMax < tzMax {
				ix += stepx
				t = txMax
				txMax += txDelta
				steppedIndex = 0
			} else {
				iz += stepz
				t = tzMax
				tzMax += tzDelta
				steppedIndex = 2
			}
		} else {
			if tyMax < tzMax {
				iy += stepy
				t = tyMax
				tyMax += tyDelta
				steppedIndex = 1
			} else {
				iz += stepz
				t = tzMax
				tzMax += tzDelta
				steppedIndex = 2
			}
		}
	}

	return HitInfo3D{Hit: false}
}

// entryFace maps the last stepped axis to the face the ray crossed. A hit in the
// starting cell has no crossing, so the dominant axis of the ray is used.
func entryFace(steppedIndex int, rayDir mgl64.Vec3) voxel.BlockFace {
	if steppedIndex < 0 {
		ax, ay, az := math.Abs(rayDir.X()), math.Abs(rayDir.Y()), math.Abs(rayDir.Z())
		switch {
		case ax >= ay && ax >= az:
			steppedIndex = 0
		case ay >= az:
			steppedIndex = 1
		default:
			steppedIndex = 2
		}
	}
	switch steppedIndex {
	case 0:
		if rayDir.X() > 0 {
			return voxel.West
		}
		return voxel.East
	case 1:
		if rayDir.Y() > 0 {
			return voxel.Down
		}
		return voxel.Up
	default:
		if rayDir.Z() > 0 {
			return voxel.North
		}
		return voxel.South
	}
}
