package util

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/voxel"
)

type AABB struct {
	center  mgl64.Vec3
	extents mgl64.Vec3 // size in respective axis, they extend from the center to the max and min
}

func NewAABB(center, extents mgl64.Vec3) AABB {
	return AABB{
		center:  center,
		extents: extents,
	}
}

func NewAABBFromMin(min, extents mgl64.Vec3) AABB {
	return AABB{
		center:  min.Add(extents.Mul(0.5)),
		extents: extents,
	}
}

// NewBlockAABB is the unit cube of a block.
func NewBlockAABB(pos voxel.Int3) AABB {
	return NewAABBFromMin(pos.ToVec3(), mgl64.Vec3{1, 1, 1})
}

// NewActorAABB is a hitbox standing with its feet centered on feet.
func NewActorAABB(feet mgl64.Vec3, width, height float64) AABB {
	min := mgl64.Vec3{feet.X() - width/2, feet.Y(), feet.Z() - width/2}
	return NewAABBFromMin(min, mgl64.Vec3{width, height, width})
}

func (a AABB) Min() mgl64.Vec3 {
	return a.center.Sub(a.extents.Mul(0.5))
}

func (a AABB) Max() mgl64.Vec3 {
	return a.center.Add(a.extents.Mul(0.5))
}

func (a AABB) Center() mgl64.Vec3 {
	return a.center
}

func (a AABB) MinkowskiDifference(other AABB) AABB {
	minM := other.Min().Sub(a.Max())
	extM := a.extents.Add(other.extents)
	return NewAABBFromMin(minM, extM)
}

func (a AABB) Contains(vec3 mgl64.Vec3) bool {
	minVal := a.Min()
	maxVal := a.Max()
	return vec3.X() >= minVal.X() && vec3.X() <= maxVal.X() &&
		vec3.Y() >= minVal.Y() && vec3.Y() <= maxVal.Y() &&
		vec3.Z() >= minVal.Z() && vec3.Z() <= maxVal.Z()
}

// Intersects reports a proper overlap; boxes that only touch do not intersect.
func (a AABB) Intersects(other AABB) bool {
	m := a.MinkowskiDifference(other)
	minVal, maxVal := m.Min(), m.Max()
	for i := 0; i < 3; i++ {
		if minVal[i] >= 0 || maxVal[i] <= 0 {
			return false
		}
	}
	return true
}
