package voxel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Int3 is an integer block position in world space.
type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(tr Int3) Int3 {
	return Int3{i.X - tr.X, i.Y - tr.Y, i.Z - tr.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

// Side returns the neighbouring position across the given face.
func (i Int3) Side(face BlockFace) Int3 {
	return i.Add(face.Offset())
}

// Below is shorthand for Side(Down).
func (i Int3) Below() Int3 {
	return i.Side(Down)
}

// IsAdjacent reports whether other differs from i by exactly one on exactly one axis.
func (i Int3) IsAdjacent(other Int3) bool {
	return ManhattanDistance3(i, other) == 1
}

func (i Int3) ToVec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(i.X), float64(i.Y), float64(i.Z)}
}

// ToBlockCenterVec3 returns the world-space center of the block.
func (i Int3) ToBlockCenterVec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(i.X) + 0.5, float64(i.Y) + 0.5, float64(i.Z) + 0.5}
}

func (i Int3) String() string {
	return fmt.Sprintf("%d,%d,%d", i.X, i.Y, i.Z)
}

// ToGridInt3 returns the block that contains the world position.
func ToGridInt3(pos mgl64.Vec3) Int3 {
	return Int3{
		X: int32(math.Floor(pos.X())),
		Y: int32(math.Floor(pos.Y())),
		Z: int32(math.Floor(pos.Z())),
	}
}

// ParseInt3 parses "x,y,z".
func ParseInt3(s string) (Int3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Int3{}, errors.Errorf("expected x,y,z but got %q", s)
	}
	var values [3]int32
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return Int3{}, errors.Wrapf(err, "coordinate %d of %q", i, s)
		}
		values[i] = int32(v)
	}
	return Int3{values[0], values[1], values[2]}, nil
}

func ManhattanDistance3(a, b Int3) int32 {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y) + Abs(a.Z-b.Z)
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}
