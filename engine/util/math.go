package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Fract returns the fractional part of x in [0,1), also for negative x.
func Fract(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

// PitchDegrees is the view pitch in degrees; positive values look down.
func PitchDegrees(direction mgl64.Vec3) float64 {
	l := direction.Len()
	if l == 0 {
		return 0
	}
	return -mgl64.RadToDeg(math.Asin(Clamp(direction.Y()/l, -1, 1)))
}

// DirectionFromRotation turns a yaw/pitch pair in degrees into a unit view
// vector. Yaw 0 looks south, yaw 90 looks west.
func DirectionFromRotation(yaw, pitch float64) mgl64.Vec3 {
	yawRad := mgl64.DegToRad(yaw)
	pitchRad := mgl64.DegToRad(pitch)
	xz := math.Cos(pitchRad)
	return mgl64.Vec3{
		-xz * math.Sin(yawRad),
		-math.Sin(pitchRad),
		xz * math.Cos(yawRad),
	}
}
