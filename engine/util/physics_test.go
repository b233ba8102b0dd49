package util

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidAt(blocks ...voxel.Int3) func(x, y, z int32) bool {
	set := make(map[voxel.Int3]bool, len(blocks))
	for _, b := range blocks {
		set[b] = true
	}
	return func(x, y, z int32) bool {
		return set[voxel.Int3{X: x, Y: y, Z: z}]
	}
}

func TestDDARaycastHitsFaces(t *testing.T) {
	tests := []struct {
		name      string
		start     mgl64.Vec3
		dir       mgl64.Vec3
		block     voxel.Int3
		wantSide  voxel.BlockFace
		wantPoint mgl64.Vec3
	}{
		{"looking down", mgl64.Vec3{0.5, 2.62, 0.5}, mgl64.Vec3{0, -1, 0}, voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.Up, mgl64.Vec3{0.5, 1, 0.5}},
		{"looking east", mgl64.Vec3{-2.5, 0.5, 0.5}, mgl64.Vec3{1, 0, 0}, voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.West, mgl64.Vec3{0, 0.5, 0.5}},
		{"looking west", mgl64.Vec3{3.5, 0.5, 0.5}, mgl64.Vec3{-1, 0, 0}, voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.East, mgl64.Vec3{1, 0.5, 0.5}},
		{"looking south", mgl64.Vec3{0.5, 0.5, -2.5}, mgl64.Vec3{0, 0, 1}, voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.North, mgl64.Vec3{0.5, 0.5, 0}},
		{"looking north", mgl64.Vec3{0.5, 0.5, 3.5}, mgl64.Vec3{0, 0, -1}, voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.South, mgl64.Vec3{0.5, 0.5, 1}},
		{"looking up", mgl64.Vec3{0.5, -2.5, 0.5}, mgl64.Vec3{0, 1, 0}, voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.Down, mgl64.Vec3{0.5, 0, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := DDARaycast(tt.start, tt.start.Add(tt.dir.Mul(6)), solidAt(tt.block))
			require.True(t, hit.Hit)
			assert.Equal(t, tt.block, hit.CollisionGridPosition)
			assert.Equal(t, tt.wantSide, hit.Side)
			assert.Equal(t, tt.block.Side(tt.wantSide), hit.PreviousGridPosition)
			assert.InDelta(t, tt.wantPoint.X(), hit.CollisionWorldPosition.X(), 1e-9)
			assert.InDelta(t, tt.wantPoint.Y(), hit.CollisionWorldPosition.Y(), 1e-9)
			assert.InDelta(t, tt.wantPoint.Z(), hit.CollisionWorldPosition.Z(), 1e-9)
		})
	}
}

func TestDDARaycastRespectsMaxLength(t *testing.T) {
	start := mgl64.Vec3{0.5, 0.5, 0.5}
	hit := DDARaycast(start, start.Add(mgl64.Vec3{1, 0, 0}.Mul(6)), solidAt(voxel.Int3{X: 9}))
	assert.False(t, hit.Hit)

	hit = DDARaycast(start, start, solidAt(voxel.Int3{}))
	assert.False(t, hit.Hit)
}

func TestDDARaycastDiagonal(t *testing.T) {
	start := mgl64.Vec3{0.5, 1.62, -0.5}
	end := mgl64.Vec3{0.5, -0.38, 1.5}
	hit := DDARaycast(start, end, solidAt(voxel.Int3{X: 0, Y: 0, Z: 0}))
	require.True(t, hit.Hit)
	assert.Equal(t, voxel.Int3{X: 0, Y: 0, Z: 0}, hit.CollisionGridPosition)
	assert.Equal(t, voxel.Up, hit.Side)
}

func TestAABBIntersects(t *testing.T) {
	block := NewBlockAABB(voxel.Int3{X: 0, Y: 0, Z: 0})
	standingOn := NewActorAABB(mgl64.Vec3{0.5, 1, 0.5}, 0.6, 1.8)
	inside := NewActorAABB(mgl64.Vec3{0.5, 0, 0.5}, 0.6, 1.8)
	beside := NewActorAABB(mgl64.Vec3{1.3, 0, 0.5}, 0.6, 1.8)
	overlapping := NewActorAABB(mgl64.Vec3{1.2, 0, 0.5}, 0.6, 1.8)

	assert.False(t, standingOn.Intersects(block))
	assert.True(t, inside.Intersects(block))
	assert.False(t, beside.Intersects(block))
	assert.True(t, overlapping.Intersects(block))
	assert.True(t, block.Contains(mgl64.Vec3{0.5, 0.5, 0.5}))
	assert.Equal(t, mgl64.Vec3{0.5, 0.5, 0.5}, block.Center())
}

func TestFractAndPitch(t *testing.T) {
	assert.InDelta(t, 0.25, Fract(64.25), 1e-12)
	assert.InDelta(t, 0.75, Fract(-0.25), 1e-12)
	assert.Equal(t, 0.0, Fract(3))
	assert.InDelta(t, 90, PitchDegrees(mgl64.Vec3{0, -1, 0}), 1e-9)
	assert.InDelta(t, -45, PitchDegrees(mgl64.Vec3{1, 1, 0}), 1e-9)

	south := DirectionFromRotation(0, 0)
	assert.InDelta(t, 1, south.Z(), 1e-9)
	west := DirectionFromRotation(90, 0)
	assert.InDelta(t, -1, west.X(), 1e-9)
	down := DirectionFromRotation(0, 90)
	assert.InDelta(t, -1, down.Y(), 1e-9)
}

func TestLogCategoriesAndLevels(t *testing.T) {
	var buf bytes.Buffer
	previousCategories := GLOBAL_LOG_CATEGORIES
	SetLogger(NewLogger(&buf, LogLevelInfo), LogLevelInfo)
	defer func() {
		GLOBAL_LOG_CATEGORIES = previousCategories
		SetLogger(NewLogger(&bytes.Buffer{}, LogLevelInfo), LogLevelInfo)
	}()

	LogEditDebug("hidden")
	assert.Zero(t, buf.Len())

	LogIOInfo("saved snapshot", "file", "world.nbt.gz")
	assert.Contains(t, buf.String(), "saved snapshot")
	assert.Contains(t, buf.String(), "world.nbt.gz")

	buf.Reset()
	GLOBAL_LOG_CATEGORIES = LogPlacement
	LogIOInfo("filtered")
	assert.Zero(t, buf.Len())

	SetLogLevel(LogLevelDebug)
	LogPlacementDebug("shown")
	assert.Contains(t, buf.String(), "shown")
}

// execute with: go test -bench=. -test.benchmem -test.benchtime=10s
func BenchmarkDDARaycast(b *testing.B) {
	rayStart := mgl64.Vec3{0.3, 65.62, 0.7}
	rayEnd := rayStart.Add(mgl64.Vec3{0.4, -0.6, 0.7}.Normalize().Mul(6))
	stop := solidAt(voxel.Int3{X: 2, Y: 62, Z: 3})
	for i := 0; i < b.N; i++ {
		_ = DDARaycast(rayStart, rayEnd, stop)
	}
}
