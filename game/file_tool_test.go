package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/config"
	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/placement"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = voxel.Int3{X: 0, Y: 64, Z: 0}

func topClick(pos voxel.Int3, x, z float64) placement.Click {
	return placement.Click{
		Pos:      pos,
		Face:     voxel.Up,
		Point:    pos.ToVec3().Add(mgl64.Vec3{x, 1, z}),
		HasPoint: true,
	}
}

func testPlayer() *Actor {
	return NewActor("player", mgl64.Vec3{0.5, 64, 3.5}, 180, 30)
}

func TestFileTogglesStairsCorner(t *testing.T) {
	w := newTestWorld(t, map[voxel.Int3]string{origin: "oak_stairs[facing=north,half=bottom,shape=straight,waterlogged=true]"})
	file := NewFileTool(config.Default())

	result := file.Use(w, testPlayer(), topClick(origin, 0.25, 0.75))
	require.True(t, result.Changed)
	assert.True(t, result.Handled)
	assert.True(t, result.Cancel)
	assert.Equal(t, orient.Stairs, result.Category)
	assert.Equal(t, "oak_stairs[facing=west,half=bottom,shape=inner_right,waterlogged=true]", w.Block(origin).String())
	assert.Equal(t, result.New, w.Block(origin))
}

func TestFileSneakFlipsStairs(t *testing.T) {
	w := newTestWorld(t, map[voxel.Int3]string{origin: "stone_stairs[facing=east,half=bottom,shape=outer_left]"})
	actor := testPlayer()
	actor.Sneaking = true

	result := NewFileTool(nil).Use(w, actor, topClick(origin, 0.9, 0.9))
	require.True(t, result.Changed)
	assert.Equal(t, orient.Top, w.Block(origin).State.Half)
	assert.Equal(t, orient.OuterLeft, w.Block(origin).State.Shape)
}

func TestFileTogglesFenceSide(t *testing.T) {
	w := newTestWorld(t, map[voxel.Int3]string{origin: "oak_fence"})
	file := NewFileTool(nil)

	file.Use(w, testPlayer(), topClick(origin, 0.9, 0.5))
	assert.Equal(t, voxel.NewFaceSet(voxel.East), w.Block(origin).State.Faces)
	file.Use(w, testPlayer(), topClick(origin, 0.5, 0.05))
	assert.Equal(t, voxel.NewFaceSet(voxel.East, voxel.North), w.Block(origin).State.Faces)
	file.Use(w, testPlayer(), topClick(origin, 0.95, 0.4))
	assert.Equal(t, voxel.NewFaceSet(voxel.North), w.Block(origin).State.Faces)
}

func TestFileCyclesWallHeight(t *testing.T) {
	w := newTestWorld(t, map[voxel.Int3]string{origin: "cobblestone_wall"})
	file := NewFileTool(nil)
	click := placement.Click{Pos: origin, Face: voxel.West}

	want := []orient.WallHeight{orient.WallLow, orient.WallTall, orient.WallNone}
	for _, height := range want {
		require.True(t, file.Use(w, testPlayer(), click).Changed)
		assert.Equal(t, height, w.Block(origin).State.WallAt(voxel.West))
	}
}

func TestFileRotatesDirectionalAndAxis(t *testing.T) {
	w := newTestWorld(t, map[voxel.Int3]string{
		origin:              "hopper[facing=west]",
		{X: 1, Y: 64, Z: 0}: "observer[facing=west]",
		{X: 2, Y: 64, Z: 0}: "oak_log[axis=z]",
		{X: 3, Y: 64, Z: 0}: "oak_slab[type=double]",
		{X: 4, Y: 64, Z: 0}: "stone",
		{X: 5, Y: 64, Z: 0}: "carved_pumpkin[facing=west]",
	})
	file := NewFileTool(nil)
	player := testPlayer()

	assert.False(t, file.Use(w, player, placement.Click{Pos: origin, Face: voxel.Up}).Handled, "hoppers are tile entities")

	file.Use(w, player, placement.Click{Pos: voxel.Int3{X: 1, Y: 64, Z: 0}, Face: voxel.Up})
	assert.Equal(t, voxel.Up, w.Block(voxel.Int3{X: 1, Y: 64, Z: 0}).State.Facing)

	file.Use(w, player, placement.Click{Pos: voxel.Int3{X: 2, Y: 64, Z: 0}, Face: voxel.Up})
	assert.Equal(t, voxel.AxisX, w.Block(voxel.Int3{X: 2, Y: 64, Z: 0}).State.Axis)

	result := file.Use(w, player, placement.Click{Pos: voxel.Int3{X: 3, Y: 64, Z: 0}, Face: voxel.Up})
	assert.True(t, result.Handled)
	assert.True(t, result.Cancel)
	assert.False(t, result.Changed)
	assert.Equal(t, "no change", result.Reason)

	result = file.Use(w, player, placement.Click{Pos: voxel.Int3{X: 4, Y: 64, Z: 0}, Face: voxel.Up})
	assert.True(t, result.Cancel)
	assert.Equal(t, "not modifiable", result.Reason)

	file.Use(w, player, placement.Click{Pos: voxel.Int3{X: 5, Y: 64, Z: 0}, Face: voxel.Up})
	assert.Equal(t, voxel.North, w.Block(voxel.Int3{X: 5, Y: 64, Z: 0}).State.Facing)
}

func TestFileDisabledFeatureFallsThrough(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.File.Features.Stairs = false
	w := newTestWorld(t, map[voxel.Int3]string{origin: "oak_stairs[facing=north,half=top,shape=inner_left]"})
	file := NewFileTool(cfg)

	result := file.Use(w, testPlayer(), topClick(origin, 0.25, 0.75))
	require.True(t, result.Changed)
	assert.Equal(t, orient.Directional, result.Category)
	assert.Equal(t, "oak_stairs[facing=east,half=top,shape=inner_left,waterlogged=false]", w.Block(origin).String())

	cfg.Tools.File.Features.Directional = false
	result = file.Use(w, testPlayer(), topClick(origin, 0.25, 0.75))
	assert.False(t, result.Changed)
	assert.Equal(t, orient.None, result.Category)
	assert.Equal(t, "not modifiable", result.Reason)
}

func TestFileIgnoresExcludedAndRestricted(t *testing.T) {
	w := newTestWorld(t, map[voxel.Int3]string{
		origin:              "lever[facing=north]",
		{X: 1, Y: 64, Z: 0}: "furnace[facing=north]",
		{X: 2, Y: 64, Z: 0}: "oak_log",
	})
	cfg := config.Default()
	file := NewFileTool(cfg)
	player := testPlayer()

	for _, pos := range []voxel.Int3{origin, {X: 1, Y: 64, Z: 0}, {X: 5, Y: 64, Z: 5}} {
		result := file.Use(w, player, placement.Click{Pos: pos, Face: voxel.Up})
		assert.False(t, result.Handled, pos.String())
		assert.False(t, result.Cancel, pos.String())
	}

	player.GameMode = config.GameModeAdventure
	assert.False(t, file.Use(w, player, placement.Click{Pos: voxel.Int3{X: 2, Y: 64, Z: 0}, Face: voxel.Up}).Handled)

	player.GameMode = config.GameModeSurvival
	cfg.Tools.File.Enabled = false
	assert.False(t, file.Use(w, player, placement.Click{Pos: voxel.Int3{X: 2, Y: 64, Z: 0}, Face: voxel.Up}).Handled)
	assert.Equal(t, voxel.AxisY, w.Block(voxel.Int3{X: 2, Y: 64, Z: 0}).State.Axis)
}

func TestFileGuardAndVeto(t *testing.T) {
	before := "oak_log[axis=y]"
	w := newTestWorld(t, map[voxel.Int3]string{origin: before})
	file := NewFileTool(nil)
	click := placement.Click{Pos: origin, Face: voxel.Up}

	file.Guard = GuardFunc(func(a *Actor, pos voxel.Int3) bool { return pos != origin })
	result := file.Use(w, testPlayer(), click)
	assert.True(t, result.Cancel)
	assert.Equal(t, "build denied", result.Reason)
	assert.Equal(t, before, w.Block(origin).String())

	file.Guard = nil
	var seen []*EditEvent
	file.OnEdit(func(e *EditEvent) {
		seen = append(seen, e)
		assert.Equal(t, "oak_log[axis=z]", w.Block(origin).String(), "listeners see the new block")
		e.Cancel()
	})
	result = file.Use(w, testPlayer(), click)
	assert.False(t, result.Changed)
	assert.Equal(t, "vetoed", result.Reason)
	require.Len(t, seen, 1)
	assert.Equal(t, voxel.AxisY, seen[0].Old.State.Axis)
	assert.Equal(t, before, w.Block(origin).String())
}

func TestFileMetricsCountChangesOnly(t *testing.T) {
	w := newTestWorld(t, map[voxel.Int3]string{
		origin:              "oak_slab[type=top]",
		{X: 1, Y: 64, Z: 0}: "oak_slab[type=double]",
	})
	file := NewFileTool(nil)
	file.Metrics = NewMetrics(prometheus.NewRegistry())

	file.Use(w, testPlayer(), placement.Click{Pos: origin, Face: voxel.Up})
	file.Use(w, testPlayer(), placement.Click{Pos: voxel.Int3{X: 1, Y: 64, Z: 0}, Face: voxel.Up})
	assert.Equal(t, 1.0, testutil.ToFloat64(file.Metrics.edits.WithLabelValues("slab")))
	assert.Equal(t, orient.SlabBottom, w.Block(origin).State.Slab)
}
