package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
materials:
  - name: spruce_stairs
    category: stairs
    traits: [solid, waterloggable]
  - name: basalt
    category: axis
    axes: [x, z]
    traits: [solid, full_cube]
  - name: wall_sign
    category: directional
    faces: [north, south]
    tile: true
blocks:
  - from: -1,63,-1
    to: 1,63,1
    block: grass_block
  - pos: 0,64,0
    block: spruce_stairs[facing=east]
  - pos: 1,64,0
    block: basalt
actors:
  - name: alex
    pos: [0.5, 64, -2.5]
    yaw: 0
    pitch: 25
    sneaking: true
  - pos: [3, 64, 3]
    gamemode: adventure
`

func TestParseScene(t *testing.T) {
	lib := NewDefaultLibrary()
	w, err := ParseScene(lib, []byte(testScene))
	require.NoError(t, err)

	assert.Len(t, w.Positions(), 11)
	assert.Equal(t, "grass_block", w.Block(voxel.Int3{X: -1, Y: 63, Z: 1}).String())
	assert.Equal(t, "spruce_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]", w.Block(voxel.Int3{X: 0, Y: 64, Z: 0}).String())
	assert.Equal(t, voxel.AxisX, w.Block(voxel.Int3{X: 1, Y: 64, Z: 0}).State.Axis, "y is not a legal axis")

	sign := lib.MustGet("wall_sign")
	assert.True(t, sign.TileEntity)
	assert.Equal(t, orient.Directional, sign.Kind.Category())
	assert.Equal(t, voxel.NewFaceSet(voxel.North, voxel.South), sign.Kind.Faces)

	actors := w.Actors()
	require.Len(t, actors, 2)
	assert.Equal(t, "alex", actors[0].Name)
	assert.True(t, actors[0].Sneaking)
	assert.Equal(t, "creative", actors[0].GameMode)
	assert.Equal(t, voxel.South, actors[0].Facing())
	assert.Equal(t, DefaultActor, actors[1].Name)
	assert.Equal(t, "adventure", actors[1].GameMode)
}

func TestLoadSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))
	w, err := LoadScene(NewDefaultLibrary(), path)
	require.NoError(t, err)
	_, ok := w.Actor("alex")
	assert.True(t, ok)

	_, err = LoadScene(NewDefaultLibrary(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSceneErrors(t *testing.T) {
	tests := map[string]string{
		"unknown block":      "blocks:\n  - pos: 0,0,0\n    block: unobtainium\n",
		"bad position":       "blocks:\n  - pos: 0,zero,0\n    block: stone\n",
		"missing box corner": "blocks:\n  - from: 0,0,0\n    block: stone\n",
		"unknown category":   "materials:\n  - name: thing\n    category: spiral\n",
		"unknown trait":      "materials:\n  - name: thing\n    traits: [sticky]\n",
		"duplicate material": "materials:\n  - name: stone\n",
		"short actor pos":    "actors:\n  - pos: [1, 2]\n",
		"not yaml":           "blocks: {",
		"oversized box":      "blocks:\n  - from: 0,0,0\n    to: 1024,1024,0\n    block: stone\n",
		"endless box":        "blocks:\n  - from: 0,-2147483648,0\n    to: 0,2147483647,0\n    block: stone\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScene(NewDefaultLibrary(), []byte(body))
			assert.Error(t, err)
		})
	}
}

func TestSceneBoxAtGridEdge(t *testing.T) {
	body := "blocks:\n  - from: 0,2147483646,0\n    to: 1,2147483647,0\n    block: stone\n"
	w, err := ParseScene(NewDefaultLibrary(), []byte(body))
	require.NoError(t, err)
	assert.Len(t, w.Positions(), 4)
	assert.Equal(t, "stone", w.Block(voxel.Int3{X: 1, Y: 2147483647, Z: 0}).String())
}
