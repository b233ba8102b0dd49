package game

import (
	"bytes"
	"compress/gzip"
	"path/filepath"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWorld(t *testing.T) *World {
	t.Helper()
	w := newTestWorld(t, map[voxel.Int3]string{
		{X: 0, Y: 64, Z: 0}:  "oak_stairs[facing=west,half=top,shape=inner_right,waterlogged=true]",
		{X: 1, Y: 64, Z: 0}:  "oak_stairs[facing=west,half=top,shape=inner_right,waterlogged=true]",
		{X: 2, Y: 64, Z: 0}:  "cobblestone_wall[north=tall,west=low]",
		{X: -4, Y: 60, Z: 9}: "stone",
		{X: 0, Y: 70, Z: 0}:  "tall_grass",
		{X: 0, Y: 71, Z: 0}:  "tall_grass[half=upper]",
		{X: 3, Y: 64, Z: -2}: "oak_fence[east=true,south=true]",
		{X: 3, Y: 65, Z: -2}: "observer[facing=down]",
	})
	a := NewActor("alex", mgl64.Vec3{1.5, 64, -3.25}, 45, -12.5)
	a.Sneaking = true
	a.GameMode = "survival"
	w.AddActor(a)
	return w
}

func assertSameWorld(t *testing.T, want, got *World) {
	t.Helper()
	require.Equal(t, want.Positions(), got.Positions())
	for _, pos := range want.Positions() {
		assert.Equal(t, want.Block(pos), got.Block(pos), pos.String())
	}
	require.Len(t, got.Actors(), len(want.Actors()))
	for i, a := range want.Actors() {
		assert.Equal(t, *a, *got.Actors()[i])
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	w := snapshotWorld(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(w, &buf))

	loaded, err := ReadSnapshot(w.Library(), bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assertSameWorld(t, w, loaded)
}

func TestSnapshotCarriesSceneMaterials(t *testing.T) {
	w, err := ParseScene(NewDefaultLibrary(), []byte(testScene))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(w, &buf))

	lib := NewDefaultLibrary()
	loaded, err := ReadSnapshot(lib, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assertSameWorld(t, w, loaded)

	for _, name := range []string{"spruce_stairs", "basalt", "wall_sign"} {
		want := w.Library().MustGet(name)
		got, ok := lib.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, *want, *got, name)
	}
	assert.Len(t, snapshotOf(w).Materials, 3, "built-in materials are not repeated")
}

func TestSnapshotSharesPaletteEntries(t *testing.T) {
	data := snapshotOf(snapshotWorld(t))
	assert.Len(t, data.Blocks, 8)
	assert.Len(t, data.Palette, 7)
	assert.Equal(t, data.Blocks[1].State, data.Blocks[4].State, "both stairs share one entry")
}

func TestSnapshotFiles(t *testing.T) {
	w := snapshotWorld(t)
	path := filepath.Join(t.TempDir(), "world.nbt.gz")
	require.NoError(t, SaveSnapshot(w, path))

	loaded, err := LoadSnapshot(w.Library(), path)
	require.NoError(t, err)
	assertSameWorld(t, w, loaded)

	_, err = LoadSnapshot(w.Library(), filepath.Join(t.TempDir(), "missing.nbt.gz"))
	assert.Error(t, err)
}

func gzipNBT(t *testing.T, v any) []byte {
	raw, err := nbt.Marshal(v)
	require.NoError(t, err)
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestReadSnapshotErrors(t *testing.T) {
	lib := NewDefaultLibrary()

	_, err := ReadSnapshot(lib, bytes.NewReader([]byte("not gzip")))
	assert.Error(t, err)

	_, err = ReadSnapshot(lib, bytes.NewReader(gzipNBT(t, snapshotData{Version: 7})))
	assert.ErrorContains(t, err, "unsupported snapshot version")

	unknown := snapshotData{
		Version: snapshotVersion,
		Palette: []paletteEntry{{Name: "unobtainium", Properties: map[string]string{}}},
	}
	_, err = ReadSnapshot(lib, bytes.NewReader(gzipNBT(t, unknown)))
	assert.ErrorIs(t, err, ErrUnknownMaterial)

	dangling := snapshotData{
		Version: snapshotVersion,
		Palette: []paletteEntry{{Name: "stone", Properties: map[string]string{}}},
		Blocks:  []snapshotBlock{{Pos: []int32{0, 0, 0}, State: 3}},
	}
	_, err = ReadSnapshot(lib, bytes.NewReader(gzipNBT(t, dangling)))
	assert.ErrorContains(t, err, "malformed block entry")
}
