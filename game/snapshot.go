package game

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/pkg/errors"
)

const snapshotVersion = 1

/*
	TAG_Compound({
	    "version": TAG_Int(),
	    "materials": TAG_List([
	        TAG_Compound({"name", "category", "faces", "axes", "traits", "tile", "bisected"})
	    ]),
	    "palette": TAG_List([
	        TAG_Compound({"name": TAG_String(), "properties": TAG_Compound()})
	    ]),
	    "blocks": TAG_List([
	        TAG_Compound({"pos": TAG_Int_Array(x, y, z), "state": TAG_Int()})
	    ]),
	    "actors": TAG_List([
	        TAG_Compound({"name", "pos", "yaw", "pitch", "sneaking", "gamemode"})
	    ])
	})
*/
type snapshotData struct {
	Version   int32           `nbt:"version"`
	Materials []materialEntry `nbt:"materials"`
	Palette   []paletteEntry  `nbt:"palette"`
	Blocks    []snapshotBlock `nbt:"blocks"`
	Actors    []snapshotActor `nbt:"actors"`
}

// materialEntry carries a material the default library does not know.
type materialEntry struct {
	Name     string   `nbt:"name"`
	Category string   `nbt:"category"`
	Faces    []string `nbt:"faces"`
	Axes     []string `nbt:"axes"`
	Traits   []string `nbt:"traits"`
	Tile     byte     `nbt:"tile"`
	Bisected byte     `nbt:"bisected"`
}

type paletteEntry struct {
	Name       string            `nbt:"name"`
	Properties map[string]string `nbt:"properties"`
}

type snapshotBlock struct {
	Pos   []int32 `nbt:"pos"`
	State int32   `nbt:"state"`
}

type snapshotActor struct {
	Name     string    `nbt:"name"`
	Pos      []float64 `nbt:"pos"`
	Yaw      float64   `nbt:"yaw"`
	Pitch    float64   `nbt:"pitch"`
	Sneaking byte      `nbt:"sneaking"`
	GameMode string    `nbt:"gamemode"`
}

// SaveSnapshot writes the world as gzip compressed NBT.
func SaveSnapshot(w *World, filename string) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating snapshot")
	}
	defer outfile.Close()
	if err := WriteSnapshot(w, outfile); err != nil {
		return err
	}
	util.LogIOInfo("saved snapshot", "file", filename, "blocks", len(w.Positions()))
	return outfile.Close()
}

func WriteSnapshot(w *World, out io.Writer) error {
	data := snapshotOf(w)
	raw, err := nbt.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "encoding snapshot")
	}
	gzipWriter := gzip.NewWriter(out)
	if _, err := gzipWriter.Write(raw); err != nil {
		return errors.Wrap(err, "writing snapshot")
	}
	return errors.Wrap(gzipWriter.Close(), "writing snapshot")
}

func snapshotOf(w *World) snapshotData {
	data := snapshotData{
		Version:   snapshotVersion,
		Materials: []materialEntry{},
		Palette:   []paletteEntry{},
		Blocks:    []snapshotBlock{},
		Actors:    []snapshotActor{},
	}
	defaults := NewDefaultLibrary()
	for _, m := range w.Library().Materials() {
		if _, builtin := defaults.Get(m.Name); !builtin {
			data.Materials = append(data.Materials, materialEntryOf(m))
		}
	}
	index := make(map[string]int32)
	for _, pos := range w.Positions() {
		b := w.Block(pos)
		key := FormatBlock(b)
		id, known := index[key]
		if !known {
			id = int32(len(data.Palette))
			index[key] = id
			data.Palette = append(data.Palette, paletteEntry{Name: b.Material.Name, Properties: b.Properties()})
		}
		data.Blocks = append(data.Blocks, snapshotBlock{Pos: []int32{pos.X, pos.Y, pos.Z}, State: id})
	}
	for _, a := range w.Actors() {
		data.Actors = append(data.Actors, snapshotActor{
			Name:     a.Name,
			Pos:      []float64{a.Position.X(), a.Position.Y(), a.Position.Z()},
			Yaw:      a.Yaw,
			Pitch:    a.PitchDeg,
			Sneaking: flag(a.Sneaking),
			GameMode: a.GameMode,
		})
	}
	return data
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(lib *BlockLibrary, filename string) (*World, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening snapshot")
	}
	defer file.Close()
	w, err := ReadSnapshot(lib, file)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	util.LogIOInfo("loaded snapshot", "file", filename, "blocks", len(w.Positions()))
	return w, nil
}

func ReadSnapshot(lib *BlockLibrary, in io.Reader) (*World, error) {
	gzipReader, err := gzip.NewReader(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	defer gzipReader.Close()
	raw, err := io.ReadAll(gzipReader)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}

	var data snapshotData
	decoder := nbt.NewDecoder(bytes.NewReader(raw))
	if _, err := decoder.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "decoding snapshot")
	}
	if data.Version != snapshotVersion {
		return nil, errors.Errorf("unsupported snapshot version %d", data.Version)
	}

	for i, entry := range data.Materials {
		if _, known := lib.Get(entry.Name); known {
			continue
		}
		m, err := entry.sceneMaterial().material()
		if err != nil {
			return nil, errors.Wrapf(err, "material entry %d", i)
		}
		lib.Add(m)
		util.LogWorldDebug("registered snapshot material", "name", m.Name, "category", m.Kind.Category())
	}

	palette := make([]Block, len(data.Palette))
	for i, entry := range data.Palette {
		b, err := NewBlockFromProperties(lib, entry.Name, entry.Properties)
		if err != nil {
			return nil, errors.Wrapf(err, "palette entry %d", i)
		}
		palette[i] = b
	}

	w := NewWorld(lib)
	for _, sb := range data.Blocks {
		if len(sb.Pos) != 3 || sb.State < 0 || int(sb.State) >= len(palette) {
			return nil, errors.Errorf("malformed block entry %v", sb)
		}
		w.SetBlock(voxel.Int3{X: sb.Pos[0], Y: sb.Pos[1], Z: sb.Pos[2]}, palette[sb.State])
	}
	for _, sa := range data.Actors {
		if len(sa.Pos) != 3 {
			return nil, errors.Errorf("malformed actor entry %q", sa.Name)
		}
		a := NewActor(sa.Name, mgl64.Vec3{sa.Pos[0], sa.Pos[1], sa.Pos[2]}, sa.Yaw, sa.Pitch)
		a.Sneaking = sa.Sneaking != 0
		a.GameMode = sa.GameMode
		w.AddActor(a)
	}
	return w, nil
}


func materialEntryOf(m *Material) materialEntry {
	sm := sceneMaterialOf(m)
	return materialEntry{
		Name:     sm.Name,
		Category: sm.Category,
		Faces:    sm.Faces,
		Axes:     sm.Axes,
		Traits:   sm.Traits,
		Tile:     flag(sm.Tile),
		Bisected: flag(sm.Bisected),
	}
}

func (e materialEntry) sceneMaterial() SceneMaterial {
	return SceneMaterial{
		Name:     e.Name,
		Category: e.Category,
		Faces:    e.Faces,
		Axes:     e.Axes,
		Traits:   e.Traits,
		Tile:     e.Tile != 0,
		Bisected: e.Bisected != 0,
	}
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
