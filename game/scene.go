package game

import (
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxSceneFill caps the number of cells a single from/to box may fill.
const MaxSceneFill = 1 << 20

// Scene is the YAML description of a small world to try the tools on.
type Scene struct {
	Materials []SceneMaterial `yaml:"materials"`
	Blocks    []SceneBlock    `yaml:"blocks"`
	Actors    []SceneActor    `yaml:"actors"`
}

// SceneMaterial declares a block type the default library lacks.
type SceneMaterial struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Faces    []string `yaml:"faces"`
	Axes     []string `yaml:"axes"`
	Traits   []string `yaml:"traits"`
	Tile     bool     `yaml:"tile"`
	Bisected bool     `yaml:"bisected"`
}

// SceneBlock sets a single cell (Pos) or fills the box From..To inclusive.
type SceneBlock struct {
	Pos   string `yaml:"pos"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Block string `yaml:"block"`
}

type SceneActor struct {
	Name     string    `yaml:"name"`
	Pos      []float64 `yaml:"pos"`
	Yaw      float64   `yaml:"yaw"`
	Pitch    float64   `yaml:"pitch"`
	Sneaking bool      `yaml:"sneaking"`
	GameMode string    `yaml:"gamemode"`
}

// LoadScene reads a scene file and builds its world. Custom materials are
// registered on lib.
func LoadScene(lib *BlockLibrary, filename string) (*World, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	w, err := ParseScene(lib, data)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	util.LogIOInfo("loaded scene", "file", filename, "blocks", len(w.Positions()), "actors", len(w.Actors()))
	return w, nil
}

func ParseScene(lib *BlockLibrary, data []byte) (*World, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	return scene.Build(lib)
}

func (s Scene) Build(lib *BlockLibrary) (*World, error) {
	for _, sm := range s.Materials {
		m, err := sm.material()
		if err != nil {
			return nil, errors.Wrapf(err, "material %s", sm.Name)
		}
		if _, exists := lib.Get(m.Name); exists {
			return nil, errors.Errorf("material %s already exists", m.Name)
		}
		lib.Add(m)
		util.LogWorldDebug("registered scene material", "name", m.Name, "category", m.Kind.Category())
	}

	w := NewWorld(lib)
	for i, sb := range s.Blocks {
		if err := sb.apply(w); err != nil {
			return nil, errors.Wrapf(err, "block entry %d", i)
		}
	}
	for i, sa := range s.Actors {
		if len(sa.Pos) != 3 {
			return nil, errors.Errorf("actor entry %d: pos needs three coordinates", i)
		}
		name := sa.Name
		if name == "" {
			name = DefaultActor
		}
		a := NewActor(name, mgl64.Vec3{sa.Pos[0], sa.Pos[1], sa.Pos[2]}, sa.Yaw, sa.Pitch)
		a.Sneaking = sa.Sneaking
		if sa.GameMode != "" {
			a.GameMode = sa.GameMode
		}
		w.AddActor(a)
	}
	return w, nil
}

func (sb SceneBlock) apply(w *World) error {
	block, err := ParseBlock(w.Library(), sb.Block)
	if err != nil {
		return err
	}
	if sb.Pos != "" {
		pos, err := voxel.ParseInt3(sb.Pos)
		if err != nil {
			return err
		}
		w.SetBlock(pos, block)
		return nil
	}
	from, err := voxel.ParseInt3(sb.From)
	if err != nil {
		return errors.Wrap(err, "from")
	}
	to, err := voxel.ParseInt3(sb.To)
	if err != nil {
		return errors.Wrap(err, "to")
	}
	lo := voxel.Int3{X: min(from.X, to.X), Y: min(from.Y, to.Y), Z: min(from.Z, to.Z)}
	sx, sy, sz := span(from.X, to.X), span(from.Y, to.Y), span(from.Z, to.Z)
	if sx > MaxSceneFill || sy > MaxSceneFill || sz > MaxSceneFill || sx*sy*sz > MaxSceneFill {
		return errors.Errorf("box %s..%s exceeds %d blocks", from, to, MaxSceneFill)
	}
	for dx := int64(0); dx < sx; dx++ {
		for dy := int64(0); dy < sy; dy++ {
			for dz := int64(0); dz < sz; dz++ {
				pos := voxel.Int3{X: lo.X + int32(dx), Y: lo.Y + int32(dy), Z: lo.Z + int32(dz)}
				w.SetBlock(pos, block)
			}
		}
	}
	return nil
}

// span is the number of cells between a and b inclusive.
func span(a, b int32) int64 {
	return int64(max(a, b)) - int64(min(a, b)) + 1
}

func (sm SceneMaterial) material() (*Material, error) {
	if sm.Name == "" {
		return nil, errors.New("missing name")
	}
	traits, ok := voxel.ParseTraits(sm.Traits)
	if !ok {
		return nil, errors.Errorf("unknown trait in %v", sm.Traits)
	}
	faces, err := parseFaces(sm.Faces)
	if err != nil {
		return nil, err
	}
	var axes []voxel.Axis
	for _, name := range sm.Axes {
		a, err := voxel.ParseAxis(name)
		if err != nil {
			return nil, err
		}
		axes = append(axes, a)
	}

	var kind orient.Kind
	switch sm.Category {
	case "", "none":
	case "multiple_facing":
		kind = orient.MultiFacingKind(orFaces(faces, voxel.HorizontalFaceSet))
	case "wall":
		kind = orient.WallKind()
	case "stairs":
		kind = orient.StairsKind()
		kind.Faces = orFaces(faces, voxel.HorizontalFaceSet)
	case "directional":
		kind = orient.DirectionalKind(orFaces(faces, voxel.AllFaceSet))
	case "axis":
		kind = orient.AxisKind(axes...)
	case "slab":
		kind = orient.SlabKind()
	default:
		return nil, errors.Errorf("unknown category %q", sm.Category)
	}
	return &Material{Name: sm.Name, Kind: kind, Traits: traits, TileEntity: sm.Tile, Bisected: sm.Bisected}, nil
}

// sceneMaterialOf describes m the way a scene would declare it.
func sceneMaterialOf(m *Material) SceneMaterial {
	sm := SceneMaterial{
		Name:     m.Name,
		Category: m.Kind.Category().String(),
		Faces:    []string{},
		Axes:     []string{},
		Traits:   m.Traits.Names(),
		Tile:     m.TileEntity,
		Bisected: m.Bisected,
	}
	for _, f := range m.Kind.Faces.Faces() {
		sm.Faces = append(sm.Faces, f.String())
	}
	for _, a := range m.Kind.Axes.Axes() {
		sm.Axes = append(sm.Axes, a.String())
	}
	return sm
}

func parseFaces(names []string) (voxel.FaceSet, error) {
	var set voxel.FaceSet
	for _, name := range names {
		f, err := voxel.ParseBlockFace(name)
		if err != nil {
			return 0, err
		}
		set = set.With(f)
	}
	return set, nil
}

func orFaces(set, fallback voxel.FaceSet) voxel.FaceSet {
	if set.Empty() {
		return fallback
	}
	return set
}
