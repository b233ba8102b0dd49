package game

import (
	"sort"
	"strings"

	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/pkg/errors"
)

var ErrUnknownMaterial = errors.New("unknown material")

// Material is a block type: what its orientation allows and how the world
// treats it.
type Material struct {
	Name   string
	Kind   orient.Kind
	Traits voxel.Traits
	// TileEntity marks blocks with attached data (chests, furnaces...).
	TileEntity bool
	// Bisected blocks occupy two cells, the upper one carries voxel.UpperHalf.
	Bisected bool
}

// Placeable reports whether a placement tool may put the material into the world.
func (m *Material) Placeable() bool {
	return m != nil && !m.Traits.Has(voxel.Air) && !m.Traits.Has(voxel.Fluid)
}

func (m *Material) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.Name
}

type BlockLibrary struct {
	materials map[string]*Material
	ordered   []*Material
}

func NewBlockLibrary() *BlockLibrary {
	return &BlockLibrary{materials: make(map[string]*Material)}
}

// Add registers a material. Names are unique.
func (b *BlockLibrary) Add(m *Material) *Material {
	name := normalizeName(m.Name)
	if _, exists := b.materials[name]; exists {
		panic("Material already exists: " + name)
	}
	m.Name = name
	b.materials[name] = m
	b.ordered = append(b.ordered, m)
	return m
}

func (b *BlockLibrary) Get(name string) (*Material, bool) {
	m, ok := b.materials[normalizeName(name)]
	return m, ok
}

func (b *BlockLibrary) MustGet(name string) *Material {
	m, ok := b.Get(name)
	if !ok {
		panic("Unknown material: " + name)
	}
	return m
}

func (b *BlockLibrary) Air() *Material {
	return b.MustGet("air")
}

// Materials returns the materials in registration order.
func (b *BlockLibrary) Materials() []*Material {
	return append([]*Material(nil), b.ordered...)
}

func (b *BlockLibrary) Names() []string {
	names := make([]string, 0, len(b.ordered))
	for _, m := range b.ordered {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimPrefix(name, "minecraft:")
}

const (
	plantTraits = voxel.Passable
	cubeTraits  = voxel.Solid | voxel.FullCube
)

// NewDefaultLibrary holds the vanilla blocks the tools are usually tried on.
func NewDefaultLibrary() *BlockLibrary {
	b := NewBlockLibrary()
	b.Add(&Material{Name: "air", Traits: voxel.Air | voxel.Replaceable})
	b.Add(&Material{Name: "water", Traits: voxel.Fluid | voxel.Replaceable})
	b.Add(&Material{Name: "lava", Traits: voxel.Fluid | voxel.Replaceable})

	for _, name := range []string{"stone", "dirt", "grass_block", "cobblestone", "oak_planks", "glass"} {
		b.Add(&Material{Name: name, Traits: cubeTraits})
	}
	for _, name := range []string{"short_grass", "fern", "dandelion", "poppy", "dead_bush"} {
		b.Add(&Material{Name: name, Traits: plantTraits})
	}
	b.Add(&Material{Name: "tall_grass", Traits: plantTraits, Bisected: true})

	for _, name := range []string{"oak_stairs", "stone_stairs", "cobblestone_stairs"} {
		b.Add(&Material{Name: name, Kind: orient.StairsKind(), Traits: voxel.Solid | voxel.Waterloggable})
	}
	for _, name := range []string{"oak_slab", "stone_slab"} {
		b.Add(&Material{Name: name, Kind: orient.SlabKind(), Traits: voxel.Solid | voxel.SlabShape | voxel.Waterloggable})
	}
	for _, name := range []string{"oak_log", "quartz_pillar", "hay_block"} {
		b.Add(&Material{Name: name, Kind: orient.AxisKind(), Traits: cubeTraits})
	}

	horizontal := orient.DirectionalKind(voxel.HorizontalFaceSet)
	b.Add(&Material{Name: "furnace", Kind: horizontal, Traits: cubeTraits, TileEntity: true})
	b.Add(&Material{Name: "carved_pumpkin", Kind: horizontal, Traits: cubeTraits})
	b.Add(&Material{Name: "observer", Kind: orient.DirectionalKind(voxel.AllFaceSet), Traits: cubeTraits})
	b.Add(&Material{Name: "piston", Kind: orient.DirectionalKind(voxel.AllFaceSet), Traits: cubeTraits})
	b.Add(&Material{Name: "hopper", Kind: orient.DirectionalKind(voxel.HorizontalFaceSet.With(voxel.Down)), Traits: voxel.Solid, TileEntity: true})
	b.Add(&Material{Name: "chest", Kind: horizontal, Traits: voxel.Solid | voxel.Waterloggable, TileEntity: true})
	b.Add(&Material{Name: "lever", Kind: horizontal, Traits: 0})

	sides := orient.MultiFacingKind(voxel.HorizontalFaceSet)
	for _, name := range []string{"oak_fence", "glass_pane", "iron_bars"} {
		b.Add(&Material{Name: name, Kind: sides, Traits: voxel.Solid | voxel.Waterloggable})
	}
	b.Add(&Material{Name: "cobblestone_wall", Kind: orient.WallKind(), Traits: voxel.Solid | voxel.Waterloggable})
	return b
}

// ParseBlock reads a block state string such as "oak_stairs[facing=east]".
// Besides the orientation properties it understands waterlogged and half=upper
// for bisected blocks.
func ParseBlock(lib *BlockLibrary, text string) (Block, error) {
	name, props, err := orient.ParseBlockState(text)
	if err != nil {
		return Block{}, err
	}
	return NewBlockFromProperties(lib, name, props)
}

func NewBlockFromProperties(lib *BlockLibrary, name string, props map[string]string) (Block, error) {
	m, ok := lib.Get(name)
	if !ok {
		return Block{}, errors.Wrap(ErrUnknownMaterial, name)
	}
	state, err := orient.ParseProperties(m.Kind, props)
	if err != nil {
		return Block{}, errors.Wrapf(err, "block %s", name)
	}
	block := Block{Material: m, State: state}
	block.Waterlogged = props["waterlogged"] == "true" && m.Traits.Has(voxel.Waterloggable)
	block.Upper = m.Bisected && props["half"] == "upper"
	return block, nil
}

// FormatBlock is the inverse of ParseBlock.
func FormatBlock(b Block) string {
	if b.Material == nil {
		return "air"
	}
	return orient.FormatBlockState(b.Material.Name, b.Properties())
}
