package game

import (
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/config"
	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/engine/voxel"
)

// Block is the content of one cell.
type Block struct {
	Material    *Material
	State       orient.State
	Waterlogged bool
	// Upper marks the top cell of a bisected block.
	Upper bool
}

func (b Block) IsAir() bool {
	return b.Material == nil || b.Material.Traits.Has(voxel.Air)
}

func (b Block) Traits() voxel.Traits {
	if b.Material == nil {
		return voxel.Air | voxel.Replaceable
	}
	traits := b.Material.Traits
	if b.Upper {
		traits |= voxel.UpperHalf
	}
	return traits
}

func (b Block) Properties() map[string]string {
	props := b.State.Properties()
	if b.Material != nil && b.Material.Traits.Has(voxel.Waterloggable) {
		if b.Waterlogged {
			props["waterlogged"] = "true"
		} else {
			props["waterlogged"] = "false"
		}
	}
	if b.Material != nil && b.Material.Bisected {
		if b.Upper {
			props["half"] = "upper"
		} else {
			props["half"] = "lower"
		}
	}
	return props
}

func (b Block) String() string {
	return FormatBlock(b)
}

// World is a sparse voxel world. Unset cells are air. It is safe for
// concurrent use; the tools themselves expect to run on one goroutine.
type World struct {
	lock    sync.RWMutex
	library *BlockLibrary
	blocks  map[voxel.Int3]Block
	actors  []*Actor
}

func NewWorld(library *BlockLibrary) *World {
	return &World{
		library: library,
		blocks:  make(map[voxel.Int3]Block),
	}
}

func (w *World) Library() *BlockLibrary {
	return w.library
}

func (w *World) Block(pos voxel.Int3) Block {
	w.lock.RLock()
	defer w.lock.RUnlock()
	if b, ok := w.blocks[pos]; ok {
		return b
	}
	return Block{Material: w.library.Air()}
}

func (w *World) SetBlock(pos voxel.Int3, b Block) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if b.IsAir() {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = b
}

// SetMaterial places a material in its default orientation. Bisected
// materials also fill the cell above.
func (w *World) SetMaterial(pos voxel.Int3, m *Material) {
	w.SetBlock(pos, Block{Material: m, State: orient.DefaultState(m.Kind)})
	if m.Bisected {
		w.SetBlock(pos.Add(voxel.Int3{Y: 1}), Block{Material: m, State: orient.DefaultState(m.Kind), Upper: true})
	}
}

func (w *World) Traits(pos voxel.Int3) voxel.Traits {
	return w.Block(pos).Traits()
}

// RayTrace casts from start along direction and stops at the first block that
// is neither replaceable nor fluid.
func (w *World) RayTrace(start, direction mgl64.Vec3, maxDistance float64) util.HitInfo3D {
	return rayTrace(w.Traits, start, direction, maxDistance)
}

func rayTrace(traits func(voxel.Int3) voxel.Traits, start, direction mgl64.Vec3, maxDistance float64) util.HitInfo3D {
	if direction.Len() == 0 {
		return util.HitInfo3D{}
	}
	end := start.Add(direction.Normalize().Mul(maxDistance))
	return util.DDARaycast(start, end, func(x, y, z int32) bool {
		return traits(voxel.Int3{X: x, Y: y, Z: z}).StopsRay()
	})
}

func (w *World) AddActor(a *Actor) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.actors = append(w.actors, a)
}

func (w *World) Actors() []*Actor {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return append([]*Actor(nil), w.actors...)
}

func (w *World) Actor(name string) (*Actor, bool) {
	for _, a := range w.Actors() {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Positions returns every non-air cell in x, y, z order.
func (w *World) Positions() []voxel.Int3 {
	w.lock.RLock()
	positions := make([]voxel.Int3, 0, len(w.blocks))
	for pos := range w.blocks {
		positions = append(positions, pos)
	}
	w.lock.RUnlock()
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return positions
}

// replaceView is the world as the trowel sees it: materials on the configured
// replace list count as replaceable.
type replaceView struct {
	world  *World
	trowel config.TrowelConfig
}

func (v replaceView) Traits(pos voxel.Int3) voxel.Traits {
	b := v.world.Block(pos)
	traits := b.Traits()
	if b.Material != nil && v.trowel.CanReplaceMaterial(b.Material.Name) {
		traits |= voxel.Replaceable
	}
	return traits
}

func (v replaceView) RayTrace(start, direction mgl64.Vec3, maxDistance float64) util.HitInfo3D {
	return rayTrace(v.Traits, start, direction, maxDistance)
}
