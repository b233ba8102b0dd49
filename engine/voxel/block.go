package voxel

import "strings"

// Traits are the material properties placement and ray casting care about.
type Traits uint16

const (
	// Replaceable blocks may be overwritten by a placement. Only air and fluids
	// carry it on their own; configured flora gets it from the trowel's view.
	Replaceable Traits = 1 << iota
	// Solid blocks have a collision shape.
	Solid
	// FullCube blocks occupy the whole unit cube.
	FullCube
	// SlabShape marks single slabs.
	SlabShape
	// UpperHalf marks the top block of a two block tall plant.
	UpperHalf
	Fluid
	Waterloggable
	Air
	// Passable blocks have no collision and do not stop ray casts (plants).
	Passable
)

var traitNames = []struct {
	t    Traits
	name string
}{
	{Replaceable, "replaceable"},
	{Solid, "solid"},
	{FullCube, "full_cube"},
	{SlabShape, "slab"},
	{UpperHalf, "upper_half"},
	{Fluid, "fluid"},
	{Waterloggable, "waterloggable"},
	{Air, "air"},
	{Passable, "passable"},
}

func (t Traits) Has(flags Traits) bool {
	return t&flags == flags
}

func (t Traits) IsAir() bool {
	return t.Has(Air)
}

// StopsRay reports whether a ray cast that ignores fluids and passes through
// replaceable and passable blocks should stop at this block.
func (t Traits) StopsRay() bool {
	return !t.Has(Replaceable) && !t.Has(Fluid) && !t.Has(Air) && !t.Has(Passable)
}

// IsSupport reports whether the block can carry orientation math for a placement.
func (t Traits) IsSupport() bool {
	return t.Has(Solid) && !t.Has(Replaceable)
}

// Names lists the set traits in declaration order, as ParseTraits reads them.
func (t Traits) Names() []string {
	names := []string{}
	for _, tn := range traitNames {
		if t.Has(tn.t) {
			names = append(names, tn.name)
		}
	}
	return names
}

func (t Traits) String() string {
	return strings.Join(t.Names(), "|")
}

// ParseTraits reads a list of trait names as produced by String.
func ParseTraits(names []string) (Traits, bool) {
	var t Traits
	for _, name := range names {
		found := false
		for _, tn := range traitNames {
			if tn.name == strings.ToLower(strings.TrimSpace(name)) {
				t |= tn.t
				found = true
				break
			}
		}
		if !found {
			return t, false
		}
	}
	return t, true
}
