// Package orient holds the block orientation rules shared by the edit tool and
// the placement tool.
//
// Everything here is a pure function over small value types. A block type is
// described by a Kind (its orientation capabilities plus the faces and axes it
// accepts), its current orientation by a State. Callers read a State, run one
// transition and write the result back; nothing is retained between calls.
package orient

// Capability is one orientation related property a block type exposes.
type Capability uint8

const (
	CanMultiFace Capability = 1 << iota
	CanWall
	CanStairs
	CanFace
	CanAxis
	CanSlab
)

// Category is the orientation shape kind a block is edited and placed as.
type Category uint8

const (
	None Category = iota
	MultiFacing
	Wall
	Stairs
	Directional
	AxisAligned
	Slab
)

var categoryNames = [...]string{"none", "multiple_facing", "wall", "stairs", "directional", "axis", "slab"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "invalid"
}

// classifyOrder is the first-match priority used by Classify.
var classifyOrder = []struct {
	capability Capability
	category   Category
}{
	{CanMultiFace, MultiFacing},
	{CanWall, Wall},
	{CanStairs, Stairs},
	{CanFace, Directional},
	{CanAxis, AxisAligned},
	{CanSlab, Slab},
}

// Classify maps a block's capabilities to exactly one category. Stairs also
// expose a facing, which is why the order matters.
func Classify(k Kind) Category {
	for _, entry := range classifyOrder {
		if k.Caps&entry.capability != 0 {
			return entry.category
		}
	}
	return None
}

// CapabilityOf is the capability that makes a block classify as c.
func CapabilityOf(c Category) Capability {
	for _, entry := range classifyOrder {
		if entry.category == c {
			return entry.capability
		}
	}
	return 0
}
