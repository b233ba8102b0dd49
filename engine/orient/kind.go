package orient

import "github.com/memmaker/oaktools/engine/voxel"

// Kind describes what a block type allows. Faces is the legal facing set for
// stairs and directional blocks and the set of toggleable sides for multiple
// facing blocks. An empty Axes set accepts every axis.
type Kind struct {
	Caps  Capability
	Faces voxel.FaceSet
	Axes  voxel.AxisSet
}

func (k Kind) Has(c Capability) bool {
	return k.Caps&c != 0
}

// Without drops capabilities, so the block falls through to the next category.
func (k Kind) Without(c Capability) Kind {
	k.Caps &^= c
	return k
}

func (k Kind) Category() Category {
	return Classify(k)
}

// Convenience constructors for the common block families.

func StairsKind() Kind {
	return Kind{Caps: CanStairs | CanFace, Faces: voxel.HorizontalFaceSet}
}

func SlabKind() Kind {
	return Kind{Caps: CanSlab}
}

func AxisKind(axes ...voxel.Axis) Kind {
	return Kind{Caps: CanAxis, Axes: voxel.NewAxisSet(axes...)}
}

func DirectionalKind(faces voxel.FaceSet) Kind {
	return Kind{Caps: CanFace, Faces: faces}
}

func MultiFacingKind(faces voxel.FaceSet) Kind {
	return Kind{Caps: CanMultiFace, Faces: faces}
}

func WallKind() Kind {
	return Kind{Caps: CanWall}
}
