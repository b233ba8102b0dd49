package game

import "github.com/memmaker/oaktools/engine/voxel"

// Guard decides whether an actor may build at a position, e.g. for region
// protection.
type Guard interface {
	CanBuild(actor *Actor, pos voxel.Int3) bool
}

type GuardFunc func(actor *Actor, pos voxel.Int3) bool

func (f GuardFunc) CanBuild(actor *Actor, pos voxel.Int3) bool {
	return f(actor, pos)
}

func allowed(g Guard, actor *Actor, pos voxel.Int3) bool {
	return g == nil || g.CanBuild(actor, pos)
}

// EditEvent is fired after the file changed a block. Cancelling it restores
// the previous block.
type EditEvent struct {
	Actor *Actor
	Pos   voxel.Int3
	Old   Block
	New   Block

	cancelled bool
}

func (e *EditEvent) Cancel() {
	e.cancelled = true
}

func (e *EditEvent) Cancelled() bool {
	return e.cancelled
}

// PlaceEvent is fired after the trowel placed a block. Cancelling it restores
// the replaced block.
type PlaceEvent struct {
	Actor    *Actor
	Pos      voxel.Int3
	Replaced Block
	Placed   Block

	cancelled bool
}

func (e *PlaceEvent) Cancel() {
	e.cancelled = true
}

func (e *PlaceEvent) Cancelled() bool {
	return e.cancelled
}

type EditListener func(*EditEvent)

type PlaceListener func(*PlaceEvent)
