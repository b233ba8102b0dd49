package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/memmaker/oaktools/config"
	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/placement"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/engine/voxel"
)

const (
	OutcomePlaced     = "placed"
	OutcomeDisabled   = "disabled"
	OutcomeNoFeed     = "no_feed"
	OutcomeRejected   = "rejected"
	OutcomeObstructed = "obstructed"
	OutcomeDenied     = "denied"
	OutcomeVetoed     = "vetoed"
)

type PlaceResult struct {
	Outcome    string
	Placed     bool
	Cancel     bool
	Reason     string
	Resolution placement.Resolution
	Replaced   Block
	Block      Block
}

// Trowel places a random block from the actor's feed, oriented against the
// surface it is placed on.
type Trowel struct {
	Config  *config.Config
	Guard   Guard
	Metrics *Metrics
	Rand    *rand.Rand

	listeners []PlaceListener
}

func NewTrowel(cfg *config.Config) *Trowel {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Trowel{Config: cfg, Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// OnPlace registers a listener that sees every placement and may veto it.
func (t *Trowel) OnPlace(l PlaceListener) {
	t.listeners = append(t.listeners, l)
}

// Feed resolves material names to the placeable materials among them.
func Feed(lib *BlockLibrary, names []string) []*Material {
	var feed []*Material
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if m, ok := lib.Get(name); ok && m.Placeable() {
			feed = append(feed, m)
		}
	}
	return feed
}

type cellChange struct {
	pos voxel.Int3
	old Block
}

// Place puts one block from feed next to or into the clicked block.
func (t *Trowel) Place(w *World, actor *Actor, click placement.Click, feed []*Material) PlaceResult {
	result := t.place(w, actor, click, feed)
	t.Metrics.placement(result.Outcome)
	if result.Placed {
		util.LogPlacementDebug("placed block",
			"actor", actor.Name, "pos", result.Resolution.Target, "block", result.Block,
			"basis", result.Resolution.Basis)
	} else {
		util.LogPlacementDebug("placement skipped", "actor", actor.Name, "reason", result.Reason)
	}
	return result
}

func (t *Trowel) place(w *World, actor *Actor, click placement.Click, feed []*Material) PlaceResult {
	if !t.Config.Tools.Trowel.Enabled {
		return PlaceResult{Outcome: OutcomeDisabled, Reason: "trowel disabled"}
	}
	if !t.Config.AllowsGameMode(actor.GameMode) {
		return PlaceResult{Outcome: OutcomeDisabled, Reason: "game mode " + actor.GameMode + " may not use the trowel"}
	}
	if len(feed) == 0 {
		return PlaceResult{Outcome: OutcomeNoFeed, Cancel: true, Reason: "no placeable blocks"}
	}
	material := feed[t.Rand.Intn(len(feed))]

	view := replaceView{world: w, trowel: t.Config.Tools.Trowel}
	res, ok := placement.Resolve(view, click, actor)
	if !ok {
		return PlaceResult{Outcome: OutcomeRejected, Reason: "target not replaceable"}
	}
	result := PlaceResult{Resolution: res, Cancel: true}
	target := res.Target
	above := target.Add(voxel.Int3{Y: 1})
	if material.Bisected && !view.Traits(above).Has(voxel.Replaceable) {
		result.Outcome, result.Reason = OutcomeRejected, "no room for the upper half"
		return result
	}

	replaced := w.Block(target)
	placed := Block{
		Material: material,
		State:    orient.PlacementState(material.Kind, res.Face, res.Point, actor.Facing()),
	}
	placed.Waterlogged = replaced.Material != nil && replaced.Material.Name == "water" &&
		material.Traits.Has(voxel.Waterloggable)
	result.Replaced, result.Block = replaced, placed

	if material.Traits.Has(voxel.Solid) && obstructed(w, util.NewBlockAABB(target)) {
		result.Outcome, result.Reason = OutcomeObstructed, "an actor is in the way"
		return result
	}
	if !allowed(t.Guard, actor, target) {
		result.Outcome, result.Reason = OutcomeDenied, "build denied"
		return result
	}

	changes := []cellChange{{target, replaced}}
	w.SetBlock(target, placed)
	if material.Bisected {
		changes = append(changes, cellChange{above, w.Block(above)})
		upper := placed
		upper.Upper = true
		w.SetBlock(above, upper)
	} else if replaced.Material != nil && replaced.Material.Bisected && !replaced.Upper {
		// the upper half of a replaced tall plant goes with it
		if top := w.Block(above); top.Upper && top.Material == replaced.Material {
			changes = append(changes, cellChange{above, top})
			w.SetBlock(above, Block{})
		}
	}

	event := &PlaceEvent{Actor: actor, Pos: target, Replaced: replaced, Placed: placed}
	for _, l := range t.listeners {
		l(event)
	}
	if event.Cancelled() {
		for i := len(changes) - 1; i >= 0; i-- {
			w.SetBlock(changes[i].pos, changes[i].old)
		}
		result.Outcome, result.Reason = OutcomeVetoed, "vetoed"
		return result
	}
	result.Outcome, result.Placed = OutcomePlaced, true
	return result
}

func obstructed(w *World, box util.AABB) bool {
	for _, a := range w.Actors() {
		if box.Intersects(a.Hitbox()) {
			return true
		}
	}
	return false
}
