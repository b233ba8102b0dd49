package game

import (
	"github.com/memmaker/oaktools/config"
	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/placement"
	"github.com/memmaker/oaktools/engine/util"
)

// EditResult reports what a use of the file did. Handled is false when the
// file ignored the click and the host should process it normally. Cancel
// asks the host to suppress its own handling of the click.
type EditResult struct {
	Handled  bool
	Cancel   bool
	Changed  bool
	Reason   string
	Category orient.Category
	Old      Block
	New      Block
}

// FileTool rotates and reshapes existing blocks in place.
type FileTool struct {
	Config  *config.Config
	Guard   Guard
	Metrics *Metrics

	listeners []EditListener
}

func NewFileTool(cfg *config.Config) *FileTool {
	if cfg == nil {
		cfg = config.Default()
	}
	return &FileTool{Config: cfg}
}

// OnEdit registers a listener that sees every change and may veto it.
func (f *FileTool) OnEdit(l EditListener) {
	f.listeners = append(f.listeners, l)
}

// EffectiveKind is the kind the file edits a material as: disabled features
// remove their capability, so the block is handled as its next category.
func (f *FileTool) EffectiveKind(m *Material) orient.Kind {
	return maskFeatures(m.Kind, f.Config.Tools.File.Features)
}

func maskFeatures(k orient.Kind, features config.Features) orient.Kind {
	toggles := []struct {
		enabled    bool
		capability orient.Capability
	}{
		{features.MultipleFacing, orient.CanMultiFace},
		{features.Walls, orient.CanWall},
		{features.Stairs, orient.CanStairs},
		{features.Directional, orient.CanFace},
		{features.AxisRotation, orient.CanAxis},
		{features.Slabs, orient.CanSlab},
	}
	for _, toggle := range toggles {
		if !toggle.enabled {
			k = k.Without(toggle.capability)
		}
	}
	return k
}

// Use applies one edit to the clicked block.
func (f *FileTool) Use(w *World, actor *Actor, click placement.Click) EditResult {
	cfg := f.Config.Tools.File
	old := w.Block(click.Pos)
	result := EditResult{Old: old, New: old}

	if !cfg.Enabled {
		result.Reason = "file disabled"
		return result
	}
	if !f.Config.AllowsGameMode(actor.GameMode) {
		result.Reason = "game mode " + actor.GameMode + " may not use the file"
		return result
	}
	if old.IsAir() {
		result.Reason = "nothing to edit"
		return result
	}
	if old.Material.TileEntity || cfg.IsExcluded(old.Material.Name) {
		result.Reason = "excluded material"
		return result
	}

	result.Handled, result.Cancel = true, true
	kind := f.EffectiveKind(old.Material)
	result.Category = kind.Category()
	if result.Category == orient.None {
		result.Reason = "not modifiable"
		return result
	}
	if !allowed(f.Guard, actor, click.Pos) {
		result.Reason = "build denied"
		return result
	}

	changed, next := orient.TryEdit(kind, old.State, actor.Interaction(click))
	if !changed {
		result.Reason = "no change"
		return result
	}
	edited := old
	edited.State = next
	w.SetBlock(click.Pos, edited)

	event := &EditEvent{Actor: actor, Pos: click.Pos, Old: old, New: edited}
	for _, l := range f.listeners {
		l(event)
	}
	if event.Cancelled() {
		w.SetBlock(click.Pos, old)
		result.Reason = "vetoed"
		return result
	}

	result.Changed, result.New = true, edited
	f.Metrics.edit(result.Category.String())
	util.LogEditDebug("edited block",
		"actor", actor.Name, "pos", click.Pos, "category", result.Category,
		"old", old.State, "new", next)
	return result
}
