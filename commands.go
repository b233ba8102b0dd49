package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/placement"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/memmaker/oaktools/game"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// worldOpts selects the world a command works on.
type worldOpts struct {
	scene    string
	snapshot string
}

func (o *worldOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.scene, "scene", "", "YAML scene to load")
	cmd.Flags().StringVar(&o.snapshot, "snapshot", "", "NBT snapshot to load")
}

func (o worldOpts) load() (*game.World, error) {
	lib := game.NewDefaultLibrary()
	switch {
	case o.scene != "" && o.snapshot != "":
		return nil, errors.New("use either --scene or --snapshot")
	case o.scene != "":
		return game.LoadScene(lib, o.scene)
	case o.snapshot != "":
		return game.LoadSnapshot(lib, o.snapshot)
	}
	return nil, errors.New("one of --scene or --snapshot is required")
}

// clickOpts describe one interaction with a block.
type clickOpts struct {
	worldOpts
	actor string
	pos   string
	face  string
	point string
	sneak bool
	out   string
}

func (o *clickOpts) register(cmd *cobra.Command) {
	o.worldOpts.register(cmd)
	cmd.Flags().StringVar(&o.actor, "actor", "", "acting actor (defaults to the first actor of the scene)")
	cmd.Flags().StringVar(&o.pos, "pos", "", "clicked block as x,y,z")
	cmd.Flags().StringVar(&o.face, "face", "up", "clicked face")
	cmd.Flags().StringVar(&o.point, "point", "", "exact click position in world space as x,y,z")
	cmd.Flags().BoolVar(&o.sneak, "sneak", false, "act while sneaking")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write the resulting world as a snapshot")
	_ = cmd.MarkFlagRequired("pos")
}

func (o clickOpts) click() (placement.Click, error) {
	pos, err := voxel.ParseInt3(o.pos)
	if err != nil {
		return placement.Click{}, errors.Wrap(err, "--pos")
	}
	face, err := voxel.ParseBlockFace(o.face)
	if err != nil {
		return placement.Click{}, errors.Wrap(err, "--face")
	}
	click := placement.Click{Pos: pos, Face: face}
	if o.point != "" {
		click.Point, err = parseVec3(o.point)
		if err != nil {
			return placement.Click{}, errors.Wrap(err, "--point")
		}
		click.HasPoint = true
	}
	return click, nil
}

// actorFor picks the acting actor. A scene without actors gets one standing
// south of the clicked block looking north.
func (o clickOpts) actorFor(w *game.World, click placement.Click) (*game.Actor, error) {
	if o.actor != "" {
		a, ok := w.Actor(o.actor)
		if !ok {
			return nil, errors.Errorf("no actor named %q", o.actor)
		}
		return withSneak(a, o.sneak), nil
	}
	if actors := w.Actors(); len(actors) > 0 {
		return withSneak(actors[0], o.sneak), nil
	}
	feet := click.Pos.ToVec3().Add(mgl64.Vec3{0.5, 0, 3.5})
	return withSneak(game.NewActor(game.DefaultActor, feet, 180, 0), o.sneak), nil
}

func withSneak(a *game.Actor, sneak bool) *game.Actor {
	if sneak {
		a.Sneaking = true
	}
	return a
}

func (o clickOpts) prepare() (*game.World, *game.Actor, placement.Click, error) {
	click, err := o.click()
	if err != nil {
		return nil, nil, click, err
	}
	w, err := o.load()
	if err != nil {
		return nil, nil, click, err
	}
	actor, err := o.actorFor(w, click)
	if err != nil {
		return nil, nil, click, err
	}
	return w, actor, click, nil
}

func (o clickOpts) save(w *game.World) error {
	if o.out == "" {
		return nil
	}
	return game.SaveSnapshot(w, o.out)
}

func newEditCmd(a *app) *cobra.Command {
	var opts clickOpts
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Use the file on a block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, actor, click, err := opts.prepare()
			if err != nil {
				return err
			}
			file := game.NewFileTool(a.cfg)
			file.Metrics = a.metrics

			var result game.EditResult
			err = a.call(func() error {
				result = file.Use(w, actor, click)
				return nil
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			human := fmt.Sprintf("%s: %s unchanged (%s)", click.Pos, result.Old, result.Reason)
			if result.Changed {
				human = fmt.Sprintf("%s: %s -> %s", click.Pos, result.Old, result.New)
			}
			p.line(human,
				"pos", click.Pos.String(),
				"handled", strconv.FormatBool(result.Handled),
				"changed", strconv.FormatBool(result.Changed),
				"category", result.Category.String(),
				"old", result.Old.String(),
				"new", result.New.String(),
				"reason", result.Reason)
			return opts.save(w)
		},
	}
	opts.register(cmd)
	return cmd
}

func newPlaceCmd(a *app) *cobra.Command {
	var opts clickOpts
	var feed []string
	var seed int64
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Use the trowel against a block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, actor, click, err := opts.prepare()
			if err != nil {
				return err
			}
			trowel := game.NewTrowel(a.cfg)
			trowel.Metrics = a.metrics
			if seed != 0 {
				trowel.Rand.Seed(seed)
			}

			var result game.PlaceResult
			err = a.call(func() error {
				result = trowel.Place(w, actor, click, game.Feed(w.Library(), feed))
				return nil
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			res := result.Resolution
			human := fmt.Sprintf("not placed: %s", result.Reason)
			if result.Placed {
				human = fmt.Sprintf("%s: placed %s against %s face of %s", res.Target, result.Block, res.Face, res.Reference)
			}
			p.line(human,
				"outcome", result.Outcome,
				"target", res.Target.String(),
				"reference", res.Reference.String(),
				"face", res.Face.String(),
				"basis", res.Basis.String(),
				"point", res.Source.String(),
				"block", result.Block.String(),
				"reason", result.Reason)
			return opts.save(w)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringSliceVar(&feed, "feed", nil, "materials to pick from")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the material pick")
	_ = cmd.MarkFlagRequired("feed")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	var opts worldOpts
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the blocks and actors of a world",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.load()
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			file := game.NewFileTool(a.cfg)
			for _, pos := range w.Positions() {
				b := w.Block(pos)
				category := file.EffectiveKind(b.Material).Category()
				p.line(fmt.Sprintf("%-14s %-16s %s", pos, category, b),
					"pos", pos.String(), "category", category.String(), "block", b.String())
			}
			for _, actor := range w.Actors() {
				p.line(fmt.Sprintf("actor %s facing %s, pitch %.1f, %s", actor, actor.Facing(), actor.Pitch(), actor.GameMode),
					"actor", actor.Name, "facing", actor.Facing().String(),
					"pitch", strconv.FormatFloat(actor.Pitch(), 'f', 1, 64), "gamemode", actor.GameMode)
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newSnapshotCmd(a *app) *cobra.Command {
	var scene, out string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Convert a YAML scene into an NBT snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := worldOpts{scene: scene}.load()
			if err != nil {
				return err
			}
			return a.call(func() error {
				return game.SaveSnapshot(w, out)
			})
		},
	}
	cmd.Flags().StringVar(&scene, "scene", "", "YAML scene to convert")
	cmd.Flags().StringVarP(&out, "out", "o", "", "snapshot file to write")
	_ = cmd.MarkFlagRequired("scene")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func parseVec3(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, errors.Errorf("expected x,y,z but got %q", s)
	}
	var v mgl64.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, errors.Wrapf(err, "coordinate %d of %q", i, s)
		}
		v[i] = f
	}
	return v, nil
}
