package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/orient"
	"github.com/memmaker/oaktools/engine/placement"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/engine/voxel"
)

const (
	EyeHeight    = 1.62
	ActorWidth   = 0.6
	ActorHeight  = 1.8
	DefaultActor = "player"
)

// Actor is a player using the tools.
type Actor struct {
	Name string
	// Position is the feet position.
	Position mgl64.Vec3
	// Yaw in degrees, 0 looks south and 90 looks west.
	Yaw float64
	// PitchDeg in degrees, positive values look down.
	PitchDeg float64
	Sneaking bool
	GameMode string
}

func NewActor(name string, feet mgl64.Vec3, yaw, pitch float64) *Actor {
	return &Actor{Name: name, Position: feet, Yaw: yaw, PitchDeg: pitch, GameMode: "creative"}
}

func (a *Actor) EyePosition() mgl64.Vec3 {
	return a.Position.Add(mgl64.Vec3{0, EyeHeight, 0})
}

func (a *Actor) Direction() mgl64.Vec3 {
	return util.DirectionFromRotation(a.Yaw, a.PitchDeg)
}

// Facing is the horizontal face the actor looks towards.
func (a *Actor) Facing() voxel.BlockFace {
	return voxel.HorizontalFaceFromDirection(a.Direction())
}

func (a *Actor) Pitch() float64 {
	return a.PitchDeg
}

func (a *Actor) Hitbox() util.AABB {
	return util.NewActorAABB(a.Position, ActorWidth, ActorHeight)
}

// Interaction converts a click into the block local geometry the orientation
// engine works with.
func (a *Actor) Interaction(click placement.Click) orient.Interaction {
	in := orient.Interaction{
		Face:      click.Face,
		HasPoint:  click.HasPoint,
		Facing:    a.Facing(),
		Eye:       a.EyePosition(),
		Direction: a.Direction(),
		Pitch:     a.PitchDeg,
		Sneaking:  a.Sneaking,
	}
	if click.HasPoint {
		in.Point = click.Point.Sub(click.Pos.ToVec3())
	}
	return in
}

func (a *Actor) String() string {
	return fmt.Sprintf("%s@%.2f,%.2f,%.2f", a.Name, a.Position.X(), a.Position.Y(), a.Position.Z())
}
