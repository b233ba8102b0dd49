package orient

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/stretchr/testify/assert"
)

func TestDetectOctantWithoutPoint(t *testing.T) {
	for _, face := range voxel.HorizontalFaces {
		o := DetectOctant(mgl64.Vec3{}, false, face, voxel.East)
		assert.Equal(t, face, o.Side)
		assert.False(t, o.HasCorner)
	}
	for _, face := range []voxel.BlockFace{voxel.Up, voxel.Down} {
		o := DetectOctant(mgl64.Vec3{}, false, face, voxel.West)
		assert.Equal(t, voxel.West, o.Side)
		assert.False(t, o.HasCorner)
	}
}

func TestDetectOctant(t *testing.T) {
	tests := []struct {
		name       string
		point      mgl64.Vec3
		clicked    voxel.BlockFace
		wantCorner Corner
		wantSide   voxel.BlockFace
		wantTop    bool
	}{
		{"top face south west", mgl64.Vec3{0.1, 0.99, 0.6}, voxel.Up, SW, voxel.West, true},
		{"top face north east", mgl64.Vec3{0.8, 0.99, 0.3}, voxel.Up, NE, voxel.East, true},
		{"bottom face", mgl64.Vec3{0.3, 0.0, 0.1}, voxel.Down, NW, voxel.North, false},
		{"exact middle leans south east", mgl64.Vec3{0.5, 0.5, 0.5}, voxel.Up, SE, voxel.South, true},
		{"axis tie picks z", mgl64.Vec3{0.25, 0.5, 0.75}, voxel.Up, SW, voxel.South, true},

		{"west face near edge stays west", mgl64.Vec3{0.0, 0.8, 0.9}, voxel.West, SW, voxel.West, true},
		{"west riser reaches east", mgl64.Vec3{0.5, 0.25, 0.2}, voxel.West, NE, voxel.North, false},
		{"east face forces east", mgl64.Vec3{0.25, 0.1, 0.1}, voxel.East, NE, voxel.North, false},
		{"east riser reaches west", mgl64.Vec3{0.5, 0.3, 0.9}, voxel.East, SW, voxel.South, false},
		{"north face stays north", mgl64.Vec3{0.9, 0.3, 0.0}, voxel.North, NE, voxel.North, false},
		{"north riser reaches south", mgl64.Vec3{0.9, 0.3, 0.5}, voxel.North, SE, voxel.East, false},
		{"south face stays south", mgl64.Vec3{0.2, 0.3, 1.0}, voxel.South, SW, voxel.South, false},
		{"south riser reaches north", mgl64.Vec3{0.2, 0.3, 0.45}, voxel.South, NW, voxel.West, false},
		{"reach through boundary is inclusive", mgl64.Vec3{0.3, 0.6, 0.9}, voxel.West, SE, voxel.South, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DetectOctant(tt.point, true, tt.clicked, voxel.North)
			assert.True(t, o.HasCorner)
			assert.Equal(t, tt.wantCorner, o.Corner, "corner")
			assert.Equal(t, tt.wantSide, o.Side, "side")
			assert.Equal(t, tt.wantTop, o.Top, "top")
		})
	}
}
