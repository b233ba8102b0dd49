package orient

import (
	"sort"
	"strings"

	"github.com/memmaker/oaktools/engine/voxel"
	"github.com/pkg/errors"
)

// Properties renders the state as vanilla block state properties.
func (s State) Properties() map[string]string {
	props := make(map[string]string)
	switch s.Category {
	case MultiFacing:
		for _, side := range voxel.HorizontalFaces {
			if s.Faces.Has(side) {
				props[side.String()] = "true"
			} else {
				props[side.String()] = "false"
			}
		}
	case Wall:
		for _, side := range voxel.HorizontalFaces {
			props[side.String()] = s.WallAt(side).String()
		}
	case Stairs:
		props["facing"] = s.Facing.String()
		props["half"] = s.Half.String()
		props["shape"] = s.Shape.String()
	case Directional:
		props["facing"] = s.Facing.String()
	case AxisAligned:
		props["axis"] = s.Axis.String()
	case Slab:
		props["type"] = s.Slab.String()
	}
	return props
}

// ParseProperties builds the state of a block of kind k from vanilla
// properties. Missing properties keep their default.
func ParseProperties(k Kind, props map[string]string) (State, error) {
	s := DefaultState(k)
	for key, value := range props {
		value = strings.ToLower(value)
		var err error
		switch s.Category {
		case MultiFacing:
			err = s.parseMultiFacing(key, value)
		case Wall:
			err = s.parseWall(key, value)
		case Stairs:
			err = s.parseStairs(k, key, value)
		case Directional:
			if key == "facing" {
				s.Facing, err = parseFacing(k, value)
			}
		case AxisAligned:
			if key == "axis" {
				s.Axis, err = voxel.ParseAxis(value)
			}
		case Slab:
			if key == "type" {
				s.Slab, err = parseSlabType(value)
			}
		}
		if err != nil {
			return s, errors.Wrapf(err, "property %s", key)
		}
	}
	return s, nil
}

func (s *State) parseMultiFacing(key, value string) error {
	side, err := voxel.ParseBlockFace(key)
	if err != nil || !side.IsHorizontal() {
		return nil
	}
	switch value {
	case "true":
		s.Faces = s.Faces.With(side)
	case "false":
		s.Faces = s.Faces.Without(side)
	default:
		return errors.Errorf("expected true or false but got %q", value)
	}
	return nil
}

func (s *State) parseWall(key, value string) error {
	side, err := voxel.ParseBlockFace(key)
	if err != nil || !side.IsHorizontal() {
		return nil
	}
	for i, name := range wallHeightNames {
		if name == value {
			s.Walls[side] = WallHeight(i)
			return nil
		}
	}
	return errors.Errorf("unknown wall height %q", value)
}

// parseFacing reads a facing and checks it against the legal faces of k.
func parseFacing(k Kind, value string) (voxel.BlockFace, error) {
	f, err := voxel.ParseBlockFace(value)
	if err != nil {
		return f, err
	}
	if !k.Faces.Empty() && !k.Faces.Has(f) {
		return f, errors.Errorf("facing %s is not one of %s", f, k.Faces)
	}
	return f, nil
}

func (s *State) parseStairs(k Kind, key, value string) error {
	var err error
	switch key {
	case "facing":
		s.Facing, err = parseFacing(k, value)
		if err == nil && !s.Facing.IsHorizontal() {
			err = errors.Errorf("stairs cannot face %s", s.Facing)
		}
	case "half":
		switch value {
		case "top":
			s.Half = Top
		case "bottom":
			s.Half = Bottom
		default:
			err = errors.Errorf("unknown half %q", value)
		}
	case "shape":
		err = errors.Errorf("unknown stairs shape %q", value)
		for i, name := range shapeNames {
			if name == value {
				s.Shape = StairsShape(i)
				err = nil
				break
			}
		}
	}
	return err
}

func parseSlabType(value string) (SlabType, error) {
	for i, name := range slabNames {
		if name == value {
			return SlabType(i), nil
		}
	}
	return SlabBottom, errors.Errorf("unknown slab type %q", value)
}

// FormatBlockState renders name[key=value,...] with sorted keys.
func FormatBlockState(name string, props map[string]string) string {
	if len(props) == 0 {
		return name
	}
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = key + "=" + props[key]
	}
	return name + "[" + strings.Join(pairs, ",") + "]"
}

// ParseBlockState is the inverse of FormatBlockState.
func ParseBlockState(blockState string) (string, map[string]string, error) {
	blockState = strings.TrimSpace(blockState)
	open := strings.IndexByte(blockState, '[')
	if open < 0 {
		return blockState, map[string]string{}, nil
	}
	if !strings.HasSuffix(blockState, "]") {
		return "", nil, errors.Errorf("unterminated block state %q", blockState)
	}
	name := blockState[:open]
	body := blockState[open+1 : len(blockState)-1]
	props := make(map[string]string)
	if body == "" {
		return name, props, nil
	}
	for _, pair := range strings.Split(body, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return "", nil, errors.Errorf("malformed property %q in %q", pair, blockState)
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return name, props, nil
}
