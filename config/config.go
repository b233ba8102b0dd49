package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the root of the tool configuration.
type Config struct {
	General General `yaml:"general"`
	Tools   Tools   `yaml:"tools"`
}

type General struct {
	// Debug switches the tools' decision traces on.
	Debug        bool         `yaml:"debug"`
	Restrictions Restrictions `yaml:"restrictions"`
}

type Restrictions struct {
	GameModes map[string]GameModeRule `yaml:"gamemode"`
}

type GameModeRule struct {
	AllowUse bool `yaml:"allow_use"`
}

type Tools struct {
	File   FileConfig   `yaml:"file"`
	Trowel TrowelConfig `yaml:"trowel"`
}

type FileConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Features Features `yaml:"features"`
	// Excluded lists materials the file never edits.
	Excluded []string `yaml:"excluded"`
	// ExcludedPatterns excludes every material whose name contains one of them.
	ExcludedPatterns []string `yaml:"excluded_patterns"`
}

// Features toggles the edit behaviour per block category. A disabled
// category makes its blocks behave like the next category they qualify for.
type Features struct {
	MultipleFacing bool `yaml:"multiple_facing"`
	Walls          bool `yaml:"walls"`
	Stairs         bool `yaml:"stairs"`
	Directional    bool `yaml:"directional"`
	AxisRotation   bool `yaml:"axis_rotation"`
	Slabs          bool `yaml:"slabs"`
}

type TrowelConfig struct {
	Enabled bool `yaml:"enabled"`
	// CanReplace lists materials besides air and fluids a placement may overwrite.
	CanReplace []string `yaml:"can_replace"`
}

const (
	GameModeSurvival  = "survival"
	GameModeCreative  = "creative"
	GameModeAdventure = "adventure"
	GameModeSpectator = "spectator"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		General: General{
			Restrictions: Restrictions{
				GameModes: map[string]GameModeRule{
					GameModeCreative:  {AllowUse: true},
					GameModeAdventure: {AllowUse: false},
					GameModeSpectator: {AllowUse: false},
				},
			},
		},
		Tools: Tools{
			File: FileConfig{
				Enabled: true,
				Features: Features{
					MultipleFacing: true,
					Walls:          true,
					Stairs:         true,
					Directional:    true,
					AxisRotation:   true,
					Slabs:          true,
				},
				Excluded: []string{
					"lever", "tripwire_hook", "end_portal_frame", "ladder",
					"glow_lichen", "sculk_vein", "crafting_table", "anvil",
					"bell", "repeater", "comparator", "rail", "powered_rail",
				},
				ExcludedPatterns: []string{"torch", "door", "vine", "mushroom_block", "portal", "button", "pressure_plate", "_bed"},
			},
			Trowel: TrowelConfig{
				Enabled: true,
				CanReplace: []string{
					"short_grass", "tall_grass", "fern", "large_fern", "dead_bush",
					"dandelion", "poppy", "snow", "seagrass",
				},
			},
		},
	}
}

// Load reads a YAML file on top of the defaults, so keys missing from the file
// keep their default value. An empty path falls back to OAKTOOLS_CONFIG and
// then to the defaults alone.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("OAKTOOLS_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// AllowsGameMode reports whether the tools may be used in a game mode. Modes
// without a rule are allowed.
func (c *Config) AllowsGameMode(mode string) bool {
	rule, ok := c.General.Restrictions.GameModes[strings.ToLower(mode)]
	if !ok {
		return true
	}
	return rule.AllowUse
}

// IsExcluded reports whether the file must leave a material alone.
func (f FileConfig) IsExcluded(material string) bool {
	material = strings.ToLower(material)
	for _, name := range f.Excluded {
		if strings.ToLower(name) == material {
			return true
		}
	}
	for _, pattern := range f.ExcludedPatterns {
		if pattern != "" && strings.Contains(material, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// CanReplaceMaterial reports whether the material is in the configured replace list.
func (t TrowelConfig) CanReplaceMaterial(material string) bool {
	material = strings.ToLower(material)
	for _, name := range t.CanReplace {
		if strings.ToLower(name) == material {
			return true
		}
	}
	return false
}

// Validate returns a warning per suspicious value. Warnings do not stop loading.
func Validate(c *Config) []string {
	var warnings []string
	for mode := range c.General.Restrictions.GameModes {
		switch strings.ToLower(mode) {
		case GameModeSurvival, GameModeCreative, GameModeAdventure, GameModeSpectator:
		default:
			warnings = append(warnings, "general.restrictions.gamemode contains unknown mode: "+mode)
		}
	}
	if c.Tools.File.Enabled && c.Tools.File.Features == (Features{}) {
		warnings = append(warnings, "tools.file is enabled but every feature is disabled")
	}
	for _, pattern := range c.Tools.File.ExcludedPatterns {
		if strings.TrimSpace(pattern) == "" {
			warnings = append(warnings, "tools.file.excluded_patterns contains an empty pattern")
		}
	}
	for _, name := range c.Tools.Trowel.CanReplace {
		if strings.TrimSpace(name) == "" {
			warnings = append(warnings, "tools.trowel.can_replace contains an empty entry")
		}
	}
	return warnings
}
