package sand

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the physical tunables for the falling-sand rules and the
// optional starting scene.
type Params struct {
	// LiquidEagerness scales how readily liquid spreads sideways.
	LiquidEagerness float64 `yaml:"liquid_eagerness"`
	// GranularEagerness scales how readily a destabilized pile sheds
	// grains sideways. Values near 1 shed rarely.
	GranularEagerness float64 `yaml:"granular_eagerness"`

	// FloorRows solid rows are laid along the bottom edge on reset.
	FloorRows int `yaml:"floor_rows"`
	// SandChance sprinkles loose grains above the floor on reset.
	SandChance float64 `yaml:"sand_chance"`
}

// Config controls the sand world dimensions, determinism and physics.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Scale is the cell-to-world factor used when mapping pointer
	// positions onto cells.
	Scale float64 `yaml:"scale"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration: a 1280x720 view at
// 8 pixels per cell.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 90,
		Scale:  8,
		Seed:   1337,
		Params: Params{
			LiquidEagerness:   5.0,
			GranularEagerness: 1.3,
			FloorRows:         0,
			SandChance:        0,
		},
	}
}

// Validate rejects configurations the engine cannot be built from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("sand: grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("sand: cell scale must be positive, got %v", c.Scale)
	}
	if c.Params.FloorRows < 0 || c.Params.FloorRows > c.Height {
		return fmt.Errorf("sand: floor rows %d outside [0,%d]", c.Params.FloorRows, c.Height)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparseable values keep the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["liquid_eagerness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.LiquidEagerness = parsed
		}
	}
	if v, ok := cfg["granular_eagerness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.GranularEagerness = parsed
		}
	}
	if v, ok := cfg["floor_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FloorRows = parsed
		}
	}
	if c.Params.FloorRows > c.Height {
		c.Params.FloorRows = c.Height
	}
	if v, ok := cfg["sand_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SandChance = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML file and applies it over the defaults, so
// partial files only override the keys they name.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
