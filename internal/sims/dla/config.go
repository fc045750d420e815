package dla

import (
	"strconv"

	errgo "gopkg.in/errgo.v1"
)

// ErrInvalidConfig is the cause of every rejected parameter update.
var ErrInvalidConfig = errgo.New("invalid configuration")

// Params holds the sticking, walking and stopping rules of a run.
type Params struct {
	StickProb      float64
	MinColls       int
	DiagonalStick  bool
	DelNoStick     bool
	AttrSeparation int
	AttrStrength   float64
	EndNum         int
	DiagonalWalk   bool
	ResetColls     bool
	SpawnMargin    int
}

// Config controls the lattice size, seed and rules of the aggregation engine.
type Config struct {
	// Radius is the half-width R of the [-R, R] x [-R, R] domain.
	Radius int
	Seed   int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Radius: 150,
		Seed:   42,
		Params: Params{
			StickProb:      1,
			MinColls:       1,
			AttrSeparation: 0,
			AttrStrength:   0.5,
			EndNum:         2000,
			SpawnMargin:    5,
		},
	}
}

// Validate reports the first out of range field.
func (p Params) Validate() error {
	if err := checkStickProb(p.StickProb); err != nil {
		return err
	}
	if err := checkMinColls(p.MinColls); err != nil {
		return err
	}
	if err := checkAttrSeparation(p.AttrSeparation); err != nil {
		return err
	}
	if err := checkAttrStrength(p.AttrStrength); err != nil {
		return err
	}
	if err := checkEndNum(p.EndNum); err != nil {
		return err
	}
	return checkSpawnMargin(p.SpawnMargin)
}

func checkStickProb(v float64) error {
	if !(v >= 0 && v <= 1) {
		return errgo.WithCausef(nil, ErrInvalidConfig, "stick probability %v outside [0, 1]", v)
	}
	return nil
}

func checkMinColls(v int) error {
	if v < 1 {
		return errgo.WithCausef(nil, ErrInvalidConfig, "minimum collisions %d below 1", v)
	}
	return nil
}

func checkAttrSeparation(v int) error {
	if v < 0 {
		return errgo.WithCausef(nil, ErrInvalidConfig, "attraction separation %d is negative", v)
	}
	return nil
}

func checkAttrStrength(v float64) error {
	if !(v >= 0 && v <= 1) {
		return errgo.WithCausef(nil, ErrInvalidConfig, "attraction strength %v outside [0, 1]", v)
	}
	return nil
}

func checkEndNum(v int) error {
	if v < 1 {
		return errgo.WithCausef(nil, ErrInvalidConfig, "end particle count %d below 1", v)
	}
	return nil
}

func checkSpawnMargin(v int) error {
	if v < 2 {
		return errgo.WithCausef(nil, ErrInvalidConfig, "spawn margin %d below 2", v)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out of range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overlays recognised keys from cfg onto c.
func ApplyMap(c *Config, cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["stick_prob"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && checkStickProb(parsed) == nil {
			c.Params.StickProb = parsed
		}
	}
	if v, ok := cfg["min_colls"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && checkMinColls(parsed) == nil {
			c.Params.MinColls = parsed
		}
	}
	if v, ok := cfg["diagonal_stick"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DiagonalStick = parsed
		}
	}
	if v, ok := cfg["del_no_stick"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DelNoStick = parsed
		}
	}
	if v, ok := cfg["attr_separation"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && checkAttrSeparation(parsed) == nil {
			c.Params.AttrSeparation = parsed
		}
	}
	if v, ok := cfg["attr_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && checkAttrStrength(parsed) == nil {
			c.Params.AttrStrength = parsed
		}
	}
	if v, ok := cfg["end_num"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && checkEndNum(parsed) == nil {
			c.Params.EndNum = parsed
		}
	}
	if v, ok := cfg["diagonal_walk"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DiagonalWalk = parsed
		}
	}
	if v, ok := cfg["reset_colls"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.ResetColls = parsed
		}
	}
	if v, ok := cfg["spawn_margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && checkSpawnMargin(parsed) == nil {
			c.Params.SpawnMargin = parsed
		}
	}
}
