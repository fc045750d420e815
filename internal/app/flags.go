package app

import (
	"flag"
	"fmt"
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Preset   string
	Scale    int
	TPS      int
	Seed     int64
	Radius   int
	Dir      string
	HUDWidth int
	Sound    bool
	Verbose  bool
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "classic", Scale: 3, TPS: 60, Seed: 42, Radius: 150, Dir: ".", HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "rule preset to start from")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.Radius, "radius", c.Radius, "lattice half-width")
	fs.StringVar(&c.Dir, "dir", c.Dir, "directory for fractDim<N>.csv output")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "chime when a particle sticks")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	fs.Var(&c.Set, "set", "override a rule as key=value (repeatable)")
}

// Overrides merges radius, seed and the -set pairs into a preset config map.
func (c *Config) Overrides() map[string]string {
	m := map[string]string{
		"radius": fmt.Sprint(c.Radius),
		"seed":   fmt.Sprint(c.Seed),
	}
	for k, v := range c.Set {
		m[k] = v
	}
	return m
}

// KVList collects repeated key=value flags.
type KVList map[string]string

func (kv *KVList) String() string {
	if kv == nil || *kv == nil {
		return ""
	}
	parts := make([]string, 0, len(*kv))
	for k, v := range *kv {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (kv *KVList) Set(s string) error {
	if *kv == nil {
		*kv = KVList{}
	}
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return errgo.Newf("expected key=value, got %q", s)
	}
	(*kv)[key] = strings.TrimSpace(value)
	return nil
}
