package dla

import "sort"

// Factory constructs an engine using an optional flag-style configuration map.
type Factory func(cfg map[string]string) *Engine

var presets = map[string]Factory{}

// Register adds an engine factory under the provided preset name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available presets.
func Presets() map[string]Factory {
	return presets
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func registerPreset(name string, tweak func(*Params)) {
	Register(name, func(cfg map[string]string) *Engine {
		c := DefaultConfig()
		tweak(&c.Params)
		ApplyMap(&c, cfg)
		return NewWithConfig(c)
	})
}

func init() {
	registerPreset("classic", func(*Params) {})
	registerPreset("diagonal", func(p *Params) { p.DiagonalStick = true })
	registerPreset("sticky", func(p *Params) { p.StickProb = 0.2 })
	registerPreset("patient", func(p *Params) { p.MinColls = 3 })
	registerPreset("attract", func(p *Params) { p.AttrSeparation = 5 })
}
