package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

// Presets are named starting points. Stiffer rods need a finer dt to
// stay inside the integrator's stability region, and each preset scales
// the snapshot exaggeration to keep the deformation visible.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"soft": preset(func(c *Config) {
		c.ElasticModulus = 5e7
		c.Scaling = 5e4
	}),
	"stiff": preset(func(c *Config) {
		c.ElasticModulus = 2e11
		c.Dt = 0.000002
		c.Scaling = 2e8
	}),
	"heavy": preset(func(c *Config) {
		c.Mass = 1.0
		c.SimulationTime = 0.2
	}),
	"undamped": preset(func(c *Config) {
		c.Damping = 0
		c.SimulationTime = 0.1
	}),
	"long": preset(func(c *Config) {
		c.SimulationTime = 0.5
		c.Damping = 0.2
	}),
}

// GetPreset returns a private copy of the named preset, or nil when the
// name is unknown. Copying keeps flag overrides from leaking back into
// the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
