package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Saramando/263F/internal/dynamics"
)

const (
	DefaultInitialForce     = 0.3
	DefaultSimulationTime   = 0.05
	DefaultDt               = 0.0001
	DefaultLength           = 0.01
	DefaultArea             = 0.0000283
	DefaultElasticModulus   = 1.5e9
	DefaultDamping          = 1.0
	DefaultMass             = 0.1
	DefaultNumSides         = 8
	DefaultRadius           = 1.0
	DefaultScaling          = 1e6
	DefaultSnapshotInterval = 0.01
	DefaultIntegrator       = "symplectic"
)

// Config carries every knob of a run. It is assembled once at program
// start and treated as immutable afterwards.
type Config struct {
	InitialForce     float64 `yaml:"initial_force"`
	SimulationTime   float64 `yaml:"simulation_time"`
	Dt               float64 `yaml:"dt"`
	Length           float64 `yaml:"length"`
	Area             float64 `yaml:"area"`
	ElasticModulus   float64 `yaml:"elastic_modulus"`
	Damping          float64 `yaml:"damping_coefficient"`
	Mass             float64 `yaml:"mass"`
	NumSides         int     `yaml:"num_sides"`
	Radius           float64 `yaml:"radius"`
	Scaling          float64 `yaml:"scaling_factor"`
	SnapshotInterval float64 `yaml:"snapshot_interval_seconds"`
	Integrator       string  `yaml:"integrator"`
}

func DefaultConfig() *Config {
	return &Config{
		InitialForce:     DefaultInitialForce,
		SimulationTime:   DefaultSimulationTime,
		Dt:               DefaultDt,
		Length:           DefaultLength,
		Area:             DefaultArea,
		ElasticModulus:   DefaultElasticModulus,
		Damping:          DefaultDamping,
		Mass:             DefaultMass,
		NumSides:         DefaultNumSides,
		Radius:           DefaultRadius,
		Scaling:          DefaultScaling,
		SnapshotInterval: DefaultSnapshotInterval,
		Integrator:       DefaultIntegrator,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first fatal configuration error, checked before
// any computation starts.
func (c *Config) Validate() error {
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %v", c.Mass)
	}
	if c.Length <= 0 {
		return fmt.Errorf("length must be positive, got %v", c.Length)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", c.Dt)
	}
	if c.SimulationTime <= 0 {
		return fmt.Errorf("simulation_time must be positive, got %v", c.SimulationTime)
	}
	if c.NumSides < 3 {
		return fmt.Errorf("num_sides must be at least 3, got %d", c.NumSides)
	}
	if c.SnapshotInterval <= 0 {
		return fmt.Errorf("snapshot_interval_seconds must be positive, got %v", c.SnapshotInterval)
	}
	return nil
}

// TimeSteps is the trajectory sample count over the simulation window,
// rounded so windows that are not exact binary multiples of dt still
// land on the intended count.
func (c *Config) TimeSteps() int {
	return int(math.Round(c.SimulationTime / c.Dt))
}

// SnapshotEvery is the step interval between rendered frames, one frame
// per SnapshotInterval seconds of simulated time.
func (c *Config) SnapshotEvery() int {
	return int(math.Round(c.SnapshotInterval / c.Dt))
}

func (c *Config) RunConfig() dynamics.Config {
	return dynamics.Config{
		Dt:            c.Dt,
		Duration:      c.SimulationTime,
		ValidateState: true,
	}
}
