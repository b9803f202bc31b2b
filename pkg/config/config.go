// Package config provides the unified configuration system for Volley.
// It defines a single SimConfig structure that the simulation driver and
// CLI share, organized into logical sections:
//
//   - Pool: entity pool capacity and growth policy
//   - Entity: default flight parameters for spawned projectiles
//   - Simulation: frame rate, duration, and spawn pattern
//   - Observability: logging, metrics, and trace recording
//
// Example usage:
//
//	cfg := config.NewSimConfig("volley-demo")
//	cfg.Pool.InitialSize = 64
//	cfg.Simulation.TickRate = 120
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"time"

	"github.com/ajitpratap0/volley/pkg/projectile"
	"github.com/ajitpratap0/volley/pkg/spatial"
	"github.com/ajitpratap0/volley/pkg/volleyerrors"
)

// SimConfig is the single unified configuration structure for a simulation
// run. Sections have production-ready defaults from NewSimConfig; load a
// YAML file over them with Load and override individual fields from flags.
type SimConfig struct {
	// Name identifies the simulation run in logs and metrics labels.
	Name string `yaml:"name" json:"name"`

	// Pool controls entity pool capacity and growth policy.
	Pool PoolConfig `yaml:"pool" json:"pool"`

	// Entity holds default flight parameters for spawned projectiles.
	Entity EntityConfig `yaml:"entity" json:"entity"`

	// Simulation controls the frame loop and spawn pattern.
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`

	// Observability controls logging, metrics, and trace recording.
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
}

// PoolConfig contains the pool capacity and growth settings.
type PoolConfig struct {
	// InitialSize is the eager pre-construction count, also the base of the
	// growth step.
	InitialSize int `yaml:"initial_size" json:"initial_size"`
	// GrowthFactor is the fraction of InitialSize constructed on each
	// exhaustion event. The original policy grows by half the configured
	// increment; tune with care.
	GrowthFactor float64 `yaml:"growth_factor" json:"growth_factor"`
}

// EntityConfig contains the default flight parameters applied to spawned
// projectiles.
type EntityConfig struct {
	// Kind selects the projectile archetype.
	Kind string `yaml:"kind" json:"kind"`
	// Speed is the travel speed in world units per second.
	Speed float64 `yaml:"speed" json:"speed"`
	// ArcHeight is the peak vertical offset of the flight path.
	ArcHeight float64 `yaml:"arc_height" json:"arc_height"`
	// FollowPath enables facing derivation from the flight path.
	FollowPath bool `yaml:"follow_path" json:"follow_path"`
	// Source and Target bound the volley pattern's fire positions.
	Source spatial.Vec2 `yaml:"source" json:"source"`
	Target spatial.Vec2 `yaml:"target" json:"target"`
}

// SimulationConfig contains the frame loop and spawn settings.
type SimulationConfig struct {
	// TickRate is the fixed timestep frequency in frames per second.
	TickRate int `yaml:"tick_rate" json:"tick_rate"`
	// Duration bounds the run; zero runs until the context is cancelled.
	Duration Duration `yaml:"duration" json:"duration"`
	// SpawnInterval is the time between volleys.
	SpawnInterval Duration `yaml:"spawn_interval" json:"spawn_interval"`
	// VolleySize is the number of projectiles fired per volley.
	VolleySize int `yaml:"volley_size" json:"volley_size"`
	// Realtime paces the loop against the wall clock; disabled, the loop
	// free-runs simulated frames as fast as they compute (benchmark mode).
	Realtime bool `yaml:"realtime" json:"realtime"`
}

// ObservabilityConfig contains monitoring and debugging settings.
type ObservabilityConfig struct {
	// LogLevel sets logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`
	// EnableMetrics activates prometheus metric recording.
	EnableMetrics bool `yaml:"enable_metrics" json:"enable_metrics"`
	// ProgressInterval sets how often the driver logs progress.
	ProgressInterval Duration `yaml:"progress_interval" json:"progress_interval"`
	// TracePath, when set, records a gzip'd JSONL event trace of the run.
	TracePath string `yaml:"trace_path" json:"trace_path"`
}

// NewSimConfig creates a SimConfig with sensible defaults: a 60 Hz loop
// firing a volley of four firebolts every 250ms from a pool of 32.
func NewSimConfig(name string) *SimConfig {
	return &SimConfig{
		Name: name,
		Pool: PoolConfig{
			InitialSize:  32,
			GrowthFactor: 0.5,
		},
		Entity: EntityConfig{
			Kind:       string(projectile.KindFirebolt),
			Speed:      300,
			ArcHeight:  40,
			FollowPath: true,
			Source:     spatial.Vec2{X: 0, Y: 0},
			Target:     spatial.Vec2{X: 480, Y: 0},
		},
		Simulation: SimulationConfig{
			TickRate:      60,
			Duration:      Duration(10 * time.Second),
			SpawnInterval: Duration(250 * time.Millisecond),
			VolleySize:    4,
			Realtime:      false,
		},
		Observability: ObservabilityConfig{
			LogLevel:         "info",
			EnableMetrics:    true,
			ProgressInterval: Duration(time.Second),
		},
	}
}

// Validate checks required fields and value ranges. Call it after loading
// configuration to catch errors before the simulation starts.
func (c *SimConfig) Validate() error {
	if c.Name == "" {
		return volleyerrors.New(volleyerrors.ErrorTypeValidation, "name is required")
	}
	if c.Pool.InitialSize <= 0 {
		return volleyerrors.New(volleyerrors.ErrorTypeValidation, "pool.initial_size must be positive").
			WithDetail("initial_size", c.Pool.InitialSize)
	}
	if c.Pool.GrowthFactor <= 0 {
		return volleyerrors.New(volleyerrors.ErrorTypeValidation, "pool.growth_factor must be positive").
			WithDetail("growth_factor", c.Pool.GrowthFactor)
	}
	if c.Entity.Speed < 0 {
		return volleyerrors.New(volleyerrors.ErrorTypeValidation, "entity.speed cannot be negative")
	}
	if c.Simulation.TickRate <= 0 {
		return volleyerrors.New(volleyerrors.ErrorTypeValidation, "simulation.tick_rate must be positive").
			WithDetail("tick_rate", c.Simulation.TickRate)
	}
	if c.Simulation.VolleySize < 0 {
		return volleyerrors.New(volleyerrors.ErrorTypeValidation, "simulation.volley_size cannot be negative")
	}
	if c.Simulation.SpawnInterval < 0 {
		return volleyerrors.New(volleyerrors.ErrorTypeValidation, "simulation.spawn_interval cannot be negative")
	}
	return nil
}
