package sim

import (
	"github.com/ajitpratap0/volley/pkg/config"
	"github.com/ajitpratap0/volley/pkg/projectile"
	"github.com/ajitpratap0/volley/pkg/spatial"
)

// volleySpread is the vertical separation between projectiles of one volley,
// in world units. The fan pattern keeps runs deterministic while still
// exercising distinct flight paths.
const volleySpread = 12.0

// Spawner emits deterministic volleys of projectiles on a fixed interval of
// simulated time. It accumulates fractional frames so spawn cadence is exact
// regardless of tick rate.
type Spawner struct {
	cfg *config.SimConfig
	sim *Simulation

	accumulator float64 // seconds of simulated time since the last volley
}

// NewSpawner creates a spawner bound to a simulation.
func NewSpawner(cfg *config.SimConfig, sim *Simulation) *Spawner {
	return &Spawner{cfg: cfg, sim: sim}
}

// Step advances the spawner by dt seconds of simulated time, firing every
// volley that has come due. A zero spawn interval fires exactly one volley
// on the first step and nothing after.
func (sp *Spawner) Step(dt float64) {
	interval := sp.cfg.Simulation.SpawnInterval.Std().Seconds()
	if interval <= 0 {
		if sp.accumulator == 0 {
			sp.accumulator = -1 // fired marker
			sp.fireVolley()
		}
		return
	}

	sp.accumulator += dt
	for sp.accumulator >= interval {
		sp.accumulator -= interval
		sp.fireVolley()
	}
}

// fireVolley launches the configured number of projectiles, fanned out
// vertically around the configured target.
func (sp *Spawner) fireVolley() {
	ent := sp.cfg.Entity
	n := sp.cfg.Simulation.VolleySize
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * volleySpread
		sp.sim.launch(projectile.FireConfig{
			Source:     ent.Source,
			Target:     spatial.Vec2{X: ent.Target.X, Y: ent.Target.Y + offset},
			Kind:       projectile.Kind(ent.Kind),
			Speed:      ent.Speed,
			ArcHeight:  ent.ArcHeight,
			FollowPath: ent.FollowPath,
		})
	}
}
