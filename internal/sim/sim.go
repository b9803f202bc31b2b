// Package sim provides the frame-tick simulation driver for Volley,
// orchestrating the entity pool and in-flight projectiles under the
// single-threaded cooperative model the pool is designed for: exactly one
// update step per entity per frame, no parallel mutation of pool sets, and
// every release completing before the entity can be handed out again.
//
// # Overview
//
// The sim package provides:
//   - A fixed-timestep frame loop (free-running or wall-clock paced)
//   - A deterministic volley spawner exercising acquire/fire traffic
//   - Pool and projectile metrics recording
//   - Optional gzip'd JSONL event tracing for replay analysis
//
// # Basic Usage
//
//	cfg := config.NewSimConfig("volley-demo")
//	s, err := sim.New(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	stats, err := s.Run(ctx)
package sim

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/volley/pkg/config"
	"github.com/ajitpratap0/volley/pkg/metrics"
	"github.com/ajitpratap0/volley/pkg/pool"
	"github.com/ajitpratap0/volley/pkg/projectile"
	"github.com/ajitpratap0/volley/pkg/volleyerrors"
)

// Simulation drives a pool of projectiles through a fixed-timestep frame
// loop. All entity and pool mutation happens on the goroutine that calls
// Run; the Simulation is not reusable across runs.
type Simulation struct {
	cfg    *config.SimConfig
	logger *zap.Logger

	pool     *pool.Pool[*projectile.Projectile]
	spawner  *Spawner
	inFlight []*projectile.Projectile

	trace *TraceWriter

	simTime time.Duration
	stats   RunStats
}

// RunStats summarizes a completed simulation run.
type RunStats struct {
	Frames       int64         `json:"frames"`
	Fired        int64         `json:"fired"`
	Hits         int64         `json:"hits"`
	PeakInFlight int           `json:"peak_in_flight"`
	SimTime      time.Duration `json:"sim_time"`
	WallTime     time.Duration `json:"wall_time"`
	Pool         pool.Stats    `json:"pool"`
}

// New builds a simulation from a validated configuration. The pool is
// pre-constructed eagerly, so the first volleys allocate nothing.
func New(cfg *config.SimConfig, logger *zap.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, volleyerrors.Wrap(err, volleyerrors.ErrorTypeConfig, "invalid simulation config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Simulation{
		cfg:    cfg,
		logger: logger.With(zap.String("run", cfg.Name)),
	}

	opts := []pool.Option[*projectile.Projectile]{
		pool.WithInitialSize[*projectile.Projectile](cfg.Pool.InitialSize),
		pool.WithGrowthFactor[*projectile.Projectile](cfg.Pool.GrowthFactor),
	}
	if cfg.Observability.EnableMetrics {
		opts = append(opts,
			pool.WithAcquireHook(func(*projectile.Projectile) {
				metrics.PoolAcquires.WithLabelValues(cfg.Name).Inc()
			}),
			pool.WithReleaseHook(func(*projectile.Projectile) {
				metrics.PoolReleases.WithLabelValues(cfg.Name).Inc()
			}),
			pool.WithGrowHook[*projectile.Projectile](func(added, total int) {
				metrics.PoolGrowthEvents.WithLabelValues(cfg.Name).Inc()
				s.logger.Debug("pool grew",
					zap.Int("added", added),
					zap.Int("total", total),
				)
			}),
		)
	}
	s.pool = pool.New(projectile.New, opts...)
	s.spawner = NewSpawner(cfg, s)

	if cfg.Observability.TracePath != "" {
		tw, err := NewTraceWriter(cfg.Observability.TracePath)
		if err != nil {
			return nil, err
		}
		s.trace = tw
	}

	return s, nil
}

// Run executes the frame loop until the configured duration elapses or the
// context is cancelled, whichever comes first. It returns the run summary.
// Cancellation is cooperative: the loop finishes the current frame, then
// abruptly returns every in-flight projectile to the pool with callbacks
// cleared rather than invoked.
func (s *Simulation) Run(ctx context.Context) (RunStats, error) {
	dt := time.Second / time.Duration(s.cfg.Simulation.TickRate)
	started := time.Now()

	s.logger.Info("simulation starting",
		zap.Int("tick_rate", s.cfg.Simulation.TickRate),
		zap.Duration("duration", s.cfg.Simulation.Duration.Std()),
		zap.Int("pool_initial_size", s.cfg.Pool.InitialSize),
		zap.Bool("realtime", s.cfg.Simulation.Realtime),
	)

	var ticker *time.Ticker
	if s.cfg.Simulation.Realtime {
		ticker = time.NewTicker(dt)
		defer ticker.Stop()
	}

	lastProgress := started
	interval := s.cfg.Observability.ProgressInterval.Std()

	var runErr error
	limit := s.cfg.Simulation.Duration.Std()
loop:
	for limit == 0 || s.simTime < limit {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break loop
		default:
		}

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				runErr = ctx.Err()
				break loop
			}
		}

		s.step(dt)

		if interval > 0 && time.Since(lastProgress) >= interval {
			s.logProgress()
			lastProgress = time.Now()
		}
	}

	s.drain()

	s.stats.SimTime = s.simTime
	s.stats.WallTime = time.Since(started)
	s.stats.Pool = s.pool.Stats()

	if s.trace != nil {
		if err := s.trace.Close(); err != nil && runErr == nil {
			runErr = err
		}
	}

	s.logger.Info("simulation finished",
		zap.Int64("frames", s.stats.Frames),
		zap.Int64("fired", s.stats.Fired),
		zap.Int64("hits", s.stats.Hits),
		zap.Int("peak_in_flight", s.stats.PeakInFlight),
		zap.Duration("sim_time", s.stats.SimTime),
		zap.Duration("wall_time", s.stats.WallTime),
	)

	return s.stats, runErr
}

// step runs exactly one frame: spawn due volleys, advance each in-flight
// projectile once, compact out the ones that completed and went dormant.
func (s *Simulation) step(dt time.Duration) {
	var timer *metrics.Timer
	if s.cfg.Observability.EnableMetrics {
		timer = metrics.NewTimer()
	}

	seconds := dt.Seconds()
	s.spawner.Step(seconds)

	for _, p := range s.inFlight {
		p.Advance(seconds)
	}

	// Completed projectiles released themselves through their return
	// callback during Advance; drop the dormant entries.
	live := s.inFlight[:0]
	for _, p := range s.inFlight {
		if p.Active() {
			live = append(live, p)
		}
	}
	s.inFlight = live

	s.simTime += dt
	s.stats.Frames++
	if len(s.inFlight) > s.stats.PeakInFlight {
		s.stats.PeakInFlight = len(s.inFlight)
	}

	if s.cfg.Observability.EnableMetrics {
		metrics.PoolAvailable.WithLabelValues(s.cfg.Name).Set(float64(s.pool.AvailableCount()))
		metrics.PoolActive.WithLabelValues(s.cfg.Name).Set(float64(s.pool.ActiveCount()))
		metrics.FrameDuration.WithLabelValues(s.cfg.Name).Observe(float64(timer.Stop().Nanoseconds()))
	}
}

// launch checks a projectile out of the pool, wires its lifecycle callbacks,
// and fires it. Called by the spawner.
func (s *Simulation) launch(cfg projectile.FireConfig) {
	p := s.pool.Acquire()

	p.SetOnHit(func(hit *projectile.Projectile) {
		s.stats.Hits++
		if s.cfg.Observability.EnableMetrics {
			metrics.ProjectileHits.WithLabelValues(string(hit.Kind())).Inc()
		}
		s.record(EventHit, hit)
	})
	p.SetOnReturn(func(done *projectile.Projectile) {
		s.record(EventReturned, done)
		s.pool.Release(done)
	})

	p.Fire(cfg)
	s.inFlight = append(s.inFlight, p)
	s.stats.Fired++
	if s.cfg.Observability.EnableMetrics {
		metrics.ProjectilesFired.WithLabelValues(string(cfg.Kind)).Inc()
	}
	s.record(EventFired, p)
}

// drain abruptly returns every in-flight projectile to the pool. Callbacks
// are cleared by the reset contract, not invoked: this is a cancellation,
// not a completion.
func (s *Simulation) drain() {
	for _, p := range s.inFlight {
		s.pool.Release(p)
	}
	s.inFlight = s.inFlight[:0]
}

// record appends an event to the trace when tracing is enabled.
func (s *Simulation) record(typ EventType, p *projectile.Projectile) {
	if s.trace == nil {
		return
	}
	pos := p.Position()
	if err := s.trace.Write(Event{
		Time: s.simTime.Seconds(),
		Type: typ,
		Kind: string(p.Kind()),
		X:    pos.X,
		Y:    pos.Y,
	}); err != nil {
		s.logger.Warn("trace write failed", zap.Error(err))
		s.trace = nil
	}
}

func (s *Simulation) logProgress() {
	fields := []zap.Field{
		zap.Duration("sim_time", s.simTime),
		zap.Int64("frames", s.stats.Frames),
		zap.Int64("fired", s.stats.Fired),
		zap.Int64("hits", s.stats.Hits),
		zap.Int("in_flight", len(s.inFlight)),
		zap.Int("pool_available", s.pool.AvailableCount()),
		zap.Int("pool_active", s.pool.ActiveCount()),
	}
	fields = append(fields, resourceFields()...)
	s.logger.Info("simulation progress", fields...)
}
