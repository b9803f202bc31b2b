// Package metrics provides performance tracking for Volley using Prometheus
// metrics. It exposes pre-registered collectors for pool activity, projectile
// lifecycle events, and frame timing.
//
// # Basic Usage
//
//	// Record a pool growth event
//	metrics.PoolGrowthEvents.WithLabelValues("projectiles").Inc()
//
//	// Track frame time
//	timer := metrics.NewTimer()
//	step(dt)
//	metrics.FrameDuration.WithLabelValues("volley-demo").Observe(float64(timer.Stop().Nanoseconds()))
//
// # Metric Types
//
// Counter: Monotonically increasing values (e.g., total acquires)
// Gauge: Values that can go up or down (e.g., entities in flight)
// Histogram: Distribution of values (e.g., frame time percentiles)
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PoolAcquires tracks entity checkouts per pool.
	//
	// Example:
	//	metrics.PoolAcquires.WithLabelValues("projectiles").Inc()
	PoolAcquires = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volley_pool_acquires_total",
			Help: "Total number of entities acquired from the pool",
		},
		[]string{"pool"},
	)

	// PoolReleases tracks entity returns per pool. Double releases are
	// absorbed by the pool and never counted.
	PoolReleases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volley_pool_releases_total",
			Help: "Total number of entities released back to the pool",
		},
		[]string{"pool"},
	)

	// PoolGrowthEvents tracks exhaustion-driven growth events per pool.
	PoolGrowthEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volley_pool_growth_events_total",
			Help: "Total number of pool growth events",
		},
		[]string{"pool"},
	)

	// PoolAvailable tracks the dormant entity count per pool.
	PoolAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "volley_pool_available_entities",
			Help: "Number of dormant entities owned by the pool",
		},
		[]string{"pool"},
	)

	// PoolActive tracks the checked-out entity count per pool.
	PoolActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "volley_pool_active_entities",
			Help: "Number of entities currently checked out",
		},
		[]string{"pool"},
	)

	// ProjectilesFired tracks fired projectiles by kind.
	ProjectilesFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volley_projectiles_fired_total",
			Help: "Total number of projectiles fired",
		},
		[]string{"kind"},
	)

	// ProjectileHits tracks completed flights by kind.
	ProjectileHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volley_projectile_hits_total",
			Help: "Total number of projectile hit notifications",
		},
		[]string{"kind"},
	)

	// FrameDuration tracks the distribution of frame step times in
	// nanoseconds. Buckets are tuned around 60 Hz / 120 Hz frame budgets.
	FrameDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "volley_frame_duration_nanoseconds",
			Help: "Simulation frame step duration in nanoseconds",
			Buckets: []float64{
				1e3,    // 1μs - trivial frames
				1e4,    // 10μs
				1e5,    // 100μs
				1e6,    // 1ms
				4e6,    // 4ms - half a 120 Hz budget
				8.33e6, // ~8ms - 120 Hz budget
				1.67e7, // ~16ms - 60 Hz budget
				3.3e7,  // ~33ms - 30 Hz budget
				1e8,    // 100ms - stalls
			},
		},
		[]string{"run"},
	)
)

// Timer measures elapsed time for histogram observations.
type Timer struct {
	start time.Time
}

// NewTimer starts a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Stop returns the elapsed time since the timer started.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}
