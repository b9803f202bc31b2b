package projectile_test

import (
	"math"
	"testing"

	"github.com/ajitpratap0/volley/pkg/pool"
	"github.com/ajitpratap0/volley/pkg/projectile"
	"github.com/ajitpratap0/volley/pkg/spatial"
)

const tolerance = 1e-9

func TestFireTransitionsToActive(t *testing.T) {
	p := projectile.New()

	p.Fire(projectile.FireConfig{
		Source: spatial.Vec2{X: 0, Y: 0},
		Target: spatial.Vec2{X: 100, Y: 0},
		Kind:   projectile.KindFirebolt,
		Speed:  100,
	})

	if !p.Active() {
		t.Fatal("fired projectile not active")
	}
	if !p.Visible() || !p.Processing() {
		t.Errorf("fired projectile visible=%v processing=%v, want both true", p.Visible(), p.Processing())
	}
	if got := p.Position(); got != (spatial.Vec2{}) {
		t.Errorf("initial position = %v, want source", got)
	}
	if got := p.Progress(); got != 0 {
		t.Errorf("initial progress = %v, want 0", got)
	}
}

func TestAdvanceReachesTargetAndHitsOnce(t *testing.T) {
	p := projectile.New()

	hits := 0
	p.SetOnHit(func(*projectile.Projectile) { hits++ })
	p.Fire(projectile.FireConfig{
		Source: spatial.Vec2{X: 0, Y: 0},
		Target: spatial.Vec2{X: 100, Y: 0},
		Speed:  100,
	})

	// One simulated second at 60 Hz.
	dt := 1.0 / 60
	for i := 0; i < 60; i++ {
		p.Advance(dt)
	}

	if hits != 1 {
		t.Errorf("hit callback fired %d times, want exactly 1", hits)
	}
	if p.Active() {
		t.Error("projectile still active after completing its flight")
	}
}

func TestZeroDistanceSnapsToComplete(t *testing.T) {
	p := projectile.New()

	hits := 0
	p.SetOnHit(func(*projectile.Projectile) { hits++ })
	p.Fire(projectile.FireConfig{
		Source: spatial.Vec2{X: 7, Y: 7},
		Target: spatial.Vec2{X: 7, Y: 7},
		Speed:  100,
	})

	p.Advance(1.0 / 60)

	if hits != 1 {
		t.Errorf("hit callback fired %d times, want 1", hits)
	}
	if p.Active() {
		t.Error("zero-distance flight did not complete")
	}
}

func TestArcSymmetry(t *testing.T) {
	const h = 25.0
	p := projectile.New()
	p.Fire(projectile.FireConfig{
		Source:    spatial.Vec2{X: 0, Y: 0},
		Target:    spatial.Vec2{X: 100, Y: 0},
		Speed:     100,
		ArcHeight: h,
	})

	offsetAt := func(t float64) float64 {
		straight := (spatial.Vec2{X: 0, Y: 0}).Lerp(spatial.Vec2{X: 100, Y: 0}, t)
		return math.Abs(p.PointAt(t).Y - straight.Y)
	}

	if got := offsetAt(0); got > tolerance {
		t.Errorf("offset at progress 0 = %v, want 0", got)
	}
	if got := offsetAt(1); got > tolerance {
		t.Errorf("offset at progress 1 = %v, want 0", got)
	}
	if got := offsetAt(0.5); math.Abs(got-h) > tolerance {
		t.Errorf("offset at progress 0.5 = %v, want %v", got, h)
	}
	// The arch is symmetric around mid-flight.
	if d := math.Abs(offsetAt(0.25) - offsetAt(0.75)); d > tolerance {
		t.Errorf("arc not symmetric: |offset(0.25)-offset(0.75)| = %v", d)
	}
}

func TestFacingUsesEpsilonAheadSampling(t *testing.T) {
	p := projectile.New()
	p.Fire(projectile.FireConfig{
		Source:     spatial.Vec2{X: 0, Y: 0},
		Target:     spatial.Vec2{X: 100, Y: 0},
		Speed:      100,
		ArcHeight:  25,
		FollowPath: true,
	})

	// Rising half of the arc: the path climbs (negative Y is up), so the
	// facing angle must be negative.
	if rot := p.Transform().Rotation; rot >= 0 {
		t.Errorf("initial facing = %v, want negative (climbing)", rot)
	}

	// Past mid-flight the path descends and facing flips below horizontal.
	for p.Progress() < 0.6 {
		p.Advance(1.0 / 120)
	}
	if rot := p.Transform().Rotation; rot <= 0 {
		t.Errorf("descending facing = %v, want positive", rot)
	}
}

func TestFacingFlatPathPointsAtTarget(t *testing.T) {
	p := projectile.New()
	p.Fire(projectile.FireConfig{
		Source:     spatial.Vec2{X: 0, Y: 0},
		Target:     spatial.Vec2{X: 0, Y: 50},
		Speed:      50,
		FollowPath: true,
	})

	want := math.Pi / 2
	if rot := p.Transform().Rotation; math.Abs(rot-want) > tolerance {
		t.Errorf("facing = %v, want %v", rot, want)
	}
}

func TestSelfDestructFallbackWithoutReturnCallback(t *testing.T) {
	p := projectile.New()

	hits := 0
	p.SetOnHit(func(*projectile.Projectile) { hits++ })
	p.Fire(projectile.FireConfig{
		Source: spatial.Vec2{},
		Target: spatial.Vec2{X: 10, Y: 0},
		Speed:  1000,
	})

	p.Advance(1)

	if hits != 1 {
		t.Errorf("hit callback fired %d times, want 1", hits)
	}
	if p.Active() || p.Visible() || p.Processing() {
		t.Error("non-pooled projectile did not self-destruct into dormancy")
	}
	if p.HasHitCallback() || p.HasReturnCallback() {
		t.Error("self-destruct left callback references behind")
	}
	if !p.Transform().IsNeutral() {
		t.Errorf("self-destruct left transform %v, want neutral", p.Transform())
	}
}

func TestResetForPoolClearsEverything(t *testing.T) {
	p := projectile.New()
	p.SetOnHit(func(*projectile.Projectile) {})
	p.SetOnReturn(func(*projectile.Projectile) {})
	p.Fire(projectile.FireConfig{
		Source:     spatial.Vec2{X: 1, Y: 2},
		Target:     spatial.Vec2{X: 3, Y: 4},
		Kind:       projectile.KindShadowbolt,
		Speed:      10,
		ArcHeight:  5,
		FollowPath: true,
	})
	p.Advance(0.01)

	p.Deactivate()
	p.ResetForPool()

	if p.Active() {
		t.Error("reset projectile still active")
	}
	if p.Progress() != 0 {
		t.Errorf("reset progress = %v, want 0", p.Progress())
	}
	if p.Kind() != "" {
		t.Errorf("reset kind = %q, want empty", p.Kind())
	}
	if p.HasHitCallback() || p.HasReturnCallback() {
		t.Error("reset left callback references behind")
	}
	if !p.Transform().IsNeutral() {
		t.Errorf("reset transform = %v, want neutral", p.Transform())
	}
}

func TestDormantProjectileIgnoresAdvance(t *testing.T) {
	p := projectile.New()
	p.Advance(1)

	if p.Active() || p.Progress() != 0 {
		t.Error("dormant projectile moved")
	}
}

// TestPooledFlight runs the full end-to-end scenario: a pool of capacity 2,
// three concurrent acquisitions, releases, and a complete flight that
// returns itself through the pool.
func TestPooledFlight(t *testing.T) {
	p := pool.New(projectile.New, pool.WithInitialSize[*projectile.Projectile](2))

	// Acquire beyond capacity: growth absorbs the burst.
	bolts := []*projectile.Projectile{p.Acquire(), p.Acquire(), p.Acquire()}
	if got := p.ActiveCount(); got != 3 {
		t.Fatalf("ActiveCount() = %d, want 3", got)
	}

	for _, b := range bolts {
		p.Release(b)
	}
	if got := p.ActiveCount(); got != 0 {
		t.Fatalf("ActiveCount() = %d, want 0 after releasing all", got)
	}
	for _, b := range bolts {
		if b.Active() || b.HasHitCallback() || b.HasReturnCallback() || b.Progress() != 0 {
			t.Fatal("released projectile carries transient state")
		}
	}

	// Fire one flight through the pool: (0,0) -> (100,0) at speed 100,
	// zero arc, completing within one simulated second.
	bolt := p.Acquire()
	hits := 0
	bolt.SetOnHit(func(*projectile.Projectile) { hits++ })
	bolt.SetOnReturn(p.Release)
	bolt.Fire(projectile.FireConfig{
		Source: spatial.Vec2{X: 0, Y: 0},
		Target: spatial.Vec2{X: 100, Y: 0},
		Speed:  100,
	})

	dt := 1.0 / 60
	for i := 0; i < 60; i++ {
		bolt.Advance(dt)
	}

	if hits != 1 {
		t.Errorf("hit callback fired %d times, want exactly 1", hits)
	}
	if got := p.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() = %d, want 0 after self-return", got)
	}
	if bolt.HasHitCallback() || bolt.HasReturnCallback() {
		t.Error("self-returned projectile carries stale callbacks")
	}
}

// TestAbruptCancellation releases a projectile mid-flight: callbacks are
// cleared, not invoked.
func TestAbruptCancellation(t *testing.T) {
	p := pool.New(projectile.New, pool.WithInitialSize[*projectile.Projectile](1))

	bolt := p.Acquire()
	hits, returns := 0, 0
	bolt.SetOnHit(func(*projectile.Projectile) { hits++ })
	bolt.SetOnReturn(func(b *projectile.Projectile) { returns++; p.Release(b) })
	bolt.Fire(projectile.FireConfig{
		Source: spatial.Vec2{},
		Target: spatial.Vec2{X: 100, Y: 0},
		Speed:  10,
	})
	bolt.Advance(1.0 / 60)

	p.Release(bolt) // external cancel mid-flight

	if hits != 0 || returns != 0 {
		t.Errorf("cancellation invoked callbacks: hits=%d returns=%d, want 0 and 0", hits, returns)
	}
	if bolt.Active() {
		t.Error("cancelled projectile still active")
	}
	if got := p.AvailableCount(); got != 1 {
		t.Errorf("AvailableCount() = %d, want 1", got)
	}

	// Further ticks on the released reference are a contract violation the
	// guard absorbs.
	bolt.Advance(1)
	if hits != 0 {
		t.Errorf("stale tick fired a cleared callback %d times", hits)
	}
}
