// Package projectile implements the travel entity used with pool.Pool: one
// in-flight unit of transient behavior moving from a source point to a target
// point, independent of how it was obtained. It satisfies both the Poolable
// activation contract and the optional Resetter capability, clearing its
// callback fields on every reset so a previous cycle's listener can never
// fire on a future cycle.
package projectile

import "github.com/ajitpratap0/volley/pkg/spatial"

// Kind identifies the projectile archetype. Kinds carry no behavior here;
// they select presentation assets and damage tables in the layers above.
type Kind string

const (
	KindFirebolt   Kind = "firebolt"
	KindShadowbolt Kind = "shadowbolt"
	KindArrow      Kind = "arrow"
)

// facingEpsilon is the path-parameter lookahead used to derive facing
// direction. Facing is approximated by sampling the path slightly ahead and
// pointing at the sample, not by differentiating the arc analytically; the
// approximation is cheap and visually adequate, and the epsilon is part of
// the observable behavior.
const facingEpsilon = 0.01

// HitFunc is invoked exactly once when a projectile reaches its target.
type HitFunc func(*Projectile)

// ReturnFunc is invoked after the hit notification to hand the projectile
// back to its owner, typically a pool's Release.
type ReturnFunc func(*Projectile)

// FireConfig captures everything a dormant projectile needs to begin a
// flight.
type FireConfig struct {
	Source spatial.Vec2
	Target spatial.Vec2
	Kind   Kind

	// Speed is the travel speed in world units per second.
	Speed float64

	// ArcHeight is the peak vertical offset of the flight path. Zero gives a
	// straight line; a positive value gives a closed-form single-arch arc
	// with maximum displacement at mid-flight and zero at both endpoints.
	ArcHeight float64

	// FollowPath enables facing derivation from the flight path, so the
	// sprite noses along its arc.
	FollowPath bool
}

// Projectile is a poolable travel entity. Its zero value is dormant apart
// from the transform; construct through New so the transform starts neutral.
//
// State machine: Dormant -> (Fire) -> Active -> (per-tick Advance) ->
// progress 1 -> hit notification -> return to pool, or self-deactivation
// when no return callback is registered.
type Projectile struct {
	transform  spatial.Transform2D
	visible    bool
	processing bool
	active     bool

	kind       Kind
	source     spatial.Vec2
	target     spatial.Vec2
	speed      float64
	arcHeight  float64
	followPath bool

	distance float64
	progress float64

	onHit    HitFunc
	onReturn ReturnFunc
}

// New returns a dormant projectile with a neutral transform.
func New() *Projectile {
	return &Projectile{transform: spatial.Neutral()}
}

// Activate makes the projectile visible and processing-enabled. Part of the
// pool.Poolable contract; gameplay logic configures flight through Fire.
func (p *Projectile) Activate() {
	p.visible = true
	p.processing = true
}

// Deactivate hides the projectile, disables processing, and resets the
// transform to the canonical neutral value.
func (p *Projectile) Deactivate() {
	p.visible = false
	p.processing = false
	p.transform = spatial.Neutral()
}

// ResetForPool clears every transient field the generic reset does not
// cover: lifecycle state, flight configuration, progress, and critically
// both callback references, preventing a stale listener from a previous
// lifecycle firing on a future one.
func (p *Projectile) ResetForPool() {
	p.active = false
	p.kind = ""
	p.source = spatial.Vec2{}
	p.target = spatial.Vec2{}
	p.speed = 0
	p.arcHeight = 0
	p.followPath = false
	p.distance = 0
	p.progress = 0
	p.onHit = nil
	p.onReturn = nil
}

// Fire transitions the projectile from Dormant to Active. It captures the
// flight configuration, computes total travel distance, zeroes progress,
// positions the projectile at the source, and enables visibility and
// processing so a projectile fired outside a pool behaves identically to an
// acquired one. Initial facing is computed when path following is enabled.
func (p *Projectile) Fire(cfg FireConfig) {
	p.kind = cfg.Kind
	p.source = cfg.Source
	p.target = cfg.Target
	p.speed = cfg.Speed
	p.arcHeight = cfg.ArcHeight
	p.followPath = cfg.FollowPath

	p.distance = cfg.Source.DistanceTo(cfg.Target)
	p.progress = 0
	p.transform.Position = cfg.Source
	p.active = true
	p.Activate()

	if p.followPath {
		p.face()
	}
}

// Advance moves the projectile along its path by the elapsed time dt in
// seconds. A dormant projectile ignores Advance. On reaching the target the
// projectile fires its hit notification exactly once and then requests a
// pool return; without a registered return callback it deactivates itself
// in place, the fallback for non-pooled use.
func (p *Projectile) Advance(dt float64) {
	if !p.active || dt <= 0 {
		return
	}

	if p.distance == 0 {
		// Zero travel distance means already arrived; guards the division
		// below.
		p.progress = 1
	} else {
		p.progress += p.speed * dt / p.distance
		if p.progress > 1 {
			p.progress = 1
		}
	}

	p.transform.Position = p.PointAt(p.progress)
	if p.followPath {
		p.face()
	}

	if p.progress >= 1 {
		p.complete()
	}
}

// PointAt returns the position on the flight path at parameter t in [0, 1]:
// linear interpolation between source and target with the arc's vertical
// offset 4*arcHeight*t*(1-t) applied. The offset peaks at arcHeight when
// t = 0.5 and vanishes at both endpoints.
func (p *Projectile) PointAt(t float64) spatial.Vec2 {
	pos := p.source.Lerp(p.target, t)
	pos.Y -= 4 * p.arcHeight * t * (1 - t)
	return pos
}

// face derives facing by sampling the path facingEpsilon ahead of the
// current progress, clamped to the endpoint, and pointing at the sample.
func (p *Projectile) face() {
	t := p.progress + facingEpsilon
	if t > 1 {
		t = 1
	}
	dir := p.PointAt(t).Sub(p.transform.Position)
	if dir == (spatial.Vec2{}) {
		// At the very end of the path the sample collapses onto the current
		// position; keep the last facing.
		return
	}
	p.transform.Rotation = dir.Angle()
}

// complete runs the Active -> Dormant transition: hit notification first,
// then the pool return. The callbacks are captured before the return path
// runs because a pool Release resets the projectile, clearing its fields.
func (p *Projectile) complete() {
	hit := p.onHit
	ret := p.onReturn

	if hit != nil {
		hit(p)
	}
	if ret != nil {
		ret(p)
		return
	}

	// Non-pooled fallback: self-destruct into the dormant state.
	p.Deactivate()
	p.ResetForPool()
}

// SetOnHit registers the hit notification for the current lifecycle. The
// reference is cleared on reset.
func (p *Projectile) SetOnHit(fn HitFunc) {
	p.onHit = fn
}

// SetOnReturn registers the pool-return callback for the current lifecycle.
// The reference is cleared on reset.
func (p *Projectile) SetOnReturn(fn ReturnFunc) {
	p.onReturn = fn
}

// Active reports whether the projectile is mid-lifecycle.
func (p *Projectile) Active() bool { return p.active }

// Visible reports the presentation-visibility flag.
func (p *Projectile) Visible() bool { return p.visible }

// Processing reports whether per-tick advancement is enabled.
func (p *Projectile) Processing() bool { return p.processing }

// Progress returns the normalized flight progress in [0, 1].
func (p *Projectile) Progress() float64 { return p.progress }

// Kind returns the archetype captured by the last Fire.
func (p *Projectile) Kind() Kind { return p.kind }

// Transform returns the projectile's current spatial state.
func (p *Projectile) Transform() spatial.Transform2D { return p.transform }

// Position returns the projectile's current world position.
func (p *Projectile) Position() spatial.Vec2 { return p.transform.Position }

// HasHitCallback reports whether a hit listener is currently registered.
func (p *Projectile) HasHitCallback() bool { return p.onHit != nil }

// HasReturnCallback reports whether a pool-return callback is currently
// registered.
func (p *Projectile) HasReturnCallback() bool { return p.onReturn != nil }
