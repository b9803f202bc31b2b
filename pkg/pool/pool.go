package pool

import "math"

// DefaultInitialSize is the eager pre-construction count used when no
// WithInitialSize option is given.
const DefaultInitialSize = 16

// DefaultGrowthFactor is the fraction of the initial size constructed on each
// exhaustion event. Growing by half the configured increment amortizes
// repeated small bursts without overshooting steady-state demand; this is a
// tunable policy, not a correctness requirement.
const DefaultGrowthFactor = 0.5

// Option configures a Pool at construction time.
type Option[T Entity] func(*Pool[T])

// WithInitialSize sets the eager pre-construction count, which is also the
// base the growth step is derived from. Values below 1 are clamped to 1.
func WithInitialSize[T Entity](n int) Option[T] {
	return func(p *Pool[T]) {
		if n < 1 {
			n = 1
		}
		p.initialSize = n
	}
}

// WithGrowthFactor sets the fraction of the initial size constructed on each
// exhaustion event. The growth step is always at least one entity regardless
// of the factor.
func WithGrowthFactor[T Entity](f float64) Option[T] {
	return func(p *Pool[T]) {
		if f > 0 {
			p.growthFactor = f
		}
	}
}

// WithAcquireHook registers a callback invoked after an entity has been
// activated and handed out.
func WithAcquireHook[T Entity](fn func(T)) Option[T] {
	return func(p *Pool[T]) { p.onAcquire = fn }
}

// WithReleaseHook registers a callback invoked after the reset contract has
// been applied to a released entity. Double releases do not fire the hook.
func WithReleaseHook[T Entity](fn func(T)) Option[T] {
	return func(p *Pool[T]) { p.onRelease = fn }
}

// WithGrowHook registers a callback invoked after a growth event with the
// number of entities added and the new total.
func WithGrowHook[T Entity](fn func(added, total int)) Option[T] {
	return func(p *Pool[T]) { p.onGrow = fn }
}

// Pool is the exclusive owner of a fixed-growth collection of reusable
// entities. It arbitrates checkout and return, grows capacity on demand, and
// guarantees every entity handed out is in a well-defined initial-use state.
//
// A Pool is not safe for concurrent use. Confine each pool to the single
// goroutine that runs the frame loop.
type Pool[T Entity] struct {
	factory      Factory[T]
	initialSize  int
	growthFactor float64

	// available is reused LIFO so recently released entities, still warm in
	// cache, are handed out first. Order carries no semantic meaning.
	available []T
	active    map[T]struct{}

	onAcquire func(T)
	onRelease func(T)
	onGrow    func(added, total int)

	stats Stats
}

// Stats is a snapshot of pool activity counters. Allocated counts every
// entity ever constructed by the pool, including any destroyed by Clear.
type Stats struct {
	Allocated int64 `json:"allocated"`
	Acquires  int64 `json:"acquires"`
	Releases  int64 `json:"releases"`
	Growths   int64 `json:"growths"`
	InUse     int64 `json:"in_use"`
}

// New constructs a pool around the given factory and eagerly pre-constructs
// the initial capacity, so the first frames of a burst pay no allocation
// cost. Every constructed entity starts dormant in the available set.
func New[T Entity](factory Factory[T], opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		factory:      factory,
		initialSize:  DefaultInitialSize,
		growthFactor: DefaultGrowthFactor,
		active:       make(map[T]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.available = make([]T, 0, p.initialSize)
	p.construct(p.initialSize)
	return p
}

// Acquire checks one entity out of the pool. Exhaustion is handled
// internally: when the available set is empty the pool grows by
// max(1, initialSize*growthFactor) fresh entities first, so Acquire never
// fails. The returned entity has been activated and is ready for immediate
// configuration.
//
// Ownership of use transfers to the caller until Release; ownership of
// memory never leaves the pool.
func (p *Pool[T]) Acquire() T {
	if len(p.available) == 0 {
		p.grow()
	}

	e := p.available[len(p.available)-1]
	p.available = p.available[:len(p.available)-1]
	p.active[e] = struct{}{}

	e.Activate()
	p.stats.Acquires++
	p.stats.InUse = int64(len(p.active))
	if p.onAcquire != nil {
		p.onAcquire(e)
	}
	return e
}

// Release returns an entity to the pool and applies the reset contract:
// Deactivate unconditionally, then ResetForPool when the type implements it.
// Only then does the entity become eligible for reacquisition.
//
// Releasing an entity the pool does not currently track as active is a
// no-op, so double releases and releases of foreign entities can never
// corrupt the pool's sets.
func (p *Pool[T]) Release(e T) {
	if _, ok := p.active[e]; !ok {
		return
	}
	delete(p.active, e)

	e.Deactivate()
	if r, ok := any(e).(Resetter); ok {
		r.ResetForPool()
	}

	p.available = append(p.available, e)
	p.stats.Releases++
	p.stats.InUse = int64(len(p.active))
	if p.onRelease != nil {
		p.onRelease(e)
	}
}

// AvailableCount returns the number of dormant entities owned by the pool.
func (p *Pool[T]) AvailableCount() int {
	return len(p.available)
}

// ActiveCount returns the number of entities currently checked out.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// Stats returns a snapshot of the pool's activity counters.
func (p *Pool[T]) Stats() Stats {
	return p.stats
}

// Clear destroys every entity in both sets and empties them. This is a hard
// teardown for scene or level unload, not a drain: entities still mid-use
// are torn down regardless of their progress, and their Destroy hook is
// invoked when implemented. The pool remains usable afterwards; the next
// Acquire grows it again from the factory.
func (p *Pool[T]) Clear() {
	for _, e := range p.available {
		if d, ok := any(e).(Destroyer); ok {
			d.Destroy()
		}
	}
	for e := range p.active {
		if d, ok := any(e).(Destroyer); ok {
			d.Destroy()
		}
	}
	p.available = p.available[:0]
	p.active = make(map[T]struct{})
	p.stats.InUse = 0
}

// grow constructs the configured growth step of fresh entities. The step is
// derived from the initial size, not the current capacity, so repeated
// exhaustion grows linearly rather than geometrically.
func (p *Pool[T]) grow() {
	step := int(math.Round(float64(p.initialSize) * p.growthFactor))
	if step < 1 {
		step = 1
	}
	p.construct(step)
	p.stats.Growths++
	if p.onGrow != nil {
		p.onGrow(step, len(p.available)+len(p.active))
	}
}

// construct builds n dormant entities and inserts them into the available
// set. Freshly built entities are deactivated before entering the pool so a
// factory returning a live prototype cannot leak visible state.
func (p *Pool[T]) construct(n int) {
	for i := 0; i < n; i++ {
		e := p.factory()
		e.Deactivate()
		p.available = append(p.available, e)
		p.stats.Allocated++
	}
}
