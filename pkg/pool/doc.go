// Package pool implements the ownership-tracking entity pool that is central
// to Volley's zero-allocation frame loop. Transient game entities such as
// projectiles are constructed once, checked out for a lifecycle, and returned
// to a clean dormant state instead of being allocated and destroyed per frame.
//
// Architecture
//
// Unlike sync.Pool, which may drop objects at any GC cycle, this pool is the
// exclusive owner of every entity it ever constructs. Entities live in exactly
// one of two sets for the lifetime of the pool:
//
//   - available: dormant entities owned by the pool, ready for checkout
//   - active: entities currently checked out to gameplay logic
//
// The two sets are disjoint at every observable point. Exhaustion is never an
// error: Acquire grows capacity on demand from the injected factory.
//
// Core Types:
//
//   - Poolable: the activation contract every pooled entity satisfies
//   - Resetter: optional per-type reset hook invoked on release
//   - Factory[T]: prototype abstraction producing fresh dormant entities
//   - Pool[T]: the ownership-tracking pool itself
//
// The Reset Contract
//
// Release is the single enforcement point against stale-state bugs. Every
// released entity is deactivated (hidden, processing disabled, transform reset
// to neutral) and, when the type implements Resetter, its ResetForPool hook is
// invoked to clear callbacks, subscriptions, and cached references from the
// previous lifecycle. An entity is never eligible for reacquisition before the
// full contract has been applied.
//
// Usage Patterns
//
// Basic pool usage:
//
//	p := pool.New(projectile.New,
//	    pool.WithInitialSize[*projectile.Projectile](32))
//
//	bolt := p.Acquire()
//	bolt.Fire(cfg)
//	// ... later, on impact or cancellation:
//	p.Release(bolt)
//
// Concurrency
//
// The pool is deliberately unsynchronized. The frame loop mutates the pool's
// sets from a single goroutine, one update step per entity per frame, so a
// release always completes before a subsequent acquire can hand the entity
// out again. Confine each pool to one goroutine; see internal/sim for the
// driving loop.
package pool
