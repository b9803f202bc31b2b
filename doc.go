// Package volley provides a game-entity object pooling and simulation
// toolkit built for zero per-frame allocation. Transient entities such as
// projectiles are constructed once, checked out of an ownership-tracking
// pool for each lifecycle, and returned to a structurally clean dormant
// state instead of being allocated and destroyed every frame.
//
// # Architecture
//
// Volley is organized around three ideas:
//
// 1. Exclusive ownership: a pool owns every entity it ever constructs for
// its entire process lifetime. Entities live in exactly one of two disjoint
// sets, available or active, and exhaustion is absorbed by on-demand growth
// rather than surfaced as an error.
//
// 2. The reset contract: release is the single enforcement point where
// stale state dies. Every returned entity is hidden, processing-disabled,
// transform-reset, and stripped of its callback references before it can be
// handed out again.
//
// 3. Single-threaded frame ticks: acquire, release, and per-tick
// advancement are synchronous and run to completion within one frame on one
// goroutine, so a release always completes before a subsequent acquire.
//
// # Quick Start
//
// Pool a projectile type and run a flight:
//
//	import (
//	    "github.com/ajitpratap0/volley/pkg/pool"
//	    "github.com/ajitpratap0/volley/pkg/projectile"
//	    "github.com/ajitpratap0/volley/pkg/spatial"
//	)
//
//	p := pool.New(projectile.New, pool.WithInitialSize[*projectile.Projectile](32))
//
//	bolt := p.Acquire()
//	bolt.SetOnReturn(p.Release)
//	bolt.Fire(projectile.FireConfig{
//	    Source: spatial.Vec2{X: 0, Y: 0},
//	    Target: spatial.Vec2{X: 480, Y: 0},
//	    Kind:   projectile.KindFirebolt,
//	    Speed:  300,
//	})
//
//	for !done {
//	    bolt.Advance(dt) // returns itself to the pool on arrival
//	}
//
// The internal/sim package provides the full frame-loop driver used by the
// volley CLI, with spawned volleys, prometheus metrics, and event tracing.
package volley
