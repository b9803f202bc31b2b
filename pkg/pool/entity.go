package pool

// Poolable is the contract every pooled entity satisfies. The pool calls
// Activate when an entity is handed out and Deactivate when it is returned,
// so every acquired entity is consistently ready for immediate configuration
// and every released entity is dormant.
type Poolable interface {
	// Activate puts the entity into its in-use state: visible and
	// processing-enabled. Called by the pool during Acquire, never by
	// gameplay logic.
	Activate()

	// Deactivate puts the entity into its dormant state: hidden, processing
	// disabled, spatial transform reset to the canonical neutral value.
	Deactivate()
}

// Resetter is the optional capability for entities that hold state beyond
// what Deactivate covers: callback handles, subscriptions, cached references
// to other entities. The pool invokes ResetForPool on every release when the
// entity implements it. Types that omit it still get the generic reset.
type Resetter interface {
	ResetForPool()
}

// Destroyer is the optional capability invoked once per entity during Clear,
// for types that own resources needing explicit teardown.
type Destroyer interface {
	Destroy()
}

// Entity constrains the element types a pool can manage: any comparable
// Poolable, in practice a pointer to the entity struct.
type Entity interface {
	comparable
	Poolable
}

// Factory produces a fresh entity instance. It is the prototype abstraction
// injected into a pool at construction and is the only way entities enter a
// pool; the factory's output is owned by the pool for the pool's lifetime.
type Factory[T Entity] func() T
