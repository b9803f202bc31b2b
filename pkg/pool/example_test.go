package pool_test

import (
	"fmt"

	"github.com/ajitpratap0/volley/pkg/pool"
)

// spark is a minimal poolable entity for the examples.
type spark struct {
	lit bool
}

func (s *spark) Activate()   { s.lit = true }
func (s *spark) Deactivate() { s.lit = false }

// Example demonstrates the acquire/release protocol and on-demand growth.
func Example() {
	p := pool.New(func() *spark { return &spark{} },
		pool.WithInitialSize[*spark](2))

	// Exhaust the initial capacity and keep acquiring: the pool grows
	// instead of failing.
	a, b, c := p.Acquire(), p.Acquire(), p.Acquire()
	fmt.Printf("active=%d available=%d\n", p.ActiveCount(), p.AvailableCount())

	p.Release(a)
	p.Release(b)
	p.Release(c)
	fmt.Printf("active=%d available=%d\n", p.ActiveCount(), p.AvailableCount())

	// Every entity the pool ever built is accounted for.
	fmt.Printf("allocated=%d\n", p.Stats().Allocated)

	// Output:
	// active=3 available=0
	// active=0 available=3
	// allocated=3
}

// ExamplePool_Release shows that double releases are harmless no-ops.
func ExamplePool_Release() {
	p := pool.New(func() *spark { return &spark{} },
		pool.WithInitialSize[*spark](1))

	s := p.Acquire()
	p.Release(s)
	p.Release(s) // absorbed; the pool's sets stay consistent

	fmt.Printf("available=%d releases=%d\n", p.AvailableCount(), p.Stats().Releases)

	// Output:
	// available=1 releases=1
}
