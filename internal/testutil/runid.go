package testutil

import (
	"fmt"
	"sync"
)

// RunIDs hands out predictable run ids shaped like UUIDv7 strings, so
// they sort the same way real ids do:
//
//	00000000-0000-7000-8000-000000000001
//	00000000-0000-7000-8000-000000000002
//
// With explicit ids, those are returned in order and exhaustion panics.
type RunIDs struct {
	mu    sync.Mutex
	fixed []string
	n     int
}

// NewRunIDs returns a generator. With no ids it counts up from 1.
func NewRunIDs(ids ...string) *RunIDs {
	return &RunIDs{fixed: ids}
}

// Generate returns the next id.
func (g *RunIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	if g.fixed == nil {
		return fmt.Sprintf("00000000-0000-7000-8000-%012d", g.n)
	}
	if g.n > len(g.fixed) {
		panic("RunIDs: all ids exhausted")
	}
	return g.fixed[g.n-1]
}
