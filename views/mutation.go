package views

import (
	"errors"
	"sync"
)

// ErrMutationInFlight is returned when a mutation is attempted for an item
// that already has one pending. The second attempt performs no work.
var ErrMutationInFlight = errors.New("a mutation for this item is already in flight")

// Guard serializes mutations per item id. Mutations for different ids run
// independently and may be in flight at the same time.
type Guard struct {
	mu       sync.Mutex
	inflight map[int64]struct{}
}

// NewGuard creates an empty mutation guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[int64]struct{})}
}

// Do runs fn for id unless a mutation for the same id is already pending, in
// which case it returns ErrMutationInFlight without calling fn.
func (g *Guard) Do(id int64, fn func() error) error {
	g.mu.Lock()
	if _, busy := g.inflight[id]; busy {
		g.mu.Unlock()
		return ErrMutationInFlight
	}
	g.inflight[id] = struct{}{}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.inflight, id)
		g.mu.Unlock()
	}()

	return fn()
}

// Busy reports whether a mutation for id is currently pending.
func (g *Guard) Busy(id int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inflight[id]
	return busy
}
