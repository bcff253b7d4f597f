package views

import (
	"context"
	"sync"
	"time"
)

// Snapshot is the result of reading a Resource. When a refresh fails but an
// older snapshot exists, Stale is true and RefreshErr carries the failure;
// the data shown is the last good fetch.
type Snapshot[T any] struct {
	Data       T
	FetchedAt  time.Time
	Stale      bool
	RefreshErr error
}

// Resource is the fetch-lifecycle controller each page instance owns. It has
// three phases: loading (no snapshot, fetch in flight), error (cold fetch
// failed, no snapshot to fall back on) and ready (snapshot present). Once a
// snapshot exists it stays visible across failed refreshes; the view is never
// cleared back to a blank loading state.
type Resource[T any] struct {
	ttl time.Duration

	mu        sync.Mutex
	data      T
	ok        bool
	fetchedAt time.Time
}

// NewResource creates a Resource whose snapshot is served without a refresh
// for ttl after a successful fetch. A ttl of zero refreshes on every read.
func NewResource[T any](ttl time.Duration) *Resource[T] {
	return &Resource[T]{ttl: ttl}
}

// Get returns the current snapshot, fetching when none exists or the TTL has
// lapsed. Fetches are serialized: concurrent readers of an expired resource
// wait for one fetch rather than issuing their own.
func (r *Resource[T]) Get(ctx context.Context, fetch func(context.Context) (T, error)) (Snapshot[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ok && r.ttl > 0 && time.Since(r.fetchedAt) < r.ttl {
		return Snapshot[T]{Data: r.data, FetchedAt: r.fetchedAt}, nil
	}

	data, err := fetch(ctx)
	if err != nil {
		if r.ok {
			// Keep stale data visible instead of blanking the view.
			return Snapshot[T]{Data: r.data, FetchedAt: r.fetchedAt, Stale: true, RefreshErr: err}, nil
		}
		var zero Snapshot[T]
		return zero, err
	}

	r.data = data
	r.ok = true
	r.fetchedAt = time.Now()
	return Snapshot[T]{Data: r.data, FetchedAt: r.fetchedAt}, nil
}

// Patch applies an optimistic local update to the current snapshot, if any.
// The next TTL expiry re-syncs with the source of truth.
func (r *Resource[T]) Patch(apply func(T) T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ok {
		return
	}
	r.data = apply(r.data)
}

// Invalidate forces the next Get to fetch.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ok = false
	var zero T
	r.data = zero
}
