package views

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_SecondAttemptRejected(t *testing.T) {
	g := NewGuard()

	started := make(chan struct{})
	release := make(chan struct{})

	var firstErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = g.Do(42, func() error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	assert.True(t, g.Busy(42))

	err := g.Do(42, func() error {
		t.Error("second mutation must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrMutationInFlight)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.False(t, g.Busy(42))
}

func TestGuard_DifferentIDsIndependent(t *testing.T) {
	g := NewGuard()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = g.Do(1, func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// A mutation for another id proceeds while 1 is in flight.
	err := g.Do(2, func() error { return nil })
	assert.NoError(t, err)

	close(release)
}

func TestGuard_ReleasedAfterFailure(t *testing.T) {
	g := NewGuard()

	err := g.Do(7, func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)

	// The id is usable again after a failed mutation.
	err = g.Do(7, func() error { return nil })
	assert.NoError(t, err)
}

func TestGuard_ConcurrentSameID(t *testing.T) {
	g := NewGuard()

	var ran int32
	var rejected int32
	var wg sync.WaitGroup
	gate := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.Do(5, func() error {
				atomic.AddInt32(&ran, 1)
				<-gate
				return nil
			})
			if err != nil {
				atomic.AddInt32(&rejected, 1)
			}
		}()
	}

	// Let the winner through once everyone has attempted.
	for atomic.LoadInt32(&ran)+atomic.LoadInt32(&rejected) < 8 {
	}
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), ran)
	assert.Equal(t, int32(7), rejected)
}
