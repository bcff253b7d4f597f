package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_ColdFetchError(t *testing.T) {
	r := NewResource[[]int](time.Minute)
	boom := errors.New("backend unreachable")

	_, err := r.Get(context.Background(), func(context.Context) ([]int, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestResource_ServesWithinTTL(t *testing.T) {
	r := NewResource[[]int](time.Minute)
	calls := 0
	fetch := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	snap, err := r.Get(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, snap.Data)
	assert.False(t, snap.Stale)

	// Second read within the TTL does not hit the source.
	snap, err = r.Get(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, snap.Data)
	assert.Equal(t, 1, calls)
}

func TestResource_StaleOnRefreshFailure(t *testing.T) {
	r := NewResource[[]int](time.Nanosecond)
	boom := errors.New("refresh failed")

	_, err := r.Get(context.Background(), func(context.Context) ([]int, error) {
		return []int{7}, nil
	})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	snap, err := r.Get(context.Background(), func(context.Context) ([]int, error) {
		return nil, boom
	})
	require.NoError(t, err)
	assert.True(t, snap.Stale)
	assert.ErrorIs(t, snap.RefreshErr, boom)
	assert.Equal(t, []int{7}, snap.Data)
}

func TestResource_ZeroTTLAlwaysRefreshes(t *testing.T) {
	r := NewResource[int](0)
	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	snap, err := r.Get(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Data)

	snap, err = r.Get(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Data)
}

func TestResource_Patch(t *testing.T) {
	r := NewResource[[]int](time.Minute)

	// Patch before any snapshot exists is a no-op.
	r.Patch(func(xs []int) []int { return append(xs, 99) })

	_, err := r.Get(context.Background(), func(context.Context) ([]int, error) {
		return []int{1, 2}, nil
	})
	require.NoError(t, err)

	r.Patch(func(xs []int) []int { return append(xs, 3) })

	snap, err := r.Get(context.Background(), func(context.Context) ([]int, error) {
		t.Fatal("unexpected fetch within TTL")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, snap.Data)
}

func TestResource_Invalidate(t *testing.T) {
	r := NewResource[int](time.Hour)

	_, err := r.Get(context.Background(), func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	r.Invalidate()

	snap, err := r.Get(context.Background(), func(context.Context) (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Data)
}
