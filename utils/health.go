package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger reports whether an upstream dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Backend   bool      `json:"backend"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic backend reachability checks and
// updates in-memory state.
func StartHealthMonitor(backend Pinger) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			reachable := backend.Ping(ctx) == nil
			cancel()

			healthMu.Lock()
			currentHealth = HealthStatus{
				Backend:   reachable,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
