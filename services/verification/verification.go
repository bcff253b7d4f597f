package verification

import (
	"context"
	"strings"
	"time"

	"servyadmin/backend"
	"servyadmin/models"
	"servyadmin/views"

	"go.uber.org/zap"
)

// DefaultVerificationService is the production implementation.
type DefaultVerificationService struct {
	Backend  backend.Client
	PageSize int

	pending *views.Resource[[]models.PendingProvider]
	counts  *views.Resource[*models.VerificationCounts]
	guard   *views.Guard
}

// NewDefaultVerificationService wires the service with its snapshot holders
// and the per-application mutation guard.
func NewDefaultVerificationService(client backend.Client, pageSize int, snapshotTTL time.Duration) *DefaultVerificationService {
	return &DefaultVerificationService{
		Backend:  client,
		PageSize: pageSize,
		pending:  views.NewResource[[]models.PendingProvider](snapshotTTL),
		counts:   views.NewResource[*models.VerificationCounts](snapshotTTL),
		guard:    views.NewGuard(),
	}
}

func (s *DefaultVerificationService) Pending(ctx context.Context, page int) (*QueuePage, bool, error) {
	snap, err := s.pending.Get(ctx, s.Backend.PendingProviders)
	if err != nil {
		return nil, false, err
	}

	p := views.Paginate(len(snap.Data), s.PageSize, page)
	return &QueuePage{
		Providers: views.PageSlice(snap.Data, p),
		Page:      p,
	}, snap.Stale, nil
}

func (s *DefaultVerificationService) Counts(ctx context.Context) (*models.VerificationCounts, bool, error) {
	snap, err := s.counts.Get(ctx, s.Backend.VerificationCounts)
	if err != nil {
		return nil, false, err
	}
	return snap.Data, snap.Stale, nil
}

func (s *DefaultVerificationService) Approve(ctx context.Context, id int64) error {
	return s.decide(ctx, id, models.VerificationApproved, "")
}

func (s *DefaultVerificationService) Reject(ctx context.Context, id int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return s.decide(ctx, id, models.VerificationRejected, reason)
}

// decide issues the verify call under the per-id guard. On success the local
// snapshots are patched; on failure they are left untouched so the queue
// still shows the application and the decision can be retried.
func (s *DefaultVerificationService) decide(ctx context.Context, id int64, status, notes string) error {
	return s.guard.Do(id, func() error {
		if err := s.Backend.VerifyProvider(ctx, id, status, notes); err != nil {
			return err
		}

		zap.L().Info("provider verification decided",
			zap.Int64("provider_id", id),
			zap.String("status", status))

		s.pending.Patch(func(list []models.PendingProvider) []models.PendingProvider {
			out := make([]models.PendingProvider, 0, len(list))
			for _, p := range list {
				if p.ID != id {
					out = append(out, p)
				}
			}
			return out
		})

		s.counts.Patch(func(c *models.VerificationCounts) *models.VerificationCounts {
			patched := *c
			if patched.Pending.Count > 0 {
				patched.Pending.Count--
			}
			switch status {
			case models.VerificationApproved:
				patched.Approved.Count++
			case models.VerificationRejected:
				patched.Rejected.Count++
			}
			recomputePercentages(&patched)
			return &patched
		})

		return nil
	})
}

// recomputePercentages rederives the percentage fields from the patched
// counts in one pass, instead of nudging each percentage by hand.
func recomputePercentages(c *models.VerificationCounts) {
	decided := c.Pending.Count + c.Approved.Count + c.Rejected.Count
	if decided == 0 {
		c.Pending.Percentage = 0
		c.Approved.Percentage = 0
		c.Rejected.Percentage = 0
		return
	}
	c.Pending.Percentage = 100 * float64(c.Pending.Count) / float64(decided)
	c.Approved.Percentage = 100 * float64(c.Approved.Count) / float64(decided)
	c.Rejected.Percentage = 100 * float64(c.Rejected.Count) / float64(decided)
}
