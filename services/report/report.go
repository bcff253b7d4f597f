package report

import (
	"context"
	"strings"
	"time"

	"servyadmin/backend"
	"servyadmin/models"
	"servyadmin/views"

	"go.uber.org/zap"
)

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Backend backend.Client

	reports *views.Resource[[]models.Report]
	guard   *views.Guard

	now func() time.Time
}

// NewDefaultReportService wires the service with a snapshot holder and the
// per-report mutation guard.
func NewDefaultReportService(client backend.Client, snapshotTTL time.Duration) *DefaultReportService {
	return &DefaultReportService{
		Backend: client,
		reports: views.NewResource[[]models.Report](snapshotTTL),
		guard:   views.NewGuard(),
		now:     time.Now,
	}
}

func (s *DefaultReportService) List(ctx context.Context, statusFilter string) (*ListResult, bool, error) {
	snap, err := s.reports.Get(ctx, s.Backend.Reports)
	if err != nil {
		return nil, false, err
	}

	// Stat cards tally the full list; the filter only narrows the table.
	counts := views.CountByStatus(snap.Data, reportStatus)
	stats := Stats{
		Total:         len(snap.Data),
		PendingReview: counts[models.ReportReviewed],
		Resolved:      counts[models.ReportResolved],
		Dismissed:     counts[models.ReportDismissed],
	}

	filtered := views.FilterStatus(snap.Data, statusFilter, reportStatus)
	return &ListResult{Reports: filtered, Stats: stats}, snap.Stale, nil
}

func (s *DefaultReportService) UpdateStatus(ctx context.Context, id int64, status, adminNotes string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case models.ReportReviewed, models.ReportResolved, models.ReportDismissed:
	default:
		return ErrInvalidStatus
	}

	return s.guard.Do(id, func() error {
		if err := s.Backend.UpdateReportStatus(ctx, id, status, adminNotes); err != nil {
			return err
		}

		zap.L().Info("report status updated",
			zap.Int64("report_id", id),
			zap.String("status", status))

		updatedAt := s.now().Format(time.RFC3339)
		s.reports.Patch(func(list []models.Report) []models.Report {
			out := make([]models.Report, len(list))
			copy(out, list)
			for i := range out {
				if out[i].ID == id {
					out[i].Status = status
					out[i].AdminNotes = adminNotes
					out[i].UpdatedAt = updatedAt
					break
				}
			}
			return out
		})

		return nil
	})
}

func (s *DefaultReportService) VideoURL(id int64) string {
	return s.Backend.ReportVideoURL(id)
}

func reportStatus(r models.Report) string {
	return r.Status
}
