package report

import (
	"context"
	"errors"

	"servyadmin/models"
)

// ErrInvalidStatus is returned when a status update names a status outside
// the reviewed/resolved/dismissed set. No backend call is made.
var ErrInvalidStatus = errors.New("status must be reviewed, resolved or dismissed")

// Stats are the stat-card tallies over the full (unfiltered) report list.
type Stats struct {
	Total         int `json:"total"`
	PendingReview int `json:"pending_review"`
	Resolved      int `json:"resolved"`
	Dismissed     int `json:"dismissed"`
}

// ListResult is the filtered report list plus the stat cards.
type ListResult struct {
	Reports []models.Report `json:"reports"`
	Stats   Stats           `json:"stats"`
}

// ReportService serves provider reports and status updates.
type ReportService interface {
	List(ctx context.Context, statusFilter string) (*ListResult, bool, error)
	UpdateStatus(ctx context.Context, id int64, status, adminNotes string) error
	// VideoURL returns the address of a report's video evidence for the
	// browser to open; the gateway never fetches it.
	VideoURL(id int64) string
}
