package verification

import (
	"context"
	"errors"

	"servyadmin/models"
	"servyadmin/views"
)

// ErrReasonRequired is returned when a rejection is attempted without a
// reason. The check happens before any network call.
var ErrReasonRequired = errors.New("a rejection reason is required")

// QueuePage is one page of the pending-applications queue.
type QueuePage struct {
	Providers []models.PendingProvider `json:"providers"`
	Page      views.Page               `json:"page"`
}

// VerificationService serves the verification queue and carries out
// approve/reject decisions against the backend.
type VerificationService interface {
	Pending(ctx context.Context, page int) (*QueuePage, bool, error)
	Counts(ctx context.Context) (*models.VerificationCounts, bool, error)

	// Approve marks the application approved. No notes are required.
	Approve(ctx context.Context, id int64) error
	// Reject marks the application rejected. A non-empty reason is required;
	// without one no backend call is made.
	Reject(ctx context.Context, id int64, reason string) error
}
