package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"servyadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	reports    []models.Report
	reportsErr error
	updateErr  error
	updates    []updateCall
}

type updateCall struct {
	ID     int64
	Status string
	Notes  string
}

func (f *fakeBackend) Reports(ctx context.Context) ([]models.Report, error) {
	return f.reports, f.reportsErr
}

func (f *fakeBackend) UpdateReportStatus(ctx context.Context, id int64, status, notes string) error {
	f.updates = append(f.updates, updateCall{ID: id, Status: status, Notes: notes})
	return f.updateErr
}

func (f *fakeBackend) ReportVideoURL(id int64) string {
	return "http://127.0.0.1:5000/api/provider/report/7/video"
}

// Unused Client methods.
func (f *fakeBackend) DashboardStats(context.Context) (*models.DashboardStats, error) {
	return nil, nil
}
func (f *fakeBackend) RecentActivities(context.Context) ([]models.Activity, error) { return nil, nil }
func (f *fakeBackend) TopServices(context.Context) ([]models.TopService, error)   { return nil, nil }
func (f *fakeBackend) LatestReviews(context.Context) ([]models.ReviewSummary, error) {
	return nil, nil
}
func (f *fakeBackend) TopProviders(context.Context) ([]models.TopProvider, error) { return nil, nil }
func (f *fakeBackend) MonthlyCompletedBookings(context.Context) ([]models.MonthlyBooking, error) {
	return nil, nil
}
func (f *fakeBackend) Providers(context.Context) ([]models.ProviderSummary, error) {
	return nil, nil
}
func (f *fakeBackend) ProviderDetails(context.Context, int64) (*models.ProviderDetails, error) {
	return nil, nil
}
func (f *fakeBackend) PendingProviders(context.Context) ([]models.PendingProvider, error) {
	return nil, nil
}
func (f *fakeBackend) VerificationCounts(context.Context) (*models.VerificationCounts, error) {
	return nil, nil
}
func (f *fakeBackend) VerifyProvider(context.Context, int64, string, string) error { return nil }
func (f *fakeBackend) Ping(context.Context) error                                  { return nil }

func reportsFixture() []models.Report {
	return []models.Report{
		{ID: 1, Status: models.ReportReviewed, Reason: "no-show"},
		{ID: 2, Status: models.ReportResolved, Reason: "overcharge"},
		{ID: 3, Status: models.ReportReviewed, Reason: "damage"},
		{ID: 4, Status: models.ReportDismissed, Reason: "spam"},
	}
}

func TestList_StatsCoverFullList(t *testing.T) {
	fb := &fakeBackend{reports: reportsFixture()}
	svc := NewDefaultReportService(fb, time.Minute)

	// Filtering the table must not shrink the stat cards.
	result, stale, err := svc.List(context.Background(), models.ReportResolved)
	require.NoError(t, err)
	assert.False(t, stale)

	require.Len(t, result.Reports, 1)
	assert.Equal(t, int64(2), result.Reports[0].ID)

	assert.Equal(t, 4, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.PendingReview)
	assert.Equal(t, 1, result.Stats.Resolved)
	assert.Equal(t, 1, result.Stats.Dismissed)
}

func TestList_AllFilter(t *testing.T) {
	fb := &fakeBackend{reports: reportsFixture()}
	svc := NewDefaultReportService(fb, time.Minute)

	result, _, err := svc.List(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, result.Reports, 4)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	fb := &fakeBackend{reports: reportsFixture()}
	svc := NewDefaultReportService(fb, time.Minute)

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 1, "escalated", ""), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 1, "", ""), ErrInvalidStatus)
	assert.Empty(t, fb.updates)
}

func TestUpdateStatus_NormalizesAndPatchesRow(t *testing.T) {
	fb := &fakeBackend{reports: reportsFixture()}
	svc := NewDefaultReportService(fb, time.Minute)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	_, _, err := svc.List(context.Background(), "all")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), 3, " Resolved ", "replaced item"))

	require.Len(t, fb.updates, 1)
	assert.Equal(t, updateCall{ID: 3, Status: "resolved", Notes: "replaced item"}, fb.updates[0])

	result, _, err := svc.List(context.Background(), "all")
	require.NoError(t, err)
	var row models.Report
	for _, r := range result.Reports {
		if r.ID == 3 {
			row = r
		}
	}
	assert.Equal(t, models.ReportResolved, row.Status)
	assert.Equal(t, "replaced item", row.AdminNotes)
	assert.Equal(t, fixed.Format(time.RFC3339), row.UpdatedAt)

	// The cards follow the patched statuses.
	assert.Equal(t, 1, result.Stats.PendingReview)
	assert.Equal(t, 2, result.Stats.Resolved)
}

func TestUpdateStatus_FailureLeavesSnapshotUntouched(t *testing.T) {
	fb := &fakeBackend{reports: reportsFixture()}
	svc := NewDefaultReportService(fb, time.Minute)

	_, _, err := svc.List(context.Background(), "all")
	require.NoError(t, err)

	fb.updateErr = errors.New("backend down")
	require.Error(t, svc.UpdateStatus(context.Background(), 1, "dismissed", ""))

	result, _, err := svc.List(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, models.ReportReviewed, result.Reports[0].Status)
}

func TestVideoURL_Passthrough(t *testing.T) {
	fb := &fakeBackend{}
	svc := NewDefaultReportService(fb, time.Minute)
	assert.Equal(t, "http://127.0.0.1:5000/api/provider/report/7/video", svc.VideoURL(7))
}
