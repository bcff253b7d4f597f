package backend

import (
	"context"

	"servyadmin/models"
)

// Client is the typed surface of the platform REST backend consumed by the
// admin gateway. Implementations issue one HTTP request per call and never
// retry on their own.
type Client interface {
	// Dashboard aggregates.
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	RecentActivities(ctx context.Context) ([]models.Activity, error)
	TopServices(ctx context.Context) ([]models.TopService, error)
	LatestReviews(ctx context.Context) ([]models.ReviewSummary, error)
	TopProviders(ctx context.Context) ([]models.TopProvider, error)
	MonthlyCompletedBookings(ctx context.Context) ([]models.MonthlyBooking, error)

	// Provider directory.
	Providers(ctx context.Context) ([]models.ProviderSummary, error)
	ProviderDetails(ctx context.Context, id int64) (*models.ProviderDetails, error)

	// Verification queue.
	PendingProviders(ctx context.Context) ([]models.PendingProvider, error)
	VerificationCounts(ctx context.Context) (*models.VerificationCounts, error)
	VerifyProvider(ctx context.Context, id int64, status, notes string) error

	// Provider reports.
	Reports(ctx context.Context) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, id int64, status, notes string) error

	// ReportVideoURL returns the address of a report's video evidence. The
	// video is opened by the browser, never fetched by the gateway.
	ReportVideoURL(id int64) string

	// Ping checks transport-level reachability of the backend.
	Ping(ctx context.Context) error
}
