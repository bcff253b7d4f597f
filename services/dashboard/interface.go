package dashboard

import (
	"context"

	"servyadmin/models"
)

// ActivityView is an activity feed entry with its relative time rendered.
type ActivityView struct {
	models.Activity
	TimeAgo string `json:"time_ago,omitempty"`
}

// TopProviderView is a top-provider row with the completed-bookings share
// against the leading provider, the ratio the UI draws as a progress bar.
type TopProviderView struct {
	models.TopProvider
	CompletedShare float64 `json:"completed_share"`
}

// Overview bundles the six landing-page aggregates. Each field is populated
// by its own backend request; a request only ever writes its own field.
type Overview struct {
	Stats            models.DashboardStats   `json:"stats"`
	RecentActivities []ActivityView          `json:"recent_activities"`
	TopServices      []models.TopService     `json:"top_services"`
	LatestReviews    []models.ReviewSummary  `json:"latest_reviews"`
	TopProviders     []TopProviderView       `json:"top_providers"`
	MonthlyBookings  []models.MonthlyBooking `json:"monthly_bookings"`
}

// DashboardService serves the landing-page overview.
type DashboardService interface {
	// Overview returns the current overview snapshot. The boolean reports
	// whether the snapshot is stale (the last refresh failed and older data
	// is being served instead).
	Overview(ctx context.Context) (*Overview, bool, error)
}
