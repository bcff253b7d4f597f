package dashboard

import (
	"context"
	"time"

	"servyadmin/backend"
	"servyadmin/models"
	"servyadmin/utils"
	"servyadmin/views"

	"golang.org/x/sync/errgroup"
)

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Backend backend.Client

	overview *views.Resource[*Overview]

	// now is swappable for tests of relative-time rendering.
	now func() time.Time
}

// NewDefaultDashboardService wires the service with a snapshot holder.
func NewDefaultDashboardService(client backend.Client, snapshotTTL time.Duration) *DefaultDashboardService {
	return &DefaultDashboardService{
		Backend:  client,
		overview: views.NewResource[*Overview](snapshotTTL),
		now:      time.Now,
	}
}

func (s *DefaultDashboardService) Overview(ctx context.Context) (*Overview, bool, error) {
	snap, err := s.overview.Get(ctx, s.fetchOverview)
	if err != nil {
		return nil, false, err
	}
	return snap.Data, snap.Stale, nil
}

// fetchOverview issues the six aggregate requests concurrently. There is no
// ordering guarantee between them; each goroutine writes only its own field.
// Any failure fails the whole overview, since the landing page blocks on a
// load error.
func (s *DefaultDashboardService) fetchOverview(ctx context.Context) (*Overview, error) {
	var (
		ov         Overview
		activities []models.Activity
		providers  []models.TopProvider
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.Backend.DashboardStats(ctx)
		if err != nil {
			return err
		}
		ov.Stats = *stats
		return nil
	})
	g.Go(func() error {
		var err error
		activities, err = s.Backend.RecentActivities(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.TopServices, err = s.Backend.TopServices(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.LatestReviews, err = s.Backend.LatestReviews(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		providers, err = s.Backend.TopProviders(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.MonthlyBookings, err = s.Backend.MonthlyCompletedBookings(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ov.RecentActivities = s.buildActivityViews(activities)
	ov.TopProviders = buildTopProviderViews(providers)
	return &ov, nil
}

func (s *DefaultDashboardService) buildActivityViews(activities []models.Activity) []ActivityView {
	out := make([]ActivityView, 0, len(activities))
	now := s.now()
	for _, a := range activities {
		view := ActivityView{Activity: a}
		if t, ok := utils.ParseTimestamp(a.CreatedAt); ok {
			view.TimeAgo = utils.TimeAgo(t, now)
		}
		out = append(out, view)
	}
	return out
}

func buildTopProviderViews(providers []models.TopProvider) []TopProviderView {
	leader := 0
	for _, p := range providers {
		if p.Bookings.Completed > leader {
			leader = p.Bookings.Completed
		}
	}

	out := make([]TopProviderView, 0, len(providers))
	for _, p := range providers {
		view := TopProviderView{TopProvider: p}
		if leader > 0 {
			view.CompletedShare = float64(p.Bookings.Completed) / float64(leader)
		}
		out = append(out, view)
	}
	return out
}
