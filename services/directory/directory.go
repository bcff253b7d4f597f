package directory

import (
	"context"
	"time"

	"servyadmin/backend"
	"servyadmin/models"
	"servyadmin/views"
)

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Backend  backend.Client
	PageSize int

	providers *views.Resource[[]models.ProviderSummary]
}

// NewDefaultDirectoryService wires the service with a snapshot holder.
func NewDefaultDirectoryService(client backend.Client, pageSize int, snapshotTTL time.Duration) *DefaultDirectoryService {
	return &DefaultDirectoryService{
		Backend:   client,
		PageSize:  pageSize,
		providers: views.NewResource[[]models.ProviderSummary](snapshotTTL),
	}
}

func (s *DefaultDirectoryService) List(ctx context.Context, q Query) (*ListResult, bool, error) {
	snap, err := s.providers.Get(ctx, s.Backend.Providers)
	if err != nil {
		return nil, false, err
	}

	filtered := views.FilterStatus(snap.Data, q.Status, summaryStatus)
	filtered = views.Search(filtered, q.Search, func(p models.ProviderSummary) []string {
		return []string{p.Name, p.Email}
	})

	page := views.Paginate(len(filtered), s.PageSize, q.Page)
	return &ListResult{
		Providers: views.PageSlice(filtered, page),
		Page:      page,
	}, snap.Stale, nil
}

func (s *DefaultDirectoryService) Details(ctx context.Context, id int64) (*models.ProviderDetails, error) {
	return s.Backend.ProviderDetails(ctx, id)
}

// summaryStatus maps the directory row's verified flag onto the status
// vocabulary the filter dropdown uses.
func summaryStatus(p models.ProviderSummary) string {
	if p.Verified {
		return models.VerificationVerified
	}
	return models.VerificationPending
}
