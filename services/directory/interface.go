package directory

import (
	"context"

	"servyadmin/models"
	"servyadmin/views"
)

// Query narrows the provider directory. Status is "all", "verified" or
// "pending"; Search matches name and email as a case-insensitive substring.
type Query struct {
	Status string
	Search string
	Page   int
}

// ListResult is one page of the filtered directory.
type ListResult struct {
	Providers []models.ProviderSummary `json:"providers"`
	Page      views.Page               `json:"page"`
}

// DirectoryService serves the provider directory and per-provider detail
// drill-downs.
type DirectoryService interface {
	List(ctx context.Context, q Query) (*ListResult, bool, error)
	// Details fetches the rich detail payload for one provider. Each call
	// replaces any previous selection wholesale; fields of two providers are
	// never merged.
	Details(ctx context.Context, id int64) (*models.ProviderDetails, error)
}
