package models

// Verification statuses are a closed enumeration on the backend, but the
// gateway treats unknown values defensively rather than rejecting them.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// ProviderSummary is a directory row from GET /api/providers.
type ProviderSummary struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Verified      bool     `json:"verified"`
	Rating        float64  `json:"rating,omitempty"`
	Services      []string `json:"services,omitempty"`
	CompletedJobs int      `json:"completed_jobs,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// PendingProvider is a verification-queue row from GET /api/admin/providers/pending.
type PendingProvider struct {
	ID              int64  `json:"id"`
	BusinessName    string `json:"business_name"`
	OwnerName       string `json:"owner_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	ServiceCategory string `json:"service_category"`
	CustomCategory  string `json:"custom_category,omitempty"`
	CategoryDisplay string `json:"category_display,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// Rating is the aggregate rating attached to a provider.
type Rating struct {
	TotalRating float64 `json:"total_rating"`
	RatingCount int     `json:"rating_count"`
}

// ProviderInfo is the provider block of the admin detail payload.
type ProviderInfo struct {
	ID                 int64  `json:"id"`
	BusinessPhoto      string `json:"business_photo,omitempty"`
	BusinessName       string `json:"business_name"`
	OwnerName          string `json:"owner_name"`
	ServiceCategory    string `json:"service_category"`
	CustomCategory     string `json:"custom_category,omitempty"`
	CategoryDisplay    string `json:"category_display"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phone_number"`
	VerificationStatus string `json:"verification_status"`
	VerificationNotes  string `json:"verification_notes,omitempty"`
	CreatedAt          string `json:"created_at"`
	Rating             Rating `json:"rating"`
}

// ProviderStatistics aggregates a provider's activity for the detail view.
type ProviderStatistics struct {
	Services struct {
		Total int `json:"total"`
	} `json:"services"`
	Bookings struct {
		Total          int     `json:"total"`
		Completed      int     `json:"completed"`
		Cancelled      int     `json:"cancelled"`
		CompletionRate float64 `json:"completion_rate"`
	} `json:"bookings"`
	Reports struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
	} `json:"reports"`
}

// ProviderTimestamps carries registration recency for the detail view.
type ProviderTimestamps struct {
	RegisteredAt          string `json:"registered_at"`
	DaysSinceRegistration int    `json:"days_since_registration"`
}

// ProviderDetails is the full payload of GET /api/admin/provider/{id}/details.
type ProviderDetails struct {
	Provider   ProviderInfo       `json:"provider"`
	Statistics ProviderStatistics `json:"statistics"`
	Timestamps ProviderTimestamps `json:"timestamps"`
}

// StatusBucket is one status slice of the verification aggregate.
type StatusBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	ThisWeek   int     `json:"this_week,omitempty"`
}

// VerificationCounts is the server-side aggregate from
// GET /api/admin/verification/counts. The gateway never writes it upstream;
// it only patches its own copy after a verify action.
type VerificationCounts struct {
	TotalProviders int          `json:"total_providers"`
	Pending        StatusBucket `json:"pending"`
	Approved       StatusBucket `json:"approved"`
	Rejected       StatusBucket `json:"rejected"`
}
