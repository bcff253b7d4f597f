package models

// Report statuses as the backend enumerates them.
const (
	ReportReviewed  = "reviewed"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// Report is a user complaint against a provider, from GET /api/provider/reports.
// Reporter and provider names are denormalized into the row by the backend.
type Report struct {
	ID            int64  `json:"id"`
	ProviderID    int64  `json:"provider_id"`
	UserID        int64  `json:"user_id"`
	Reason        string `json:"reason"`
	Description   string `json:"description"`
	HasVideo      bool   `json:"has_video"`
	Status        string `json:"status"`
	AdminNotes    string `json:"admin_notes,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	ReporterName  string `json:"reporter_name"`
	ReporterEmail string `json:"reporter_email"`
	ProviderName  string `json:"provider_name"`
}
