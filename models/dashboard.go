package models

// DashboardStats is the landing-page headline aggregate.
type DashboardStats struct {
	TotalUsers             int `json:"total_users"`
	TotalVerifiedProviders int `json:"total_verified_providers"`
	TotalCompletedServices int `json:"total_completed_services"`
	TotalActiveServices    int `json:"total_active_services"`
}

// Activity is one entry of the recent-activity feed. Booking entries carry
// booking fields, review entries carry rating fields.
type Activity struct {
	Type         string `json:"type"`
	ID           int64  `json:"id"`
	Status       string `json:"status,omitempty"`
	BookingDate  string `json:"booking_date,omitempty"`
	BookingTime  string `json:"booking_time,omitempty"`
	Rating       int    `json:"rating,omitempty"`
	ReviewText   string `json:"review_text,omitempty"`
	UserName     string `json:"user_name"`
	ServiceTitle string `json:"service_title"`
	ProviderName string `json:"provider_name"`
	CreatedAt    string `json:"created_at"`
}

// BookingTally pairs total and completed booking counts.
type BookingTally struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// TopService is a most-booked-services row.
type TopService struct {
	ID           int64        `json:"id"`
	ServiceTitle string       `json:"service_title"`
	Bookings     BookingTally `json:"bookings"`
	Growth       float64      `json:"growth"`
}

// ReviewSummary is a latest-reviews row.
type ReviewSummary struct {
	ID           int64  `json:"id"`
	ServiceTitle string `json:"service_title"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
}

// RatingSummary is the rating block of a top-provider row. Average is nil
// when the provider has no reviews yet.
type RatingSummary struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// TopProvider is a best-performing-providers row.
type TopProvider struct {
	Rank          int           `json:"rank"`
	ID            int64         `json:"id"`
	BusinessName  string        `json:"business_name"`
	BusinessPhoto string        `json:"business_photo,omitempty"`
	Category      string        `json:"category"`
	Rating        RatingSummary `json:"rating"`
	Bookings      BookingTally  `json:"bookings"`
}

// MonthlyBooking is one bar of the completed-bookings chart. Field casing
// follows the backend payload.
type MonthlyBooking struct {
	Month string `json:"Month"`
	Count int    `json:"Count"`
}
