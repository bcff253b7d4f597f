package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"servyadmin/models"
)

// HTTPClient talks to the platform backend over HTTP JSON.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a backend client. baseURL has no trailing slash.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

const bodySnippetLimit = 512

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body for %s: %w", url, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(raw)
		if len(snippet) > bodySnippetLimit {
			snippet = snippet[:bodySnippetLimit]
		}
		return nil, &StatusError{URL: url, Code: resp.StatusCode, Body: snippet}
	}

	return raw, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{URL: c.baseURL + path, Err: err}
	}
	return nil
}

func (c *HTTPClient) putJSON(ctx context.Context, path string, body any) error {
	_, err := c.do(ctx, http.MethodPut, path, body)
	return err
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getJSON(ctx, "/api/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) RecentActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := c.getJSON(ctx, "/api/activities/recent", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *HTTPClient) TopServices(ctx context.Context) ([]models.TopService, error) {
	var services []models.TopService
	if err := c.getJSON(ctx, "/api/services/top", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *HTTPClient) LatestReviews(ctx context.Context) ([]models.ReviewSummary, error) {
	var reviews []models.ReviewSummary
	if err := c.getJSON(ctx, "/api/reviews/latest", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *HTTPClient) TopProviders(ctx context.Context) ([]models.TopProvider, error) {
	var providers []models.TopProvider
	if err := c.getJSON(ctx, "/api/providers/top", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *HTTPClient) MonthlyCompletedBookings(ctx context.Context) ([]models.MonthlyBooking, error) {
	var bookings []models.MonthlyBooking
	if err := c.getJSON(ctx, "/api/bookings/monthly-completed", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Providers tolerates both payload shapes the backend has shipped: a bare
// array, or an object with a "providers" key.
func (c *HTTPClient) Providers(ctx context.Context) ([]models.ProviderSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/providers", nil)
	if err != nil {
		return nil, err
	}

	var providers []models.ProviderSummary
	if err := json.Unmarshal(raw, &providers); err == nil {
		return providers, nil
	}

	var wrapped struct {
		Providers []models.ProviderSummary `json:"providers"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, &DecodeError{URL: c.baseURL + "/api/providers", Err: err}
	}
	return wrapped.Providers, nil
}

func (c *HTTPClient) ProviderDetails(ctx context.Context, id int64) (*models.ProviderDetails, error) {
	var details models.ProviderDetails
	if err := c.getJSON(ctx, fmt.Sprintf("/api/admin/provider/%d/details", id), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *HTTPClient) PendingProviders(ctx context.Context) ([]models.PendingProvider, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/admin/providers/pending", nil)
	if err != nil {
		return nil, err
	}

	var providers []models.PendingProvider
	if err := json.Unmarshal(raw, &providers); err == nil {
		return providers, nil
	}

	var wrapped struct {
		Providers []models.PendingProvider `json:"providers"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, &DecodeError{URL: c.baseURL + "/api/admin/providers/pending", Err: err}
	}
	return wrapped.Providers, nil
}

func (c *HTTPClient) VerificationCounts(ctx context.Context) (*models.VerificationCounts, error) {
	var counts models.VerificationCounts
	if err := c.getJSON(ctx, "/api/admin/verification/counts", &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (c *HTTPClient) VerifyProvider(ctx context.Context, id int64, status, notes string) error {
	body := map[string]string{
		"status": status,
		"notes":  notes,
	}
	return c.putJSON(ctx, fmt.Sprintf("/api/admin/provider/%d/verify", id), body)
}

func (c *HTTPClient) Reports(ctx context.Context) ([]models.Report, error) {
	var wrapped struct {
		Reports []models.Report `json:"reports"`
	}
	if err := c.getJSON(ctx, "/api/provider/reports", &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Reports, nil
}

func (c *HTTPClient) UpdateReportStatus(ctx context.Context, id int64, status, notes string) error {
	body := map[string]string{
		"status":      status,
		"admin_notes": notes,
	}
	return c.putJSON(ctx, fmt.Sprintf("/api/provider/report/%d/status", id), body)
}

func (c *HTTPClient) ReportVideoURL(id int64) string {
	return fmt.Sprintf("%s/api/provider/report/%d/video", c.baseURL, id)
}

// Ping checks reachability only; any HTTP response counts as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &RequestError{URL: c.baseURL + "/", Err: err}
	}
	resp.Body.Close()
	return nil
}
