package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servyadmin/backend"
	"servyadmin/models"
	"servyadmin/services/verification"
	"servyadmin/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerificationService struct {
	queue      *verification.QueuePage
	counts     *models.VerificationCounts
	stale      bool
	loadErr    error
	approveErr error
	rejectErr  error

	approvedID int64
	rejected   []string
}

func (f *fakeVerificationService) Pending(ctx context.Context, page int) (*verification.QueuePage, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	return f.queue, f.stale, nil
}

func (f *fakeVerificationService) Counts(ctx context.Context) (*models.VerificationCounts, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	return f.counts, f.stale, nil
}

func (f *fakeVerificationService) Approve(ctx context.Context, id int64) error {
	f.approvedID = id
	return f.approveErr
}

func (f *fakeVerificationService) Reject(ctx context.Context, id int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return verification.ErrReasonRequired
	}
	f.rejected = append(f.rejected, reason)
	return f.rejectErr
}

func newVerificationRouter(svc verification.VerificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	vh := NewVerificationHandler(svc)
	r.GET("/api/verification/pending", vh.PendingHandler)
	r.PUT("/api/verification/:id/approve", vh.ApproveHandler)
	r.PUT("/api/verification/:id/reject", vh.RejectHandler)
	return r
}

func TestPendingHandler_OK(t *testing.T) {
	svc := &fakeVerificationService{
		queue: &verification.QueuePage{
			Providers: []models.PendingProvider{{ID: 1, BusinessName: "Dyno Movers"}},
			Page:      views.Paginate(1, 6, 1),
		},
	}
	r := newVerificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/verification/pending?page=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dyno Movers")
	assert.Contains(t, w.Body.String(), `"stale":false`)
}

func TestPendingHandler_BackendDown(t *testing.T) {
	svc := &fakeVerificationService{loadErr: &backend.RequestError{URL: "http://127.0.0.1:5000/api/admin/providers/pending", Err: assert.AnError}}
	r := newVerificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/verification/pending", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"retryable":true`)
}

func TestApproveHandler(t *testing.T) {
	svc := &fakeVerificationService{}
	r := newVerificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/verification/42/approve", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), svc.approvedID)
}

func TestApproveHandler_InvalidID(t *testing.T) {
	svc := &fakeVerificationService{}
	r := newVerificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/verification/abc/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveHandler_MutationInFlight(t *testing.T) {
	svc := &fakeVerificationService{approveErr: views.ErrMutationInFlight}
	r := newVerificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/verification/42/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRejectHandler_RequiresReason(t *testing.T) {
	svc := &fakeVerificationService{}
	r := newVerificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/verification/42/reject", strings.NewReader(`{"reason":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Rejection reason is required")
	assert.Empty(t, svc.rejected)
}

func TestRejectHandler_OK(t *testing.T) {
	svc := &fakeVerificationService{}
	r := newVerificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/verification/42/reject", strings.NewReader(`{"reason":"documents unreadable"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"documents unreadable"}, svc.rejected)
}
