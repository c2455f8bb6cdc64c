package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplekit/leave-backend-go/internal/domain/leave"
)

// stubLeaveService returns canned results per operation.
type stubLeaveService struct {
	submitResult  leave.LeaveRequest
	submitErr     error
	cancelResult  leave.LeaveRequest
	cancelErr     error
	approveResult leave.LeaveRequest
	approveErr    error
	rejectResult  leave.LeaveRequest
	rejectErr     error
	statusResult  []leave.LeaveRequest
	statusErr     error
	balanceResult float64
	balanceErr    error
}

func (s *stubLeaveService) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	return s.submitResult, s.submitErr
}

func (s *stubLeaveService) Cancel(ctx context.Context, req leave.CancelRequest) (leave.LeaveRequest, error) {
	return s.cancelResult, s.cancelErr
}

func (s *stubLeaveService) Approve(ctx context.Context, req leave.ApproveRequest) (leave.LeaveRequest, error) {
	return s.approveResult, s.approveErr
}

func (s *stubLeaveService) Reject(ctx context.Context, req leave.RejectRequest) (leave.LeaveRequest, error) {
	return s.rejectResult, s.rejectErr
}

func (s *stubLeaveService) GetStatus(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return s.statusResult, s.statusErr
}

func (s *stubLeaveService) GetBalance(ctx context.Context, userID string) (float64, error) {
	return s.balanceResult, s.balanceErr
}

func sampleRequest(status leave.RequestStatus) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        "req-1",
		UserID:    "user-1",
		LeaveType: "Annual Leave",
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		Status:    status,
		Reason:    "Spring holiday",
	}
}

func leaveTestRouter(svc leave.Service) *chi.Mux {
	handler := NewLeaveHandler(svc)
	r := chi.NewRouter()
	r.Route("/leave-requests", func(r chi.Router) {
		r.Post("/", handler.Submit)
		r.Delete("/", handler.Cancel)
		r.Patch("/approve", handler.Approve)
		r.Patch("/reject", handler.Reject)
		r.Get("/status/{userID}", handler.GetStatus)
		r.Get("/remaining/{userID}", handler.GetBalance)
	})
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLeaveHandler_Submit_Success(t *testing.T) {
	svc := &stubLeaveService{submitResult: sampleRequest(leave.StatusPending)}
	router := leaveTestRouter(svc)

	payload, _ := json.Marshal(leave.SubmitRequest{
		UserID:    "user-1",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
	})
	req := httptest.NewRequest(http.MethodPost, "/leave-requests", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "req-1", data["leaveRequestID"])
	assert.Equal(t, "Pending", data["status"])
	assert.Equal(t, "2026-03-02", data["startDate"])
	assert.Equal(t, "2026-03-06", data["endDate"])
}

func TestLeaveHandler_Submit_InvalidJSON(t *testing.T) {
	router := leaveTestRouter(&stubLeaveService{})

	req := httptest.NewRequest(http.MethodPost, "/leave-requests", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errBody, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Invalid request format", errBody["message"])
	assert.Equal(t, float64(http.StatusBadRequest), errBody["status"])
	assert.NotEmpty(t, errBody["timestamp"])
}

func TestLeaveHandler_Submit_Overlap(t *testing.T) {
	svc := &stubLeaveService{submitErr: leave.ErrOverlappingRequest}
	router := leaveTestRouter(svc)

	payload, _ := json.Marshal(leave.SubmitRequest{
		UserID:    "user-1",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
	})
	req := httptest.NewRequest(http.MethodPost, "/leave-requests", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLeaveHandler_Cancel_StateError(t *testing.T) {
	svc := &stubLeaveService{cancelErr: &leave.StateError{Current: leave.StatusCancelled, Action: "cancelled"}}
	router := leaveTestRouter(svc)

	payload, _ := json.Marshal(leave.CancelRequest{UserID: "user-1", LeaveRequestID: "req-1"})
	req := httptest.NewRequest(http.MethodDelete, "/leave-requests", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "Leave request has status: Cancelled. Cannot be cancelled.", errBody["message"])
}

func TestLeaveHandler_Approve_Success(t *testing.T) {
	svc := &stubLeaveService{approveResult: sampleRequest(leave.StatusApproved)}
	router := leaveTestRouter(svc)

	payload, _ := json.Marshal(leave.ApproveRequest{UserID: "user-1", LeaveRequestID: "req-1"})
	req := httptest.NewRequest(http.MethodPatch, "/leave-requests/approve", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Approved", data["status"])
}

func TestLeaveHandler_Reject_NotFound(t *testing.T) {
	svc := &stubLeaveService{rejectErr: leave.ErrRequestNotFound}
	router := leaveTestRouter(svc)

	payload, _ := json.Marshal(leave.RejectRequest{UserID: "user-1", LeaveRequestID: "missing", Reason: "Capacity"})
	req := httptest.NewRequest(http.MethodPatch, "/leave-requests/reject", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaveHandler_GetStatus_Success(t *testing.T) {
	svc := &stubLeaveService{statusResult: []leave.LeaveRequest{sampleRequest(leave.StatusPending)}}
	router := leaveTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/leave-requests/status/user-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	entry := data[0].(map[string]interface{})
	assert.Equal(t, "req-1", entry["leaveRequestID"])
	assert.Equal(t, "Pending", entry["status"])
}

func TestLeaveHandler_GetStatus_Empty(t *testing.T) {
	svc := &stubLeaveService{statusErr: leave.ErrNoRequestsFound}
	router := leaveTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/leave-requests/status/user-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaveHandler_GetBalance(t *testing.T) {
	svc := &stubLeaveService{balanceResult: 17.5}
	router := leaveTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/leave-requests/remaining/user-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 17.5, data["leaveBalance"])
}
