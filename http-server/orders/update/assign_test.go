package update

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tekstil-golang/internal/service/assign"
	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/storage/mysql"
)

type MockAssigner struct {
	mock.Mock
}

func (m *MockAssigner) Assign(ctx context.Context, orderID int, req assign.Request) (*assign.Result, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assign.Result), args.Error(1)
}

func assignRequest(t *testing.T, orderID, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/assign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", orderID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAssignWorkshop_Success(t *testing.T) {
	mockAssigner := new(MockAssigner)

	wsID := 4
	wsName := "Dikim Atölyesi"
	result := &assign.Result{
		Order: &storage.Order{
			ID:           12,
			Status:       storage.StatusInProgress,
			WorkshopID:   &wsID,
			WorkshopName: &wsName,
		},
	}

	mockAssigner.On("Assign", mock.Anything, 12, assign.Request{WorkshopID: 4}).
		Return(result, nil)

	handler := AssignWorkshop(slog.Default(), mockAssigner)

	req := assignRequest(t, "12", `{"workshop_id": 4}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp AssignResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, storage.StatusInProgress, resp.Order.Status)
	assert.Empty(t, resp.CostLineError)

	mockAssigner.AssertExpectations(t)
}

func TestAssignWorkshop_PartialCostLines(t *testing.T) {
	mockAssigner := new(MockAssigner)

	result := &assign.Result{
		Order:          &storage.Order{ID: 12, Status: storage.StatusInProgress},
		CostLinesTotal: 3,
		CostLinesSaved: 1,
		CostLineErr:    assert.AnError,
	}
	mockAssigner.On("Assign", mock.Anything, 12, mock.Anything).Return(result, nil)

	handler := AssignWorkshop(slog.Default(), mockAssigner)

	req := assignRequest(t, "12", `{"workshop_id": 4, "pending_costs": [{}, {}, {}]}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// order update succeeded, so the response is still 200
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp AssignResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 3, resp.CostLinesTotal)
	assert.Equal(t, 1, resp.CostLinesSaved)
	assert.NotEmpty(t, resp.CostLineError)
}

func TestAssignWorkshop_WorkshopRequired(t *testing.T) {
	mockAssigner := new(MockAssigner)
	mockAssigner.On("Assign", mock.Anything, 12, mock.Anything).
		Return(nil, assign.ErrWorkshopRequired)

	handler := AssignWorkshop(slog.Default(), mockAssigner)

	req := assignRequest(t, "12", `{}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAssignWorkshop_CompletedOrderConflict(t *testing.T) {
	mockAssigner := new(MockAssigner)
	mockAssigner.On("Assign", mock.Anything, 12, mock.Anything).
		Return(nil, assign.ErrOrderCompleted)

	handler := AssignWorkshop(slog.Default(), mockAssigner)

	req := assignRequest(t, "12", `{"workshop_id": 4}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAssignWorkshop_NotFound(t *testing.T) {
	mockAssigner := new(MockAssigner)
	mockAssigner.On("Assign", mock.Anything, 99, mock.Anything).
		Return(nil, mysql.ErrNotFound)

	handler := AssignWorkshop(slog.Default(), mockAssigner)

	req := assignRequest(t, "99", `{"workshop_id": 4}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAssignWorkshop_InvalidJSON(t *testing.T) {
	mockAssigner := new(MockAssigner)
	handler := AssignWorkshop(slog.Default(), mockAssigner)

	req := assignRequest(t, "12", `{`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockAssigner.AssertNotCalled(t, "Assign")
}

func TestAssignWorkshop_InvalidOrderID(t *testing.T) {
	mockAssigner := new(MockAssigner)
	handler := AssignWorkshop(slog.Default(), mockAssigner)

	req := assignRequest(t, "abc", `{"workshop_id": 4}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockAssigner.AssertNotCalled(t, "Assign")
}
