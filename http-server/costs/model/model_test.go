package model

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

	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/storage/mysql"
)

type MockModelCostStorage struct {
	mock.Mock
}

func (m *MockModelCostStorage) GetModelCosts(ctx context.Context, modelID int) ([]*storage.ModelCost, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.ModelCost), args.Error(1)
}

func (m *MockModelCostStorage) SaveModelCost(ctx context.Context, req storage.SaveModelCost) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockModelCostStorage) UpdateModelCost(ctx context.Context, id int, req storage.SaveModelCost) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockModelCostStorage) DeleteModelCost(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetModelCosts_Success(t *testing.T) {
	mockStorage := new(MockModelCostStorage)

	costs := []*storage.ModelCost{
		{ID: 1, ModelID: 5, ItemName: "Kumaş", Currency: "USD", TotalCost: 500},
		{ID: 2, ModelID: 5, ItemName: "Dikim", Currency: "TRY", TotalCost: 200},
	}
	mockStorage.On("GetModelCosts", mock.Anything, 5).Return(costs, nil)

	handler := GetModelCosts(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/costs/model/5", nil), "modelId", "5")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseCosts
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Costs, 2)
	assert.Equal(t, "Kumaş", resp.Costs[0].ItemName)

	mockStorage.AssertExpectations(t)
}

func TestSaveModelCost_Success(t *testing.T) {
	mockStorage := new(MockModelCostStorage)
	mockStorage.On("SaveModelCost", mock.Anything, mock.MatchedBy(func(req storage.SaveModelCost) bool {
		return req.ModelID == 5 && req.CostItemID == 2 && req.Currency == "USD"
	})).Return(int64(17), nil)

	handler := SaveModelCost(slog.Default(), mockStorage)

	body := `{"model_id": 5, "cost_item_id": 2, "quantity": 10, "unit_price": 3.5, "currency": "USD", "usd_rate": 41.2}`
	req := httptest.NewRequest(http.MethodPost, "/api/costs/model", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(17), resp.ID)
	assert.Equal(t, "ok", resp.Status)

	mockStorage.AssertExpectations(t)
}

func TestSaveModelCost_MissingCurrency(t *testing.T) {
	mockStorage := new(MockModelCostStorage)
	handler := SaveModelCost(slog.Default(), mockStorage)

	body := `{"model_id": 5, "cost_item_id": 2, "quantity": 10}`
	req := httptest.NewRequest(http.MethodPost, "/api/costs/model", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveModelCost")
}

func TestSaveModelCost_MissingModel(t *testing.T) {
	mockStorage := new(MockModelCostStorage)
	handler := SaveModelCost(slog.Default(), mockStorage)

	body := `{"cost_item_id": 2, "currency": "TRY"}`
	req := httptest.NewRequest(http.MethodPost, "/api/costs/model", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveModelCost")
}

func TestUpdateModelCost_NotFound(t *testing.T) {
	mockStorage := new(MockModelCostStorage)
	mockStorage.On("UpdateModelCost", mock.Anything, 99, mock.Anything).Return(mysql.ErrNotFound)

	handler := UpdateModelCost(slog.Default(), mockStorage)

	body := `{"model_id": 5, "cost_item_id": 2, "currency": "TRY"}`
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/costs/model/cost/99", strings.NewReader(body)), "id", "99")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteModelCost_Success(t *testing.T) {
	mockStorage := new(MockModelCostStorage)
	mockStorage.On("DeleteModelCost", mock.Anything, 17).Return(nil)

	handler := DeleteModelCost(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/costs/model/cost/17", nil), "id", "17")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}
