package get

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tekstil-golang/internal/storage"
)

type MockGetOrders struct {
	mock.Mock
}

func (m *MockGetOrders) GetOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Order), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestGetOrdersFilter_Success(t *testing.T) {
	mockStorage := new(MockGetOrders)

	orders := []*storage.Order{
		{ID: 1, FirmName: "Moda Tekstil", ModelName: "Gömlek 2024", Quantity: 100, Status: storage.StatusInProgress},
		{ID: 2, FirmName: "Deniz Konfeksiyon", ModelName: "Elbise", Quantity: 50, Status: storage.StatusUnassigned},
	}

	mockStorage.On("GetOrders", mock.Anything, storage.OrderFilter{Year: 2025}).
		Return(orders, nil)

	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?year=2025", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseOrders
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Orders, 2)
	assert.Equal(t, "Moda Tekstil", resp.Orders[0].FirmName)

	mockStorage.AssertExpectations(t)
}

// The search term is folded, so ASCII input matches Turkish names.
func TestGetOrdersFilter_TurkishSearch(t *testing.T) {
	mockStorage := new(MockGetOrders)

	orders := []*storage.Order{
		{ID: 1, FirmName: "Moda Tekstil", ModelName: "Gömlek"},
		{ID: 2, FirmName: "Yıldız Konfeksiyon", ModelName: "Elbise"},
		{ID: 3, FirmName: "Deniz", ModelName: "Ceket", Note: strPtr("gömlek ile birlikte")},
	}

	mockStorage.On("GetOrders", mock.Anything, mock.Anything).Return(orders, nil)

	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?search=gomlek", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseOrders
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Orders, 2)
	assert.Equal(t, 1, resp.Orders[0].ID)
	assert.Equal(t, 3, resp.Orders[1].ID)
}

func TestGetOrdersFilter_MissingYearAndSearch(t *testing.T) {
	mockStorage := new(MockGetOrders)
	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "GetOrders")
}

func TestGetOrdersFilter_InvalidStatus(t *testing.T) {
	mockStorage := new(MockGetOrders)
	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?year=2025&status=7", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "GetOrders")
}

func TestGetOrdersFilter_StatusFilterPassedThrough(t *testing.T) {
	mockStorage := new(MockGetOrders)

	completed := storage.StatusCompleted
	mockStorage.On("GetOrders", mock.Anything, storage.OrderFilter{Year: 2025, Status: &completed}).
		Return([]*storage.Order{}, nil)

	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?year=2025&status=3", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestGetOrdersFilter_StorageError(t *testing.T) {
	mockStorage := new(MockGetOrders)
	mockStorage.On("GetOrders", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?year=2025", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
