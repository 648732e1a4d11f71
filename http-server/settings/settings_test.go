package settings

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

type MockSettingsStorage struct {
	mock.Mock
}

func (m *MockSettingsStorage) GetSettings(ctx context.Context) (*storage.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Settings), args.Error(1)
}

func (m *MockSettingsStorage) UpdateSettings(ctx context.Context, set storage.Settings) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

func TestGetSettings_Success(t *testing.T) {
	mockStorage := new(MockSettingsStorage)
	mockStorage.On("GetSettings", mock.Anything).
		Return(&storage.Settings{ProfitMargin: 20, OverheadCostRate: 10}, nil)

	handler := GetSettings(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp storage.Settings
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, resp.ProfitMargin)
	assert.Equal(t, 10.0, resp.OverheadCostRate)
}

func TestUpdateSettings_Success(t *testing.T) {
	mockStorage := new(MockSettingsStorage)
	mockStorage.On("UpdateSettings", mock.Anything, storage.Settings{ProfitMargin: 25, OverheadCostRate: 12}).
		Return(nil)

	handler := UpdateSettings(slog.Default(), mockStorage)

	body := `{"profit_margin": 25, "overhead_cost_rate": 12}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestUpdateSettings_NegativeRate(t *testing.T) {
	mockStorage := new(MockSettingsStorage)
	handler := UpdateSettings(slog.Default(), mockStorage)

	body := `{"profit_margin": -5, "overhead_cost_rate": 10}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "UpdateSettings")
}

// 100 * 1.10 * 1.20 = 132
func TestPricePreview_AppliesOverheadThenMargin(t *testing.T) {
	mockStorage := new(MockSettingsStorage)
	mockStorage.On("GetSettings", mock.Anything).
		Return(&storage.Settings{ProfitMargin: 20, OverheadCostRate: 10}, nil)

	handler := PricePreview(slog.Default(), mockStorage)

	body := `{"unit_cost": 100}`
	req := httptest.NewRequest(http.MethodPost, "/api/settings/price-preview", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]float64
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, resp["unit_cost"])
	assert.InDelta(t, 132.0, resp["suggested_price"], 0.0001)
}
