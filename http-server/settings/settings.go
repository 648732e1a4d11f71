// Package settings serves the pricing parameters and the preview
// calculation built on them.
package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tekstil-golang/internal/service/costreport"
	"tekstil-golang/internal/storage"
)

type SettingsStorage interface {
	GetSettings(ctx context.Context) (*storage.Settings, error)
	UpdateSettings(ctx context.Context, set storage.Settings) error
}

type Response struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

func GetSettings(log *slog.Logger, st SettingsStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.settings.GetSettings"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		set, err := st.GetSettings(ctx)
		if err != nil {
			log.Error("failed to load settings", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, set)
	}
}

func UpdateSettings(log *slog.Logger, st SettingsStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.settings.UpdateSettings"

		var req storage.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ProfitMargin < 0 || req.OverheadCostRate < 0 {
			http.Error(w, "rates must not be negative", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.UpdateSettings(ctx, req); err != nil {
			log.Error("failed to update settings", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

// PricePreview applies overhead and profit margin on a unit cost.
// Nothing is stored, the result is a suggestion for the pricing form.
func PricePreview(log *slog.Logger, st SettingsStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.settings.PricePreview"

		var req struct {
			UnitCost float64 `json:"unit_cost"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		set, err := st.GetSettings(ctx)
		if err != nil {
			log.Error("failed to load settings", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]float64{
			"unit_cost":       req.UnitCost,
			"suggested_price": costreport.SuggestPrice(req.UnitCost, *set),
		})
	}
}
