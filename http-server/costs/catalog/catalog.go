// Package catalog serves the cost item reference data. The public
// surface allows create and price-only updates; full edit and delete
// are admin operations, the public routes answer with an explanation
// so clients can disable the controls up front.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/storage/mysql"
)

type CatalogStorage interface {
	GetCostItems(ctx context.Context) ([]*storage.CostItem, error)
	GetCostCategories(ctx context.Context) ([]*storage.CostCategory, error)
	GetCostUnits(ctx context.Context) ([]*storage.CostUnit, error)
	SaveCostItem(ctx context.Context, it storage.CostItem) (int64, error)
	UpdateCostItemPrice(ctx context.Context, id int, unitPrice float64, currency string) error
	UpdateCostItem(ctx context.Context, it storage.CostItem) error
	DeleteCostItem(ctx context.Context, id int) error
}

type Response struct {
	ID     int64  `json:"cost_item_id,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

func GetCostItems(log *slog.Logger, st CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.catalog.GetCostItems"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := st.GetCostItems(ctx)
		if err != nil {
			log.Error("failed to load cost items", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"items": items})
	}
}

func GetCostCategories(log *slog.Logger, st CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.catalog.GetCostCategories"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cats, err := st.GetCostCategories(ctx)
		if err != nil {
			log.Error("failed to load cost categories", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"categories": cats})
	}
}

func GetCostUnits(log *slog.Logger, st CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.catalog.GetCostUnits"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		units, err := st.GetCostUnits(ctx)
		if err != nil {
			log.Error("failed to load cost units", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"units": units})
	}
}

func SaveCostItem(log *slog.Logger, st CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.catalog.SaveCostItem"

		var req storage.CostItem
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ItemName == "" || req.Currency == "" {
			http.Error(w, "item_name and currency are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := st.SaveCostItem(ctx, req)
		if err != nil {
			log.Error("failed to save cost item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}

// UpdateCostItemPrice is the only public catalog mutation.
func UpdateCostItemPrice(log *slog.Logger, st CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.catalog.UpdateCostItemPrice"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid cost item id", http.StatusBadRequest)
			return
		}

		var req struct {
			UnitPrice float64 `json:"unit_price"`
			Currency  string  `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.UnitPrice < 0 || req.Currency == "" {
			http.Error(w, "unit_price and currency are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.UpdateCostItemPrice(ctx, id, req.UnitPrice, req.Currency); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Cost item not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update cost item price", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

// Unsupported answers full edit/delete attempts on the public surface.
func Unsupported() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		render.JSON(w, r, Response{Error: "Maliyet kalemi düzenleme/silme yalnızca yönetici panelinden yapılabilir"})
	}
}

// Admin-only: full edit.
func UpdateCostItemAdmin(log *slog.Logger, st CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.catalog.UpdateCostItemAdmin"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid cost item id", http.StatusBadRequest)
			return
		}

		var req storage.CostItem
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		req.ID = id

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.UpdateCostItem(ctx, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Cost item not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update cost item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

// Admin-only: soft delete.
func DeleteCostItemAdmin(log *slog.Logger, st CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.catalog.DeleteCostItemAdmin"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid cost item id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.DeleteCostItem(ctx, id); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Cost item not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete cost item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
