// Package workshop serves the per-workshop price list.
package workshop

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

type WorkshopCostStorage interface {
	GetWorkshopCostItems(ctx context.Context, workshopID int) ([]*storage.WorkshopCostItem, error)
	SaveWorkshopCostItem(ctx context.Context, it storage.WorkshopCostItem) (int64, error)
	UpdateWorkshopCostItem(ctx context.Context, it storage.WorkshopCostItem) error
	DeleteWorkshopCostItem(ctx context.Context, id int) error
}

type Response struct {
	ID     int64  `json:"workshop_cost_item_id,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ResponseItems struct {
	Items []*storage.WorkshopCostItem `json:"items"`
	Error string                      `json:"error,omitempty"`
}

func GetWorkshopItems(log *slog.Logger, st WorkshopCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.workshop.GetWorkshopItems"

		workshopID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid workshop id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := st.GetWorkshopCostItems(ctx, workshopID)
		if err != nil {
			log.Error("failed to load workshop cost items", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseItems{Error: "Atölye fiyat listesi alınamadı"})
			return
		}

		render.JSON(w, r, ResponseItems{Items: items})
	}
}

func SaveWorkshopItem(log *slog.Logger, st WorkshopCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.workshop.SaveWorkshopItem"

		var req storage.WorkshopCostItem
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.WorkshopID == 0 || req.CostItemID == 0 {
			http.Error(w, "workshop_id and cost_item_id are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := st.SaveWorkshopCostItem(ctx, req)
		if err != nil {
			log.Error("failed to save workshop cost item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}

func UpdateWorkshopItem(log *slog.Logger, st WorkshopCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.workshop.UpdateWorkshopItem"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid workshop cost item id", http.StatusBadRequest)
			return
		}

		var req storage.WorkshopCostItem
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		req.ID = id

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.UpdateWorkshopCostItem(ctx, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Workshop cost item not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update workshop cost item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

func DeleteWorkshopItem(log *slog.Logger, st WorkshopCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.workshop.DeleteWorkshopItem"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid workshop cost item id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.DeleteWorkshopCostItem(ctx, id); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Workshop cost item not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete workshop cost item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
