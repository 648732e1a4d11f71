// Package model serves the model cost ledger.
package model

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

type ModelCostStorage interface {
	GetModelCosts(ctx context.Context, modelID int) ([]*storage.ModelCost, error)
	SaveModelCost(ctx context.Context, req storage.SaveModelCost) (int64, error)
	UpdateModelCost(ctx context.Context, id int, req storage.SaveModelCost) error
	DeleteModelCost(ctx context.Context, id int) error
}

type Response struct {
	ID     int64  `json:"model_cost_id,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ResponseCosts struct {
	Costs []*storage.ModelCost `json:"costs"`
	Error string               `json:"error,omitempty"`
}

func GetModelCosts(log *slog.Logger, st ModelCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.model.GetModelCosts"

		modelID, err := strconv.Atoi(chi.URLParam(r, "modelId"))
		if err != nil {
			http.Error(w, "Invalid model id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		costs, err := st.GetModelCosts(ctx, modelID)
		if err != nil {
			log.Error("failed to load model costs", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseCosts{Error: "Model maliyetleri alınamadı"})
			return
		}

		render.JSON(w, r, ResponseCosts{Costs: costs})
	}
}

func SaveModelCost(log *slog.Logger, st ModelCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.model.SaveModelCost"

		var req storage.SaveModelCost
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ModelID == 0 || req.CostItemID == 0 {
			http.Error(w, "model_id and cost_item_id are required", http.StatusBadRequest)
			return
		}
		if req.Currency == "" {
			http.Error(w, "currency is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := st.SaveModelCost(ctx, req)
		if err != nil {
			log.Error("failed to save model cost", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}

func UpdateModelCost(log *slog.Logger, st ModelCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.model.UpdateModelCost"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid model cost id", http.StatusBadRequest)
			return
		}

		var req storage.SaveModelCost
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.UpdateModelCost(ctx, id, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Model cost not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update model cost", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

func DeleteModelCost(log *slog.Logger, st ModelCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.model.DeleteModelCost"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid model cost id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.DeleteModelCost(ctx, id); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Model cost not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete model cost", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
