package save

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

type OperatorWriter interface {
	SaveOperator(ctx context.Context, o storage.Operator) (int64, error)
	UpdateOperator(ctx context.Context, o storage.Operator) error
}

type Response struct {
	ID     int64  `json:"operator_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func SaveOperatorOperation(log *slog.Logger, writer OperatorWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.operators.save.SaveOperatorOperation"

		var req storage.Operator
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.FirstName == "" || req.LastName == "" {
			http.Error(w, "first_name and last_name are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.SaveOperator(ctx, req)
		if err != nil {
			log.Error("failed to save operator", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}

func UpdateOperatorOperation(log *slog.Logger, writer OperatorWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.operators.save.UpdateOperatorOperation"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid operator id", http.StatusBadRequest)
			return
		}

		var req storage.Operator
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		req.ID = id

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.UpdateOperator(ctx, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Operator not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update operator", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
