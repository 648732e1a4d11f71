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

type ModelWriter interface {
	SaveModel(ctx context.Context, m storage.Model) (int64, error)
	UpdateModel(ctx context.Context, m storage.Model) error
}

type Response struct {
	ID     int64  `json:"model_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func SaveModelOperation(log *slog.Logger, writer ModelWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.models.save.SaveModelOperation"

		var req storage.Model
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.FirmID == 0 || req.Name == "" {
			http.Error(w, "firm_id and name are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.SaveModel(ctx, req)
		if err != nil {
			log.Error("failed to save model", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}

func UpdateModelOperation(log *slog.Logger, writer ModelWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.models.save.UpdateModelOperation"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid model id", http.StatusBadRequest)
			return
		}

		var req storage.Model
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		req.ID = id

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.UpdateModel(ctx, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Model not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update model", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
