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

type WorkshopWriter interface {
	SaveWorkshop(ctx context.Context, w storage.Workshop) (int64, error)
	UpdateWorkshop(ctx context.Context, w storage.Workshop) error
}

type Response struct {
	ID     int64  `json:"workshop_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func SaveWorkshopOperation(log *slog.Logger, writer WorkshopWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.save.SaveWorkshopOperation"

		var req storage.Workshop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.SaveWorkshop(ctx, req)
		if err != nil {
			log.Error("failed to save workshop", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}

func UpdateWorkshopOperation(log *slog.Logger, writer WorkshopWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.save.UpdateWorkshopOperation"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid workshop id", http.StatusBadRequest)
			return
		}

		var req storage.Workshop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		req.ID = id
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.UpdateWorkshop(ctx, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Workshop not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update workshop", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
