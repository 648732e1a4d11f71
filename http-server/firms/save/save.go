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

type FirmWriter interface {
	SaveFirm(ctx context.Context, f storage.Firm) (int64, error)
	UpdateFirm(ctx context.Context, f storage.Firm) error
}

type Response struct {
	ID     int64  `json:"firm_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func SaveFirmOperation(log *slog.Logger, writer FirmWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.firms.save.SaveFirmOperation"

		var req storage.Firm
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

		id, err := writer.SaveFirm(ctx, req)
		if err != nil {
			log.Error("failed to save firm", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}

func UpdateFirmOperation(log *slog.Logger, writer FirmWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.firms.save.UpdateFirmOperation"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid firm id", http.StatusBadRequest)
			return
		}

		var req storage.Firm
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

		if err := writer.UpdateFirm(ctx, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Firm not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update firm", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
