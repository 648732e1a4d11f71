package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/turkish"
)

type Models interface {
	GetModels(ctx context.Context, firmID int) ([]*storage.Model, error)
}

type Response struct {
	Models []*storage.Model `json:"models"`
	Error  string           `json:"error,omitempty"`
}

func GetModels(log *slog.Logger, models Models) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.models.get.GetModels"

		var firmID int
		if firmStr := r.URL.Query().Get("firm"); firmStr != "" {
			var err error
			firmID, err = strconv.Atoi(firmStr)
			if err != nil {
				http.Error(w, "Invalid firm id", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := models.GetModels(ctx, firmID)
		if err != nil {
			log.Error("failed to load models", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Modeller alınamadı"})
			return
		}

		if search := r.URL.Query().Get("search"); search != "" {
			var filtered []*storage.Model
			for _, m := range list {
				if turkish.Includes(m.Name, search) || turkish.Includes(m.Code, search) {
					filtered = append(filtered, m)
				}
			}
			list = filtered
		}

		render.JSON(w, r, Response{Models: list})
	}
}
