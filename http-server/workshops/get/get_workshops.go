package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
)

type Workshops interface {
	GetWorkshops(ctx context.Context) ([]*storage.Workshop, error)
}

type Response struct {
	Workshops []*storage.Workshop `json:"workshops"`
	Error     string              `json:"error,omitempty"`
}

func GetWorkshops(log *slog.Logger, workshops Workshops) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.get.GetWorkshops"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := workshops.GetWorkshops(ctx)
		if err != nil {
			log.Error("failed to load workshops", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Atölyeler alınamadı"})
			return
		}

		render.JSON(w, r, Response{Workshops: list})
	}
}
