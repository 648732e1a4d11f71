package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/turkish"
)

type Firms interface {
	GetFirms(ctx context.Context) ([]*storage.Firm, error)
}

type Response struct {
	Firms []*storage.Firm `json:"firms"`
	Error string          `json:"error,omitempty"`
}

func GetFirms(log *slog.Logger, firms Firms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.firms.get.GetFirms"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := firms.GetFirms(ctx)
		if err != nil {
			log.Error("failed to load firms", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Firmalar alınamadı"})
			return
		}

		if search := r.URL.Query().Get("search"); search != "" {
			var filtered []*storage.Firm
			for _, f := range list {
				if turkish.Includes(f.Name, search) {
					filtered = append(filtered, f)
				}
			}
			list = filtered
		}

		render.JSON(w, r, Response{Firms: list})
	}
}
