package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
)

type Rates interface {
	GetLatestRates(ctx context.Context) ([]*storage.ExchangeRate, error)
}

type Response struct {
	Rates []*storage.ExchangeRate `json:"rates"`
	Error string                  `json:"error,omitempty"`
}

// GetLatestRates returns the newest banknote-selling rate for each
// currency. Clients snapshot these onto new cost lines; stored lines
// never look rates up again.
func GetLatestRates(log *slog.Logger, rates Rates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.exchange.get.GetLatestRates"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := rates.GetLatestRates(ctx)
		if err != nil {
			log.Error("failed to load exchange rates", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Döviz kurları alınamadı"})
			return
		}

		render.JSON(w, r, Response{Rates: list})
	}
}
