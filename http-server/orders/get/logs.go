package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
)

type OrderLogs interface {
	GetOrderLogs(ctx context.Context, orderID int) ([]*storage.OrderLog, error)
}

type ResponseLogs struct {
	Logs  []*storage.OrderLog `json:"logs"`
	Error string              `json:"error,omitempty"`
}

func GetOrderLogs(log *slog.Logger, logs OrderLogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.get.GetOrderLogs"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := logs.GetOrderLogs(ctx, id)
		if err != nil {
			log.Error("failed to load order logs", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseLogs{Error: "Sipariş geçmişi alınamadı"})
			return
		}

		render.JSON(w, r, ResponseLogs{Logs: entries})
	}
}
