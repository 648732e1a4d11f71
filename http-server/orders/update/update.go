package update

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

type OrderUpdater interface {
	UpdateOrder(ctx context.Context, id int, req storage.SaveOrder) error
	SaveOrderLog(ctx context.Context, orderID int, action, detail string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func UpdateOrderOperation(log *slog.Logger, updater OrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.update.UpdateOrderOperation"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		var req storage.SaveOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateOrder(ctx, id, req); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := updater.SaveOrderLog(ctx, id, "update", "sipariş güncellendi"); err != nil {
			log.Warn("order log write failed", slog.String("op", op), slog.String("error", err.Error()))
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
