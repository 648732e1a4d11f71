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

type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, orderID int, status storage.OrderStatus) error
	SaveOrderLog(ctx context.Context, orderID int, action, detail string) error
}

// UpdateStatus sets the status directly, e.g. cancelling an order.
// The wire carries the numeric code.
func UpdateStatus(log *slog.Logger, updater StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.update.UpdateStatus"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		var req struct {
			Status int `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		status, err := storage.ParseOrderStatus(req.Status)
		if err != nil {
			http.Error(w, "Invalid status code", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateOrderStatus(ctx, id, status); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update status", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := updater.SaveOrderLog(ctx, id, "status", "durum: "+status.String()); err != nil {
			log.Warn("order log write failed", slog.String("op", op), slog.String("error", err.Error()))
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

type Deactivator interface {
	DeactivateOrder(ctx context.Context, orderID int) error
	SaveOrderLog(ctx context.Context, orderID int, action, detail string) error
}

// DeactivateOrder soft-deletes. Orders never leave the database.
func DeactivateOrder(log *slog.Logger, deactivator Deactivator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.update.DeactivateOrder"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deactivator.DeactivateOrder(ctx, id); err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to deactivate order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := deactivator.SaveOrderLog(ctx, id, "deactivate", "sipariş pasife alındı"); err != nil {
			log.Warn("order log write failed", slog.String("op", op), slog.String("error", err.Error()))
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
