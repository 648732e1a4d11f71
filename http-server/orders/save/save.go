package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, req storage.SaveOrder) (int64, error)
	SaveOrderLog(ctx context.Context, orderID int, action, detail string) error
}

type Response struct {
	ID     int64  `json:"order_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func SaveOrderOperation(log *slog.Logger, saver OrderSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.save.SaveOrderOperation"

		var req storage.SaveOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.FirmID == 0 || req.ModelID == 0 {
			http.Error(w, "firm_id and model_id are required", http.StatusBadRequest)
			return
		}
		if req.Quantity <= 0 {
			http.Error(w, "quantity must be positive", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveOrder(ctx, req)
		if err != nil {
			log.Error("failed to save order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := saver.SaveOrderLog(ctx, int(id), "create", "sipariş girildi"); err != nil {
			log.Warn("order log write failed", slog.String("op", op), slog.String("error", err.Error()))
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}
