package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tekstil-golang/internal/service/costreport"
	"tekstil-golang/internal/storage/mysql"
)

type OrderSummarySource interface {
	OrderSummary(ctx context.Context, orderID int) (*costreport.OrderSummary, error)
}

// GetOrderDetail returns the order together with both cost ledgers and
// the combined TRY total.
func GetOrderDetail(log *slog.Logger, reports OrderSummarySource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.get.GetOrderDetail"

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := reports.OrderSummary(ctx, id)
		if err != nil {
			if errors.Is(err, mysql.ErrNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load order detail", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if summary.MissingRates > 0 {
			log.Warn("order summary has cost lines without snapshot rates",
				slog.String("op", op), slog.Int("order_id", id), slog.Int("missing", summary.MissingRates))
		}

		render.JSON(w, r, summary)
	}
}
