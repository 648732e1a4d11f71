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

	"tekstil-golang/internal/service/assign"
	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/storage/mysql"
)

type Assigner interface {
	Assign(ctx context.Context, orderID int, req assign.Request) (*assign.Result, error)
}

type AssignResponse struct {
	Order          *storage.Order `json:"order"`
	CostLinesTotal int            `json:"cost_lines_total"`
	CostLinesSaved int            `json:"cost_lines_saved"`
	CostLineError  string         `json:"cost_line_error,omitempty"`
	Status         string         `json:"status"`
}

// AssignWorkshop routes an order to a workshop. The order update is a
// single call; pending cost lines ride along and may partially commit,
// the response always reports saved/total so the client can tell.
func AssignWorkshop(log *slog.Logger, assigner Assigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.update.AssignWorkshop"

		orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		var req assign.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := assigner.Assign(ctx, orderID, req)
		if err != nil {
			switch {
			case errors.Is(err, assign.ErrWorkshopRequired):
				http.Error(w, "workshop_id is required", http.StatusBadRequest)
			case errors.Is(err, assign.ErrOrderCompleted):
				http.Error(w, "Order is already completed", http.StatusConflict)
			case errors.Is(err, mysql.ErrNotFound):
				http.Error(w, "Order or workshop not found", http.StatusNotFound)
			default:
				log.Error("assign failed", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		resp := AssignResponse{
			Order:          result.Order,
			CostLinesTotal: result.CostLinesTotal,
			CostLinesSaved: result.CostLinesSaved,
			Status:         "ok",
		}
		if result.CostLineErr != nil {
			log.Warn("cost lines partially saved",
				slog.String("op", op),
				slog.Int("order_id", orderID),
				slog.Int("saved", result.CostLinesSaved),
				slog.Int("total", result.CostLinesTotal),
				slog.String("error", result.CostLineErr.Error()))
			resp.CostLineError = "Maliyet satırlarının bir kısmı kaydedilemedi"
		}

		render.JSON(w, r, resp)
	}
}
