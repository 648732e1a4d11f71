// Package order serves the workshop cost ledger of a single order.
package order

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
)

type OrderCostStorage interface {
	GetOrderCosts(ctx context.Context, orderID int) ([]*storage.OrderWorkshopCost, error)
	SaveOrderCost(ctx context.Context, c storage.OrderWorkshopCost) (int64, error)
}

type Response struct {
	ID     int64  `json:"order_workshop_cost_id,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ResponseCosts struct {
	Costs []*storage.OrderWorkshopCost `json:"costs"`
	Total float64                      `json:"total"`
	Error string                       `json:"error,omitempty"`
}

func GetOrderCosts(log *slog.Logger, st OrderCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.order.GetOrderCosts"

		orderID, err := strconv.Atoi(chi.URLParam(r, "orderId"))
		if err != nil {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		costs, err := st.GetOrderCosts(ctx, orderID)
		if err != nil {
			log.Error("failed to load order costs", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseCosts{Error: "Sipariş maliyetleri alınamadı"})
			return
		}

		var total float64
		for _, c := range costs {
			total += c.TotalCost
		}

		render.JSON(w, r, ResponseCosts{Costs: costs, Total: total})
	}
}

func SaveOrderCost(log *slog.Logger, st OrderCostStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.order.SaveOrderCost"

		var req storage.OrderWorkshopCost
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.OrderID == 0 || req.WorkshopID == 0 || req.CostItemID == 0 {
			http.Error(w, "order_id, workshop_id and cost_item_id are required", http.StatusBadRequest)
			return
		}
		if req.QuantityUsed <= 0 {
			http.Error(w, "quantity_used must be positive", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := st.SaveOrderCost(ctx, req)
		if err != nil {
			log.Error("failed to save order cost", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}
