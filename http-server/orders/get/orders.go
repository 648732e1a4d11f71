package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/turkish"
)

type ResponseOrders struct {
	Orders []*storage.Order `json:"orders"`
	Status string           `json:"status"`
	Error  string           `json:"error,omitempty"`
}

type GetOrders interface {
	GetOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.Order, error)
}

// GetOrdersFilter lists orders. Structured filters (year, month, firm,
// workshop, status) go to the database; the free-text search is applied
// here with Turkish folding over firm, model and note.
func GetOrdersFilter(log *slog.Logger, getOrders GetOrders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.get.GetOrdersFilter"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := r.URL.Query()
		search := q.Get("search")

		var filter storage.OrderFilter
		filter.Search = search

		if yearStr := q.Get("year"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				log.Error("invalid year", slog.String("year", yearStr))
				http.Error(w, "Invalid year", http.StatusBadRequest)
				return
			}
			filter.Year = year
		}
		if monthStr := q.Get("month"); monthStr != "" {
			month, err := strconv.Atoi(monthStr)
			if err != nil || month < 1 || month > 12 {
				log.Error("invalid month", slog.String("month", monthStr))
				http.Error(w, "Invalid month", http.StatusBadRequest)
				return
			}
			filter.Month = month
		}
		if search == "" && filter.Year == 0 {
			log.Error("missing year or search in query parameters")
			http.Error(w, "Missing year or search", http.StatusBadRequest)
			return
		}

		if firmStr := q.Get("firm"); firmStr != "" {
			filter.FirmID, _ = strconv.Atoi(firmStr)
		}
		if wsStr := q.Get("workshop"); wsStr != "" {
			filter.WorkshopID, _ = strconv.Atoi(wsStr)
		}
		if statusStr := q.Get("status"); statusStr != "" {
			code, err := strconv.Atoi(statusStr)
			if err != nil {
				http.Error(w, "Invalid status", http.StatusBadRequest)
				return
			}
			status, err := storage.ParseOrderStatus(code)
			if err != nil {
				http.Error(w, "Invalid status", http.StatusBadRequest)
				return
			}
			filter.Status = &status
		}
		if q.Get("include_inactive") == "true" {
			filter.IncludeInactive = true
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := getOrders.GetOrders(ctx, filter)
		if err != nil {
			log.Error("failed to load orders", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseOrders{Error: "Siparişler alınamadı"})
			return
		}

		if search != "" {
			orders = filterOrders(orders, search)
		}

		render.JSON(w, r, ResponseOrders{
			Orders: orders,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}

func filterOrders(orders []*storage.Order, search string) []*storage.Order {
	var out []*storage.Order
	for _, o := range orders {
		if turkish.Includes(o.FirmName, search) ||
			turkish.Includes(o.ModelName, search) ||
			(o.Note != nil && turkish.Includes(*o.Note, search)) ||
			(o.WorkshopName != nil && turkish.Includes(*o.WorkshopName, search)) {
			out = append(out, o)
		}
	}
	return out
}
