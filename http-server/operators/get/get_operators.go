package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"tekstil-golang/internal/storage"
)

type Operators interface {
	GetOperators(ctx context.Context, workshopID int) ([]*storage.Operator, error)
}

type Response struct {
	Operators []*storage.Operator `json:"operators"`
	Error     string              `json:"error,omitempty"`
}

// GetOperators lists operators; ?workshop=ID narrows to one workshop
// so the transfer dialog can offer only its own people.
func GetOperators(log *slog.Logger, operators Operators) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.operators.get.GetOperators"

		var workshopID int
		if wsStr := r.URL.Query().Get("workshop"); wsStr != "" {
			var err error
			workshopID, err = strconv.Atoi(wsStr)
			if err != nil {
				http.Error(w, "Invalid workshop id", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := operators.GetOperators(ctx, workshopID)
		if err != nil {
			log.Error("failed to load operators", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Operatörler alınamadı"})
			return
		}

		render.JSON(w, r, Response{Operators: list})
	}
}
