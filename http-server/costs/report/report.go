// Package report serves the grouped model cost view.
package report

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tekstil-golang/internal/service/costreport"
)

type ReportSource interface {
	ModelReport(ctx context.Context, modelID, firmID int) (*costreport.ModelReport, error)
}

// ModelCostReport groups the model's ledger by order, converts to TRY
// and computes unit costs. ?firm=ID applies the firm filter.
func ModelCostReport(log *slog.Logger, reports ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.costs.report.ModelCostReport"

		modelID, err := strconv.Atoi(chi.URLParam(r, "modelId"))
		if err != nil {
			http.Error(w, "Invalid model id", http.StatusBadRequest)
			return
		}

		var firmID int
		if firmStr := r.URL.Query().Get("firm"); firmStr != "" {
			firmID, err = strconv.Atoi(firmStr)
			if err != nil {
				http.Error(w, "Invalid firm id", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := reports.ModelReport(ctx, modelID, firmID)
		if err != nil {
			log.Error("failed to build model cost report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if result.MissingRates > 0 {
			log.Warn("model cost report has lines without snapshot rates",
				slog.String("op", op), slog.Int("model_id", modelID), slog.Int("missing", result.MissingRates))
		}

		render.JSON(w, r, result)
	}
}
