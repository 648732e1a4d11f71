package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type GenerateExcelHandler interface {
	GenerateModelCostExcel(ctx context.Context, modelID, firmID int) ([]byte, error)
}

func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		modelID, err := strconv.Atoi(r.URL.Query().Get("modelId"))
		if err != nil {
			http.Error(w, "Missing or invalid modelId", http.StatusBadRequest)
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

		// excel generation may take longer than a plain query
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateModelCostExcel(ctx, modelID, firmID)
		if err != nil {
			log.Error("failed to generate excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Maliyet_Raporu_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
