package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"tekstil-golang/http-server/costs/catalog"
	modelcost "tekstil-golang/http-server/costs/model"
	ordercost "tekstil-golang/http-server/costs/order"
	costreporth "tekstil-golang/http-server/costs/report"
	workshopcost "tekstil-golang/http-server/costs/workshop"
	getexchange "tekstil-golang/http-server/exchange/get"
	getfirms "tekstil-golang/http-server/firms/get"
	savefirms "tekstil-golang/http-server/firms/save"
	generate_excel_h "tekstil-golang/http-server/generate-report/generate-excel"
	getmodels "tekstil-golang/http-server/models/get"
	savemodels "tekstil-golang/http-server/models/save"
	getoperators "tekstil-golang/http-server/operators/get"
	saveoperators "tekstil-golang/http-server/operators/save"
	getorders "tekstil-golang/http-server/orders/get"
	saveorders "tekstil-golang/http-server/orders/save"
	updateorders "tekstil-golang/http-server/orders/update"
	"tekstil-golang/http-server/settings"
	getworkshops "tekstil-golang/http-server/workshops/get"
	saveworkshops "tekstil-golang/http-server/workshops/save"
	"tekstil-golang/internal/config"
	"tekstil-golang/internal/middleware/auth"
	"tekstil-golang/internal/service/assign"
	"tekstil-golang/internal/service/costreport"
	generate_excel "tekstil-golang/internal/service/generate-excel"
	"tekstil-golang/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	assignService *assign.Service,
	reportService *costreport.Service,
	excelService *generate_excel.GenerateExcelService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// orders
	router.Get("/api/orders", getorders.GetOrdersFilter(log, storage))
	router.Post("/api/orders", saveorders.SaveOrderOperation(log, storage))
	router.Get("/api/orders/{id}", getorders.GetOrderDetail(log, reportService))
	router.Put("/api/orders/{id}", updateorders.UpdateOrderOperation(log, storage))
	router.Delete("/api/orders/{id}", updateorders.DeactivateOrder(log, storage))
	router.Post("/api/orders/{id}/assign", updateorders.AssignWorkshop(log, assignService))
	router.Put("/api/orders/{id}/status", updateorders.UpdateStatus(log, storage))
	router.Get("/api/orders/{id}/logs", getorders.GetOrderLogs(log, storage))

	// reference data
	router.Get("/api/workshops", getworkshops.GetWorkshops(log, storage))
	router.Post("/api/workshops", saveworkshops.SaveWorkshopOperation(log, storage))
	router.Put("/api/workshops/{id}", saveworkshops.UpdateWorkshopOperation(log, storage))

	router.Get("/api/operators", getoperators.GetOperators(log, storage))

	router.Get("/api/firms", getfirms.GetFirms(log, storage))
	router.Post("/api/firms", savefirms.SaveFirmOperation(log, storage))
	router.Put("/api/firms/{id}", savefirms.UpdateFirmOperation(log, storage))

	router.Get("/api/models", getmodels.GetModels(log, storage))
	router.Post("/api/models", savemodels.SaveModelOperation(log, storage))
	router.Put("/api/models/{id}", savemodels.UpdateModelOperation(log, storage))

	// cost catalog
	router.Get("/api/costs/items", catalog.GetCostItems(log, storage))
	router.Post("/api/costs/items", catalog.SaveCostItem(log, storage))
	router.Put("/api/costs/items/{id}/price", catalog.UpdateCostItemPrice(log, storage))
	// full edit and delete live behind the admin router only
	router.Put("/api/costs/items/{id}", catalog.Unsupported())
	router.Delete("/api/costs/items/{id}", catalog.Unsupported())
	router.Get("/api/costs/categories", catalog.GetCostCategories(log, storage))
	router.Get("/api/costs/units", catalog.GetCostUnits(log, storage))

	// workshop price list
	router.Get("/api/costs/workshop/{id}/items", workshopcost.GetWorkshopItems(log, storage))
	router.Post("/api/costs/workshop/items", workshopcost.SaveWorkshopItem(log, storage))
	router.Put("/api/costs/workshop/items/{id}", workshopcost.UpdateWorkshopItem(log, storage))
	router.Delete("/api/costs/workshop/items/{id}", workshopcost.DeleteWorkshopItem(log, storage))

	// model cost ledger and the aggregation report
	router.Get("/api/costs/model/{modelId}", modelcost.GetModelCosts(log, storage))
	router.Post("/api/costs/model", modelcost.SaveModelCost(log, storage))
	router.Put("/api/costs/model/cost/{id}", modelcost.UpdateModelCost(log, storage))
	router.Delete("/api/costs/model/cost/{id}", modelcost.DeleteModelCost(log, storage))
	router.Get("/api/costs/model/{modelId}/report", costreporth.ModelCostReport(log, reportService))

	// per-order workshop costs
	router.Get("/api/costs/order/{orderId}", ordercost.GetOrderCosts(log, storage))
	router.Post("/api/costs/order", ordercost.SaveOrderCost(log, storage))

	router.Get("/api/exchange/latest", getexchange.GetLatestRates(log, storage))

	router.Get("/api/settings", settings.GetSettings(log, storage))
	router.Put("/api/settings", settings.UpdateSettings(log, storage))
	router.Post("/api/settings/price-preview", settings.PricePreview(log, storage))

	router.Get("/api/report/excel", generate_excel_h.GenerateReportExcel(log, excelService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Put("/costs/items/{id}", catalog.UpdateCostItemAdmin(log, storage))
	adminRouter.Delete("/costs/items/{id}", catalog.DeleteCostItemAdmin(log, storage))
	adminRouter.Post("/operators", saveoperators.SaveOperatorOperation(log, storage))
	adminRouter.Put("/operators/{id}", saveoperators.UpdateOperatorOperation(log, storage))

	router.Mount("/api/admin", adminRouter)

	// static frontend, optional for API-only deployments
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dir not found, serving API only", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).Handle("/admin/*",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		}),
	)

	// SPA fallback
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
