package main

import (
	"log"
	"net/http"

	"lumak-be/internal/auth"
	"lumak-be/internal/config"
	"lumak-be/internal/customer"
	"lumak-be/internal/db"
	"lumak-be/internal/expense"
	"lumak-be/internal/httpapi"
	"lumak-be/internal/logger"
	"lumak-be/internal/loyalty"
	"lumak-be/internal/metrics"
	"lumak-be/internal/middleware"
	"lumak-be/internal/order"
	"lumak-be/internal/packages"
	"lumak-be/internal/product"
	"lumak-be/internal/reports"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	reg := metrics.NewRegistry()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	packageRepo := packages.NewRepository(database)
	packageSvc := packages.NewService(packageRepo)

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo)

	loyaltyRepo := loyalty.NewRepository(database)
	loyaltySvc := loyalty.NewService(loyaltyRepo, reg)

	orderRepo := order.NewRepository(database, cfg.LoyaltyProfitPerPoint)
	orderSvc := order.NewService(orderRepo, reg)

	expenseRepo := expense.NewRepository(database)
	expenseSvc := expense.NewService(expenseRepo)

	reportRepo := reports.NewRepository(database)
	reportSvc := reports.NewService(reportRepo)

	authSvc := auth.NewService(cfg)

	handler := httpapi.NewHandler(cfg, database, reg, httpapi.Services{
		Auth:     authSvc,
		Product:  productSvc,
		Package:  packageSvc,
		Order:    orderSvc,
		Customer: customerSvc,
		Loyalty:  loyaltySvc,
		Expense:  expenseSvc,
		Report:   reportSvc,
	})

	mux := handler.Routes()
	protected := middleware.RequireAuth(cfg.JWTSecret, mux)

	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicRoute(r) {
			mux.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	})

	var srv http.Handler = root
	srv = middleware.RateLimitMiddleware(srv)
	srv = middleware.CORS(srv)
	srv = logger.LoggingMiddleware(srv)
	srv = logger.RequestIDMiddleware(srv)

	log.Printf("🚀 Server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv))
}

func isPublicRoute(r *http.Request) bool {
	return r.URL.Path == "/auth/login" || r.URL.Path == "/healthz"
}
