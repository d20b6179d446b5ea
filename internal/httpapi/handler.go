package httpapi

import (
	"database/sql"

	"lumak-be/internal/auth"
	"lumak-be/internal/config"
	"lumak-be/internal/customer"
	"lumak-be/internal/expense"
	"lumak-be/internal/loyalty"
	"lumak-be/internal/metrics"
	"lumak-be/internal/order"
	"lumak-be/internal/packages"
	"lumak-be/internal/product"
	"lumak-be/internal/reports"
)

// Handler owns the REST surface. Every route delegates to a domain
// service; all JSON shaping and status mapping lives here.
type Handler struct {
	cfg *config.Config
	db  *sql.DB
	reg *metrics.Registry

	authSvc     auth.Service
	productSvc  product.Service
	packageSvc  packages.Service
	orderSvc    order.Service
	customerSvc customer.Service
	loyaltySvc  loyalty.Service
	expenseSvc  expense.Service
	reportSvc   reports.Service
}

type Services struct {
	Auth     auth.Service
	Product  product.Service
	Package  packages.Service
	Order    order.Service
	Customer customer.Service
	Loyalty  loyalty.Service
	Expense  expense.Service
	Report   reports.Service
}

func NewHandler(cfg *config.Config, db *sql.DB, reg *metrics.Registry, svcs Services) *Handler {
	return &Handler{
		cfg:         cfg,
		db:          db,
		reg:         reg,
		authSvc:     svcs.Auth,
		productSvc:  svcs.Product,
		packageSvc:  svcs.Package,
		orderSvc:    svcs.Order,
		customerSvc: svcs.Customer,
		loyaltySvc:  svcs.Loyalty,
		expenseSvc:  svcs.Expense,
		reportSvc:   svcs.Report,
	}
}
