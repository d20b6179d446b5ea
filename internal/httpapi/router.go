package httpapi

import "net/http"

// Routes registers every endpoint on a fresh mux. Authentication and the
// rest of the middleware chain are layered on by the caller so tests can
// exercise handlers directly.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("GET /healthz", h.healthz)

	mux.HandleFunc("GET /products", h.listProducts)
	mux.HandleFunc("POST /products", h.createProduct)
	mux.HandleFunc("PUT /products/{id}", h.updateProduct)
	mux.HandleFunc("DELETE /products/{id}", h.deleteProduct)

	mux.HandleFunc("GET /packages", h.listPackages)
	mux.HandleFunc("POST /packages", h.createPackage)
	mux.HandleFunc("DELETE /packages/{id}", h.deletePackage)

	mux.HandleFunc("GET /orders", h.listOrders)
	mux.HandleFunc("POST /orders", h.createOrder)
	mux.HandleFunc("GET /orders/{id}", h.getOrder)
	mux.HandleFunc("PATCH /orders/{id}/status", h.updateOrderStatus)

	mux.HandleFunc("GET /customers", h.listCustomers)
	mux.HandleFunc("POST /customers", h.createCustomer)
	mux.HandleFunc("GET /customers/reports/inactive", h.inactiveCustomers)
	mux.HandleFunc("POST /customers/transfer-points", h.transferPoints)
	mux.HandleFunc("GET /customers/{id}", h.getCustomer)
	mux.HandleFunc("PUT /customers/{id}", h.updateCustomer)

	mux.HandleFunc("GET /reports/dashboard", h.dashboardReport)
	mux.HandleFunc("GET /reports/yearly", h.yearlyReport)

	mux.HandleFunc("GET /expenses", h.listExpenses)
	mux.HandleFunc("POST /expenses", h.createExpense)
	mux.HandleFunc("DELETE /expenses/{id}", h.deleteExpense)

	return mux
}

func pathID(r *http.Request) (int64, error) {
	return parseID(r.PathValue("id"))
}
