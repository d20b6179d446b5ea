package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lumak-be/internal/config"
	"lumak-be/internal/loyalty"
	"lumak-be/internal/metrics"
	"lumak-be/internal/order"
	"lumak-be/internal/product"
	"lumak-be/internal/reports"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) CreateOrder(ctx context.Context, input order.CreateOrderInput) (*order.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) GetOrders(ctx context.Context, search, date string) ([]*order.Order, error) {
	args := m.Called(ctx, search, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) UpdateOrderStatus(ctx context.Context, id int64, next order.Status) (*order.Order, error) {
	args := m.Called(ctx, id, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) GetDashboardStats(ctx context.Context) (*reports.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.DashboardStats), args.Error(1)
}

func (m *mockReportService) GetYearlyStats(ctx context.Context, year int) ([]*reports.MonthlyStats, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reports.MonthlyStats), args.Error(1)
}

func newTestHandler(t *testing.T, svcs Services) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewHandler(&config.Config{InactiveAfterDays: 30}, db, metrics.NewRegistry(), svcs), dbMock
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{order.ErrEmptyCart, http.StatusBadRequest},
		{order.ErrInvalidStatus, http.StatusBadRequest},
		{errBadRequest, http.StatusBadRequest},
		{order.ErrOrderNotFound, http.StatusNotFound},
		{product.ErrProductNotFound, http.StatusNotFound},
		{product.ErrProductInUse, http.StatusConflict},
		{&order.InsufficientStockError{Name: "Serum", Requested: 3, Available: 1}, http.StatusConflict},
		{&loyalty.InsufficientPointsError{CustomerID: 1, Requested: 100, Available: 50}, http.StatusConflict},
		{&order.InvalidTransitionError{From: order.StatusNew, To: order.StatusCompleted}, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestCreateOrderRoute(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		orderSvc := new(mockOrderService)
		h, _ := newTestHandler(t, Services{Order: orderSvc})

		orderSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("order.CreateOrderInput")).
			Return(&order.Order{ID: 7, OrderNumber: "ORD-x", Status: order.StatusNew}, nil)

		body := `{"items":[{"productId":1,"quantity":2}],"discountType":"AMOUNT","deliveryPaidBy":"SHOP"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Data order.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.Data.ID)
	})

	t.Run("ValidationError", func(t *testing.T) {
		orderSvc := new(mockOrderService)
		h, _ := newTestHandler(t, Services{Order: orderSvc})

		orderSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("order.CreateOrderInput")).
			Return(nil, order.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[]}`))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, order.ErrEmptyCart.Error(), resp.Message)
	})

	t.Run("StockConflict", func(t *testing.T) {
		orderSvc := new(mockOrderService)
		h, _ := newTestHandler(t, Services{Order: orderSvc})

		orderSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("order.CreateOrderInput")).
			Return(nil, &order.InsufficientStockError{Name: "Serum", Requested: 3, Available: 1})

		body := `{"items":[{"productId":1,"quantity":3}]}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateOrderStatusRoute(t *testing.T) {
	orderSvc := new(mockOrderService)
	h, _ := newTestHandler(t, Services{Order: orderSvc})

	orderSvc.On("UpdateOrderStatus", mock.Anything, int64(9), order.StatusShipped).
		Return(&order.Order{ID: 9, Status: order.StatusShipped}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/orders/9/status", strings.NewReader(`{"status":"SHIPPED"}`))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	orderSvc.AssertExpectations(t)
}

func TestOrderRouteBadID(t *testing.T) {
	h, _ := newTestHandler(t, Services{})

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportRoutes(t *testing.T) {
	t.Run("Dashboard", func(t *testing.T) {
		reportSvc := new(mockReportService)
		h, _ := newTestHandler(t, Services{Report: reportSvc})

		reportSvc.On("GetDashboardStats", mock.Anything).
			Return(&reports.DashboardStats{
				Totals: reports.Totals{TotalProfit: 2000000, TotalCapital: 3000000, TotalOrders: 300},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/reports/dashboard", nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data reports.DashboardStats `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 300, resp.Data.Totals.TotalOrders)
	})

	t.Run("YearlyWithYear", func(t *testing.T) {
		reportSvc := new(mockReportService)
		h, _ := newTestHandler(t, Services{Report: reportSvc})

		reportSvc.On("GetYearlyStats", mock.Anything, 2025).
			Return([]*reports.MonthlyStats{{Month: 1}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/reports/yearly?year=2025", nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		reportSvc.AssertExpectations(t)
	})

	t.Run("YearlyBadYear", func(t *testing.T) {
		reportSvc := new(mockReportService)
		h, _ := newTestHandler(t, Services{Report: reportSvc})

		reportSvc.On("GetYearlyStats", mock.Anything, 1999).
			Return(nil, reports.ErrInvalidYear)

		req := httptest.NewRequest(http.MethodGet, "/reports/yearly?year=1999", nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	h, dbMock := newTestHandler(t, Services{})
	dbMock.ExpectPing()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Status  string            `json:"status"`
			Metrics map[string]uint64 `json:"metrics"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Data.Status)
	assert.Contains(t, resp.Data.Metrics, "orders_created")
}
