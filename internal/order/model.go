package order

import (
	"time"

	"lumak-be/internal/pricing"
)

type Status string

const (
	StatusNew       Status = "NEW"
	StatusShipped   Status = "SHIPPED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusReturned  Status = "RETURNED"
)

// transitions is the full lifecycle: NEW → SHIPPED → COMPLETED/RETURNED,
// NEW → CANCELLED. COMPLETED, CANCELLED and RETURNED are terminal.
var transitions = map[Status][]Status{
	StatusNew:     {StatusShipped, StatusCancelled},
	StatusShipped: {StatusCompleted, StatusReturned},
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusShipped, StatusCompleted, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID             int64                  `json:"id"`
	OrderNumber    string                 `json:"orderNumber"`
	CustomerID     *int64                 `json:"customerId"`
	CustomerName   string                 `json:"customerName"`
	PackagingCost  int                    `json:"packagingCost"`
	DeliveryCost   int                    `json:"deliveryCost"`
	DeliveryPaidBy pricing.DeliveryPaidBy `json:"deliveryPaidBy"`
	DiscountValue  int                    `json:"discountValue"`
	DiscountType   pricing.DiscountType   `json:"discountType"`
	RedeemedPoints int                    `json:"redeemedPoints"`
	Source         string                 `json:"source"`
	Status         Status                 `json:"status"`
	TotalPrice     int                    `json:"totalPrice"`
	TotalProfit    int                    `json:"totalProfit"`
	PointsAwarded  bool                   `json:"-"`
	CreatedAt      time.Time              `json:"createdAt"`
	CompletedAt    *time.Time             `json:"completedAt"`
	Items          []*OrderItem           `json:"items"`
}

// OrderItem is one persisted order line. Price, OriginalPrice and
// UnitCost are captured at creation and never change afterwards.
type OrderItem struct {
	ID            int64  `json:"id"`
	OrderID       int64  `json:"orderId"`
	ProductID     *int64 `json:"productId"`
	PackageID     *int64 `json:"packageId"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	IsFree        bool   `json:"isFree"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"originalPrice"`
	UnitCost      int    `json:"unitCost"`
}

// LineRequest is one cart entry as submitted by the UI: a product or a
// package reference, never both.
type LineRequest struct {
	ProductID *int64 `json:"productId"`
	PackageID *int64 `json:"packageId"`
	Quantity  int    `json:"quantity"`
	IsFree    bool   `json:"isFree"`
}

type CreateOrderInput struct {
	CustomerID     *int64                 `json:"customerId"`
	CustomerName   string                 `json:"customerName"`
	Items          []LineRequest          `json:"items"`
	PackagingCost  int                    `json:"packagingCost"`
	DeliveryCost   int                    `json:"deliveryCost"`
	DeliveryPaidBy pricing.DeliveryPaidBy `json:"deliveryPaidBy"`
	DiscountValue  int                    `json:"discountValue"`
	DiscountType   pricing.DiscountType   `json:"discountType"`
	RedeemedPoints int                    `json:"redeemedPoints"`
	Source         string                 `json:"source"`
}
