package customer

import "time"

type Customer struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Instagram *string   `json:"instagram"`
	Address   *string   `json:"address"`
	Tags      []string  `json:"tags"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`

	// Read-only order history, attached on detail lookups.
	Orders []*OrderSummary `json:"orders,omitempty"`
}

// OrderSummary is the slice of an order a customer screen needs.
type OrderSummary struct {
	ID          int64      `json:"id"`
	OrderNumber string     `json:"orderNumber"`
	TotalPrice  int        `json:"totalPrice"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type UpsertCustomerInput struct {
	Name      *string  `json:"name"`
	Phone     *string  `json:"phone"`
	Instagram *string  `json:"instagram"`
	Address   *string  `json:"address"`
	Tags      []string `json:"tags"`
}
