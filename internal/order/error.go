package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyCart        = errors.New("order requires at least one line item")
	ErrInvalidQuantity  = errors.New("line item quantity must be a positive integer")
	ErrInvalidLineRef   = errors.New("line item must reference exactly one product or package")
	ErrInvalidDiscount  = errors.New("discount is malformed")
	ErrInvalidDelivery  = errors.New("delivery payer must be CUSTOMER or SHOP")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrCustomerRequired = errors.New("redeeming points requires an attached customer")
)

// InsufficientStockError names the offending line and the shortfall so
// the clerk sees exactly what cannot be fulfilled.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}
