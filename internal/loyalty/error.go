package loyalty

import (
	"errors"
	"fmt"
)

var (
	ErrSelfTransfer  = errors.New("sender and recipient must be different customers")
	ErrInvalidAmount = errors.New("points amount must be positive")
)

// InsufficientPointsError reports how short a customer's balance is for a
// redemption or transfer.
type InsufficientPointsError struct {
	CustomerID int64
	Requested  int
	Available  int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: requested %d, available %d", e.Requested, e.Available)
}
