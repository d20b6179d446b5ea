// Package loyalty implements point settlement: redemption at order
// creation, earning on order completion, and customer-to-customer
// transfers. Every mutation is a conditional update guarded against
// driving a balance negative, and earning is idempotent per order.
package loyalty

import (
	"context"
	"database/sql"
)

// Redemption rate: 100 points convert to 1000 currency units of discount.
const (
	RedeemPointsUnit = 100
	RedeemCreditUnit = 1000
)

// RedemptionCredit converts redeemed points into a discount credit.
// Partial blocks of 100 points are worth nothing.
func RedemptionCredit(points int) int {
	return points / RedeemPointsUnit * RedeemCreditUnit
}

// EarnedPoints converts recorded order profit into points at the
// configured rate (currency units of profit per point).
func EarnedPoints(profit, profitPerPoint int) int {
	if profit <= 0 || profitPerPoint <= 0 {
		return 0
	}
	return profit / profitPerPoint
}

// DebitTx subtracts points from a customer's balance inside the caller's
// transaction. The conditional update re-checks the balance at commit
// time, so a concurrent debit cannot drive it negative.
func DebitTx(ctx context.Context, tx *sql.Tx, customerID int64, points int) error {
	if points <= 0 {
		return ErrInvalidAmount
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE customers
		SET points = points - $1
		WHERE id = $2 AND points >= $1
	`, points, customerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var available int
		if err := tx.QueryRowContext(ctx,
			`SELECT points FROM customers WHERE id = $1`, customerID,
		).Scan(&available); err != nil {
			return err
		}
		return &InsufficientPointsError{CustomerID: customerID, Requested: points, Available: available}
	}

	return nil
}

// CreditTx adds points to a customer's balance inside the caller's
// transaction. Used for refunds on cancellation/return and for earning.
func CreditTx(ctx context.Context, tx *sql.Tx, customerID int64, points int) error {
	if points <= 0 {
		return ErrInvalidAmount
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE customers
		SET points = points + $1
		WHERE id = $2
	`, points, customerID)
	return err
}

// EarnTx awards points for a completed order inside the caller's
// transaction. The points_awarded latch on the order row makes the award
// exactly-once: re-running the completion path is a no-op. Returns the
// number of points awarded.
func EarnTx(ctx context.Context, tx *sql.Tx, orderID int64, customerID *int64, profit, profitPerPoint int) (int, error) {
	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET points_awarded = TRUE
		WHERE id = $1 AND points_awarded = FALSE
	`, orderID)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		// Already awarded for this order.
		return 0, nil
	}

	points := EarnedPoints(profit, profitPerPoint)
	if points == 0 || customerID == nil {
		return 0, nil
	}

	if err := CreditTx(ctx, tx, *customerID, points); err != nil {
		return 0, err
	}

	return points, nil
}
