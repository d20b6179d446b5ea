// Package pricing computes order totals and profit. It is pure arithmetic
// over whole-unit currency amounts: no I/O, no state, integer floor only.
package pricing

type DiscountType string

const (
	DiscountAmount     DiscountType = "AMOUNT"
	DiscountPercentage DiscountType = "PERCENTAGE"
)

type DeliveryPaidBy string

const (
	DeliveryPaidByCustomer DeliveryPaidBy = "CUSTOMER"
	DeliveryPaidByShop     DeliveryPaidBy = "SHOP"
)

// Line is one order line with its prices captured at order time.
// UnitPrice is 0 for free lines; OriginalPrice always carries the catalog
// price and UnitCost the catalog cost, free or not.
type Line struct {
	Quantity      int
	UnitPrice     int
	OriginalPrice int
	UnitCost      int
	IsFree        bool
}

type Input struct {
	Lines          []Line
	DiscountValue  int
	DiscountType   DiscountType
	PointsCredit   int
	DeliveryCost   int
	DeliveryPaidBy DeliveryPaidBy
	PackagingCost  int
}

type Breakdown struct {
	Subtotal       int
	DiscountAmount int
	DeliveryCharge int
	GrandTotal     int
	CostBasis      int
	Profit         int
}

// Calculate produces the order totals. The manual discount and the
// redeemed-points credit arrive as separate inputs and are merged only
// here, under a single clamp to [0, subtotal]. Delivery is a pass-through
// and never affects profit; packaging cost always reduces profit.
func Calculate(in Input) Breakdown {
	var subtotal, costBasis int
	for _, line := range in.Lines {
		subtotal += line.UnitPrice * line.Quantity
		// Cost is incurred even when the price is waived.
		costBasis += line.UnitCost * line.Quantity
	}

	var manual int
	switch in.DiscountType {
	case DiscountPercentage:
		manual = subtotal * in.DiscountValue / 100
	default:
		manual = in.DiscountValue
	}

	discount := manual + in.PointsCredit
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	var delivery int
	if in.DeliveryPaidBy == DeliveryPaidByCustomer {
		delivery = in.DeliveryCost
	}

	return Breakdown{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		DeliveryCharge: delivery,
		GrandTotal:     subtotal - discount + delivery,
		CostBasis:      costBasis,
		Profit:         subtotal - discount - costBasis - in.PackagingCost,
	}
}
