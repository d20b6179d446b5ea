package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"lumak-be/internal/customer"
	"lumak-be/internal/logger"
	"lumak-be/internal/loyalty"
	"lumak-be/internal/packages"
	"lumak-be/internal/pricing"
	"lumak-be/internal/product"
	"lumak-be/internal/utils"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrders(ctx context.Context, search, date string) ([]*Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	// UpdateOrderStatus applies a lifecycle transition with its
	// compensations in one transaction and reports how many loyalty
	// points were earned (non-zero only for the COMPLETED transition).
	UpdateOrderStatus(ctx context.Context, id int64, next Status) (*Order, int, error)
}

type repository struct {
	db             *sql.DB
	profitPerPoint int
}

func NewRepository(db *sql.DB, profitPerPoint int) Repository {
	return &repository{db: db, profitPerPoint: profitPerPoint}
}

// stockMove is one product-level stock decrement owed by an order line.
// Package lines expand to one move per component.
type stockMove struct {
	productID int64
	quantity  int
	name      string
}

// capturedLine is a line request resolved against the live catalog:
// prices captured, stock moves computed.
type capturedLine struct {
	item  *OrderItem
	moves []stockMove
}

func (r *repository) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(input.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	customerName := input.CustomerName
	if input.CustomerID != nil {
		var name sql.NullString
		err := tx.QueryRowContext(ctx,
			`SELECT name FROM customers WHERE id = $1`, *input.CustomerID,
		).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		if err != nil {
			return nil, err
		}
		if customerName == "" && name.Valid {
			customerName = name.String
		}
	}

	lines := make([]*capturedLine, 0, len(input.Items))
	for _, req := range input.Items {
		var line *capturedLine
		var err error
		if req.ProductID != nil {
			line, err = r.resolveProductLine(ctx, tx, req)
		} else {
			line, err = r.resolvePackageLine(ctx, tx, req)
		}
		if err != nil {
			log.Warn("failed to resolve order line", zap.Error(err))
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := applyStockMoves(ctx, tx, lines); err != nil {
		log.Warn("failed to commit stock", zap.Error(err))
		return nil, err
	}

	if input.RedeemedPoints > 0 {
		if err := loyalty.DebitTx(ctx, tx, *input.CustomerID, input.RedeemedPoints); err != nil {
			log.Warn("failed to debit redeemed points", zap.Error(err))
			return nil, err
		}
	}

	pricingLines := make([]pricing.Line, 0, len(lines))
	for _, line := range lines {
		pricingLines = append(pricingLines, pricing.Line{
			Quantity:      line.item.Quantity,
			UnitPrice:     line.item.Price,
			OriginalPrice: line.item.OriginalPrice,
			UnitCost:      line.item.UnitCost,
			IsFree:        line.item.IsFree,
		})
	}

	breakdown := pricing.Calculate(pricing.Input{
		Lines:          pricingLines,
		DiscountValue:  input.DiscountValue,
		DiscountType:   input.DiscountType,
		PointsCredit:   loyalty.RedemptionCredit(input.RedeemedPoints),
		DeliveryCost:   input.DeliveryCost,
		DeliveryPaidBy: input.DeliveryPaidBy,
		PackagingCost:  input.PackagingCost,
	})

	order := &Order{
		OrderNumber:    utils.GenerateOrderNumber(),
		CustomerID:     input.CustomerID,
		CustomerName:   customerName,
		PackagingCost:  input.PackagingCost,
		DeliveryCost:   input.DeliveryCost,
		DeliveryPaidBy: input.DeliveryPaidBy,
		DiscountValue:  input.DiscountValue,
		DiscountType:   input.DiscountType,
		RedeemedPoints: input.RedeemedPoints,
		Source:         input.Source,
		Status:         StatusNew,
		TotalPrice:     breakdown.GrandTotal,
		TotalProfit:    breakdown.Profit,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			order_number, customer_id, customer_name,
			packaging_cost, delivery_cost, delivery_paid_by,
			discount_value, discount_type, redeemed_points,
			source, status, total_price, total_profit
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id, created_at
	`,
		order.OrderNumber, order.CustomerID, order.CustomerName,
		order.PackagingCost, order.DeliveryCost, order.DeliveryPaidBy,
		order.DiscountValue, order.DiscountType, order.RedeemedPoints,
		order.Source, order.Status, order.TotalPrice, order.TotalProfit,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for _, line := range lines {
		item := line.item
		item.OrderID = order.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, package_id, name,
				quantity, is_free, price, original_price, unit_cost
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			RETURNING id
		`,
			item.OrderID, item.ProductID, item.PackageID, item.Name,
			item.Quantity, item.IsFree, item.Price, item.OriginalPrice, item.UnitCost,
		).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return nil, err
		}

		// Components record the exact stock taken by this line, so a
		// later cancel/return restores precisely what was consumed even
		// if the package definition changes in the meantime.
		for _, move := range line.moves {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_item_components (order_item_id, product_id, quantity)
				VALUES ($1, $2, $3)
			`, item.ID, move.productID, move.quantity)
			if err != nil {
				log.Error("failed to insert order item component", zap.Error(err))
				return nil, err
			}
		}

		order.Items = append(order.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int("total_price", order.TotalPrice),
	)
	return order, nil
}

func (r *repository) resolveProductLine(ctx context.Context, tx *sql.Tx, req LineRequest) (*capturedLine, error) {
	var (
		name               string
		cost, price, stock int
	)
	err := tx.QueryRowContext(ctx, `
		SELECT name, cost, selling_price, stock FROM products WHERE id = $1
	`, *req.ProductID).Scan(&name, &cost, &price, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Quantity > stock {
		return nil, &InsufficientStockError{Name: name, Requested: req.Quantity, Available: stock}
	}

	item := &OrderItem{
		ProductID:     req.ProductID,
		Name:          name,
		Quantity:      req.Quantity,
		IsFree:        req.IsFree,
		Price:         price,
		OriginalPrice: price,
		UnitCost:      cost,
	}
	if req.IsFree {
		item.Price = 0
	}

	return &capturedLine{
		item:  item,
		moves: []stockMove{{productID: *req.ProductID, quantity: req.Quantity, name: name}},
	}, nil
}

func (r *repository) resolvePackageLine(ctx context.Context, tx *sql.Tx, req LineRequest) (*capturedLine, error) {
	var (
		pkgName  string
		pkgPrice int
	)
	err := tx.QueryRowContext(ctx, `
		SELECT name, selling_price FROM packages WHERE id = $1
	`, *req.PackageID).Scan(&pkgName, &pkgPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, packages.ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT pi.product_id, pi.quantity, pr.name, pr.cost, pr.stock
		FROM package_items pi
		JOIN products pr ON pr.id = pi.product_id
		WHERE pi.package_id = $1
		ORDER BY pi.product_id ASC
	`, *req.PackageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		moves    []stockMove
		unitCost int
		// Availability derived from live component stock, never from a
		// client-submitted snapshot.
		available = -1
	)
	for rows.Next() {
		var (
			productID    int64
			componentQty int
			name         string
			cost, stock  int
		)
		if err := rows.Scan(&productID, &componentQty, &name, &cost, &stock); err != nil {
			return nil, err
		}

		if componentQty <= 0 {
			available = 0
			continue
		}

		n := stock / componentQty
		if available < 0 || n < available {
			available = n
		}

		unitCost += cost * componentQty
		moves = append(moves, stockMove{
			productID: productID,
			quantity:  componentQty * req.Quantity,
			name:      name,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if available < 0 {
		available = 0
	}
	if req.Quantity > available {
		return nil, &InsufficientStockError{Name: pkgName, Requested: req.Quantity, Available: available}
	}

	item := &OrderItem{
		PackageID:     req.PackageID,
		Name:          pkgName,
		Quantity:      req.Quantity,
		IsFree:        req.IsFree,
		Price:         pkgPrice,
		OriginalPrice: pkgPrice,
		UnitCost:      unitCost,
	}
	if req.IsFree {
		item.Price = 0
	}

	return &capturedLine{item: item, moves: moves}, nil
}

// applyStockMoves aggregates all decrements per product and applies them
// in ascending product id order, so two orders touching the same products
// always lock rows in the same sequence. The conditional update re-checks
// stock at commit time: a concurrent order that drained it surfaces as
// the same InsufficientStockError the validation pass would have given.
func applyStockMoves(ctx context.Context, tx *sql.Tx, lines []*capturedLine) error {
	totals := make(map[int64]int)
	names := make(map[int64]string)
	ids := make([]int64, 0)

	for _, line := range lines {
		for _, move := range line.moves {
			if _, seen := totals[move.productID]; !seen {
				ids = append(ids, move.productID)
				names[move.productID] = move.name
			}
			totals[move.productID] += move.quantity
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		qty := totals[id]
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1, updated_at = NOW()
			WHERE id = $2 AND stock >= $1
		`, qty, id)
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
				`SELECT stock FROM products WHERE id = $1`, id,
			).Scan(&available); err != nil {
				return err
			}
			return &InsufficientStockError{Name: names[id], Requested: qty, Available: available}
		}
	}

	return nil
}

func (r *repository) UpdateOrderStatus(ctx context.Context, id int64, next Status) (*Order, int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateOrderStatus"),
		zap.Int64("order_id", id),
		zap.String("next_status", string(next)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	var (
		current        Status
		customerID     sql.NullInt64
		redeemedPoints int
		totalProfit    int
	)
	err = tx.QueryRowContext(ctx, `
		SELECT status, customer_id, redeemed_points, total_profit
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&current, &customerID, &redeemedPoints, &totalProfit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrOrderNotFound
	}
	if err != nil {
		return nil, 0, err
	}

	if !CanTransition(current, next) {
		return nil, 0, &InvalidTransitionError{From: current, To: next}
	}

	earned := 0
	switch next {
	case StatusCancelled, StatusReturned:
		if err := restockOrder(ctx, tx, id); err != nil {
			log.Error("failed to restock order", zap.Error(err))
			return nil, 0, err
		}
		if redeemedPoints > 0 && customerID.Valid {
			if err := loyalty.CreditTx(ctx, tx, customerID.Int64, redeemedPoints); err != nil {
				log.Error("failed to refund redeemed points", zap.Error(err))
				return nil, 0, err
			}
		}
	case StatusCompleted:
		var cid *int64
		if customerID.Valid {
			cid = &customerID.Int64
		}
		earned, err = loyalty.EarnTx(ctx, tx, id, cid, totalProfit, r.profitPerPoint)
		if err != nil {
			log.Error("failed to award points", zap.Error(err))
			return nil, 0, err
		}
	}

	if next == StatusCompleted {
		_, err = tx.ExecContext(ctx,
			`UPDATE orders SET status = $2, completed_at = NOW() WHERE id = $1`, id, next)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE orders SET status = $2 WHERE id = $1`, id, next)
	}
	if err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	log.Info("order status updated",
		zap.String("from", string(current)),
		zap.Int("points_earned", earned),
	)

	updated, err := r.GetOrder(ctx, id)
	if err != nil {
		return nil, earned, err
	}
	return updated, earned, nil
}

// restockOrder reverses the exact stock decrements recorded at creation,
// in the same ascending product id order used when they were taken.
func restockOrder(ctx context.Context, tx *sql.Tx, orderID int64) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT c.product_id, SUM(c.quantity)
		FROM order_item_components c
		JOIN order_items i ON i.id = c.order_item_id
		WHERE i.order_id = $1
		GROUP BY c.product_id
		ORDER BY c.product_id ASC
	`, orderID)
	if err != nil {
		return err
	}
	defer rows.Close()

	type restock struct {
		productID int64
		quantity  int
	}
	var moves []restock
	for rows.Next() {
		var m restock
		if err := rows.Scan(&m.productID, &m.quantity); err != nil {
			return err
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range moves {
		_, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock + $1, updated_at = NOW()
			WHERE id = $2
		`, m.quantity, m.productID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) GetOrders(ctx context.Context, search, date string) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrders"),
	)

	query := `
		SELECT id, order_number, customer_id, customer_name,
		       packaging_cost, delivery_cost, delivery_paid_by,
		       discount_value, discount_type, redeemed_points,
		       source, status, total_price, total_profit,
		       points_awarded, created_at, completed_at
		FROM orders
	`
	where := ""
	args := []any{}
	argIndex := 1

	if search != "" {
		where = fmt.Sprintf(" WHERE (order_number ILIKE $%d OR customer_name ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}
	if date != "" {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += fmt.Sprintf(" created_at::date = $%d", argIndex)
		args = append(args, date)
	}

	rows, err := r.db.QueryContext(ctx, query+where+" ORDER BY created_at DESC", args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	orderIDs := []int64{}
	byID := map[int64]*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
		orderIDs = append(orderIDs, o.ID)
		byID[o.ID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orderIDs) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, package_id, name,
		       quantity, is_free, price, original_price, unit_cost
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id ASC
	`, pq.Array(orderIDs))
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item, err := scanOrderItem(itemRows)
		if err != nil {
			return nil, err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return orders, itemRows.Err()
}

func (r *repository) GetOrder(ctx context.Context, id int64) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, order_number, customer_id, customer_name,
		       packaging_cost, delivery_cost, delivery_paid_by,
		       discount_value, discount_type, redeemed_points,
		       source, status, total_price, total_profit,
		       points_awarded, created_at, completed_at
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, package_id, name,
		       quantity, is_free, price, original_price, unit_cost
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	return o, rows.Err()
}

func scanOrder(row interface{ Scan(dest ...any) error }) (*Order, error) {
	var (
		o          Order
		customerID sql.NullInt64
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &customerID, &o.CustomerName,
		&o.PackagingCost, &o.DeliveryCost, &o.DeliveryPaidBy,
		&o.DiscountValue, &o.DiscountType, &o.RedeemedPoints,
		&o.Source, &o.Status, &o.TotalPrice, &o.TotalProfit,
		&o.PointsAwarded, &o.CreatedAt, &o.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		o.CustomerID = &customerID.Int64
	}
	o.Items = []*OrderItem{}
	return &o, nil
}

func scanOrderItem(rows *sql.Rows) (*OrderItem, error) {
	var (
		item      OrderItem
		productID sql.NullInt64
		packageID sql.NullInt64
	)
	err := rows.Scan(
		&item.ID, &item.OrderID, &productID, &packageID, &item.Name,
		&item.Quantity, &item.IsFree, &item.Price, &item.OriginalPrice, &item.UnitCost,
	)
	if err != nil {
		return nil, err
	}
	if productID.Valid {
		item.ProductID = &productID.Int64
	}
	if packageID.Valid {
		item.PackageID = &packageID.Int64
	}
	return &item, nil
}
