package customer

import (
	"context"
	"database/sql"
	"errors"

	"lumak-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetCustomers(ctx context.Context, search string) ([]*Customer, error)
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	CreateCustomer(ctx context.Context, input UpsertCustomerInput) (*Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input UpsertCustomerInput) (*Customer, error)
	GetInactiveCustomers(ctx context.Context, days int) ([]*Customer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const customerColumns = `id, name, phone, instagram, address, tags, points, created_at`

func scanCustomer(row interface{ Scan(dest ...any) error }) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Instagram,
		&c.Address,
		pq.Array(&c.Tags),
		&c.Points,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetCustomers(ctx context.Context, search string) ([]*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCustomers"),
	)

	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR phone ILIKE $1 OR instagram ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := []*Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			log.Error("failed to scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *repository) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCustomer"),
		zap.Int64("customer_id", id),
	)

	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		log.Error("failed to get customer", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_number, total_price, status, created_at, completed_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, id)
	if err != nil {
		log.Error("failed to query customer orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.CompletedAt); err != nil {
			log.Error("failed to scan order summary", zap.Error(err))
			return nil, err
		}
		c.Orders = append(c.Orders, &o)
	}

	return c, rows.Err()
}

func (r *repository) CreateCustomer(ctx context.Context, input UpsertCustomerInput) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateCustomer"),
	)

	c, err := scanCustomer(r.db.QueryRowContext(ctx, `
		INSERT INTO customers (name, phone, instagram, address, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+customerColumns,
		input.Name, input.Phone, input.Instagram, input.Address, pq.Array(input.Tags)))
	if err != nil {
		log.Error("failed to insert customer", zap.Error(err))
		return nil, err
	}

	return c, nil
}

func (r *repository) UpdateCustomer(ctx context.Context, id int64, input UpsertCustomerInput) (*Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx, `
		UPDATE customers
		SET name = $2, phone = $3, instagram = $4, address = $5, tags = $6
		WHERE id = $1
		RETURNING `+customerColumns,
		id, input.Name, input.Phone, input.Instagram, input.Address, pq.Array(input.Tags)))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) GetInactiveCustomers(ctx context.Context, days int) ([]*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetInactiveCustomers"),
		zap.Int("days", days),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers c
		WHERE NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.customer_id = c.id
			  AND o.created_at > NOW() - ($1 || ' days')::interval
		)
		ORDER BY created_at DESC
	`, days)
	if err != nil {
		log.Error("failed to query inactive customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := []*Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}
