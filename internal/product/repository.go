package product

import (
	"context"
	"database/sql"
	"errors"

	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context, search string) ([]*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProducts(ctx context.Context, search string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProducts"),
	)

	query := `
		SELECT id, name, cost, selling_price, stock, created_at, updated_at
		FROM products
	`
	args := []any{}
	if search != "" {
		query += " WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Cost, &p.SellingPrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

func (r *repository) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, cost, selling_price, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Cost, &p.SellingPrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("name", input.Name),
	)

	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, cost, selling_price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, cost, selling_price, stock, created_at, updated_at
	`, input.Name, input.Cost, input.SellingPrice, input.Stock).
		Scan(&p.ID, &p.Name, &p.Cost, &p.SellingPrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = COALESCE($2, name),
		    cost = COALESCE($3, cost),
		    selling_price = COALESCE($4, selling_price),
		    stock = COALESCE($5, stock),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, cost, selling_price, stock, created_at, updated_at
	`, id, input.Name, input.Cost, input.SellingPrice, input.Stock).
		Scan(&p.ID, &p.Name, &p.Cost, &p.SellingPrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteProduct"),
		zap.Int64("product_id", id),
	)

	// Historical orders and package definitions keep referencing the product,
	// so it must not disappear under them.
	var referenced bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM order_item_components WHERE product_id = $1)
		    OR EXISTS(SELECT 1 FROM package_items WHERE product_id = $1)
	`, id).Scan(&referenced)
	if err != nil {
		log.Error("failed to check product references", zap.Error(err))
		return err
	}
	if referenced {
		return ErrProductInUse
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
