package packages

import (
	"context"
	"database/sql"

	"lumak-be/internal/logger"
	"lumak-be/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	GetPackages(ctx context.Context) ([]*Package, error)
	GetPackage(ctx context.Context, id int64) (*Package, error)
	CreatePackage(ctx context.Context, input CreatePackageInput) (*Package, error)
	DeletePackage(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const packageSelect = `
	SELECT
		p.id,
		p.name,
		p.selling_price,
		p.created_at,
		pi.id,
		pi.product_id,
		pr.name,
		pi.quantity,
		pr.stock
	FROM packages p
	LEFT JOIN package_items pi ON p.id = pi.package_id
	LEFT JOIN products pr ON pr.id = pi.product_id
`

func (r *repository) GetPackages(ctx context.Context) ([]*Package, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetPackages"),
	)

	rows, err := r.db.QueryContext(ctx, packageSelect+" ORDER BY p.created_at DESC, pi.id ASC")
	if err != nil {
		log.Error("failed to query packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanPackages(rows)
}

func (r *repository) GetPackage(ctx context.Context, id int64) (*Package, error) {
	rows, err := r.db.QueryContext(ctx, packageSelect+" WHERE p.id = $1 ORDER BY pi.id ASC", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pkgs, err := scanPackages(rows)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, ErrPackageNotFound
	}

	return pkgs[0], nil
}

func scanPackages(rows *sql.Rows) ([]*Package, error) {
	packagesMap := make(map[int64]*Package)
	result := []*Package{}

	for rows.Next() {
		var (
			p Package

			itemID        sql.NullInt64
			itemProductID sql.NullInt64
			itemName      sql.NullString
			itemQuantity  sql.NullInt32
			itemStock     sql.NullInt32
		)

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.SellingPrice,
			&p.CreatedAt,
			&itemID,
			&itemProductID,
			&itemName,
			&itemQuantity,
			&itemStock,
		); err != nil {
			return nil, err
		}

		pkg, exists := packagesMap[p.ID]
		if !exists {
			pkg = &Package{
				ID:           p.ID,
				Name:         p.Name,
				SellingPrice: p.SellingPrice,
				CreatedAt:    p.CreatedAt,
				Items:        []*PackageItem{},
			}
			packagesMap[p.ID] = pkg
			result = append(result, pkg)
		}

		if itemID.Valid {
			pkg.Items = append(pkg.Items, &PackageItem{
				ID:           itemID.Int64,
				PackageID:    pkg.ID,
				ProductID:    itemProductID.Int64,
				ProductName:  itemName.String,
				Quantity:     int(itemQuantity.Int32),
				ProductStock: int(itemStock.Int32),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, pkg := range result {
		pkg.Available = Availability(pkg.Items)
	}

	return result, nil
}

func (r *repository) CreatePackage(ctx context.Context, input CreatePackageInput) (*Package, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreatePackage"),
		zap.String("name", input.Name),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var pkgID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO packages (name, selling_price)
		VALUES ($1, $2)
		RETURNING id
	`, input.Name, input.SellingPrice).Scan(&pkgID)
	if err != nil {
		log.Error("failed to insert package", zap.Error(err))
		return nil, err
	}

	for _, item := range input.Items {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, item.ProductID,
		).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			return nil, product.ErrProductNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO package_items (package_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`, pkgID, item.ProductID, item.Quantity)
		if err != nil {
			log.Error("failed to insert package item", zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetPackage(ctx, pkgID)
}

func (r *repository) DeletePackage(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeletePackage"),
		zap.Int64("package_id", id),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM package_items WHERE package_id = $1`, id); err != nil {
		log.Error("failed to delete package items", zap.Error(err))
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete package", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPackageNotFound
	}

	return tx.Commit()
}
