package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "cost", "selling_price", "stock", "created_at", "updated_at"}).
		AddRow(1, "Serum", 3000, 5000, 10, time.Now(), time.Now())
}

func TestRepository_GetProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, cost, selling_price, stock, created_at, updated_at FROM products ORDER BY name ASC`).
			WillReturnRows(productRows())

		products, err := repo.GetProducts(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "Serum", products[0].Name)
	})

	t.Run("Search", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE name ILIKE \$1 ORDER BY name ASC`).
			WithArgs("%ser%").
			WillReturnRows(productRows())

		products, err := repo.GetProducts(ctx, "ser")
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products`).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetProducts(ctx, "")
		assert.Error(t, err)
	})
}

func TestRepository_GetProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(productRows())

		p, err := repo.GetProduct(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 5000, p.SellingPrice)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cost", "selling_price", "stock", "created_at", "updated_at"}))

		_, err := repo.GetProduct(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_CreateProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO products \(name, cost, selling_price, stock\)`).
		WithArgs("Serum", 3000, 5000, 10).
		WillReturnRows(productRows())

	p, err := repo.CreateProduct(ctx, CreateProductInput{Name: "Serum", Cost: 3000, SellingPrice: 5000, Stock: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestRepository_DeleteProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Referenced", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.DeleteProduct(ctx, 1)
		assert.ErrorIs(t, err, ErrProductInUse)
	})

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteProduct(ctx, 2))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteProduct(ctx, 3), ErrProductNotFound)
	})
}
