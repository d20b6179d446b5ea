package expense

import (
	"context"
	"database/sql"

	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetExpenses(ctx context.Context, month string) ([]*Expense, error)
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetExpenses(ctx context.Context, month string) ([]*Expense, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetExpenses"),
	)

	query := `
		SELECT id, description, amount, category, spent_at, created_at
		FROM expenses
	`
	args := []any{}
	if month != "" {
		query += " WHERE to_char(spent_at, 'YYYY-MM') = $1"
		args = append(args, month)
	}
	query += " ORDER BY spent_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query expenses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	expenses := []*Expense{}
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.SpentAt, &e.CreatedAt); err != nil {
			log.Error("failed to scan expense row", zap.Error(err))
			return nil, err
		}
		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}

func (r *repository) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateExpense"),
	)

	e := &Expense{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO expenses (description, amount, category, spent_at)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING id, spent_at, created_at
	`, input.Description, input.Amount, input.Category, input.SpentAt).
		Scan(&e.ID, &e.SpentAt, &e.CreatedAt)
	if err != nil {
		log.Error("failed to insert expense", zap.Error(err))
		return nil, err
	}

	return e, nil
}

func (r *repository) DeleteExpense(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteExpense"),
		zap.Int64("expense_id", id),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete expense", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
