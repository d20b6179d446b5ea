package expense

import (
	"context"
	"strings"
	"time"
)

type Service interface {
	GetExpenses(ctx context.Context, month string) ([]*Expense, error)
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetExpenses(ctx context.Context, month string) ([]*Expense, error) {
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return nil, ErrInvalidMonth
		}
	}
	return s.repo.GetExpenses(ctx, month)
}

func (s *service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return nil, ErrMissingDescription
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.repo.CreateExpense(ctx, input)
}

func (s *service) DeleteExpense(ctx context.Context, id int64) error {
	return s.repo.DeleteExpense(ctx, id)
}
