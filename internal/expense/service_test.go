package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetExpenses(ctx context.Context, month string) ([]*Expense, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Expense), args.Error(1)
}

func (m *MockRepository) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Expense), args.Error(1)
}

func (m *MockRepository) DeleteExpense(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_CreateExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := CreateExpenseInput{Description: "packaging refill", Amount: 25000, Category: "supplies"}
		mockRepo.On("CreateExpense", ctx, input).Return(&Expense{ID: 1, Description: "packaging refill"}, nil)

		e, err := svc.CreateExpense(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), e.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("BlankDescription", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.CreateExpense(ctx, CreateExpenseInput{Description: "   ", Amount: 100})
		assert.ErrorIs(t, err, ErrMissingDescription)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.CreateExpense(ctx, CreateExpenseInput{Description: "ads", Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestService_GetExpenses(t *testing.T) {
	ctx := context.Background()

	t.Run("MonthFilter", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetExpenses", ctx, "2025-03").Return([]*Expense{{ID: 1}}, nil)

		expenses, err := svc.GetExpenses(ctx, "2025-03")
		assert.NoError(t, err)
		assert.Len(t, expenses, 1)
	})

	t.Run("BadMonth", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.GetExpenses(ctx, "March 2025")
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}
