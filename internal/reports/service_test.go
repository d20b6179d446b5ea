package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DashboardStats), args.Error(1)
}

func (m *MockRepository) GetYearlyStats(ctx context.Context, year int) ([]*MonthlyStats, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*MonthlyStats), args.Error(1)
}

func TestService_GetYearlyStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetYearlyStats", ctx, 2025).Return([]*MonthlyStats{{Month: 1}}, nil)

		stats, err := svc.GetYearlyStats(ctx, 2025)
		assert.NoError(t, err)
		assert.Len(t, stats, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("YearOutOfRange", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.GetYearlyStats(ctx, 1999)
		assert.ErrorIs(t, err, ErrInvalidYear)

		_, err = svc.GetYearlyStats(ctx, 2101)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})
}
