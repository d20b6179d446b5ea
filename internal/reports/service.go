package reports

import "context"

type Service interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetYearlyStats(ctx context.Context, year int) ([]*MonthlyStats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	return s.repo.GetDashboardStats(ctx)
}

func (s *service) GetYearlyStats(ctx context.Context, year int) ([]*MonthlyStats, error) {
	if year < 2000 || year > 2100 {
		return nil, ErrInvalidYear
	}
	return s.repo.GetYearlyStats(ctx, year)
}
