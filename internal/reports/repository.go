package reports

import (
	"context"
	"database/sql"
	"time"

	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetYearlyStats(ctx context.Context, year int) ([]*MonthlyStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// All order figures aggregate COMPLETED orders by completion time; an
// order contributes nothing to the books until it completes. Expenses
// go by spent_at.
func (r *repository) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetDashboardStats"),
	)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &DashboardStats{}
	for _, window := range []struct {
		since time.Time
		dst   *PeriodStats
	}{
		{startOfDay, &stats.Today},
		{weekAgo, &stats.Weekly},
		{startOfMonth, &stats.Monthly},
	} {
		s, err := r.periodStats(ctx, window.since)
		if err != nil {
			log.Error("failed to aggregate period stats", zap.Error(err))
			return nil, err
		}
		*window.dst = s
	}

	var revenue int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_price), 0), COALESCE(SUM(total_profit), 0)
		FROM orders
		WHERE status = 'COMPLETED'
	`).Scan(&stats.Totals.TotalOrders, &revenue, &stats.Totals.TotalProfit)
	if err != nil {
		log.Error("failed to aggregate totals", zap.Error(err))
		return nil, err
	}
	stats.Totals.TotalCapital = revenue - stats.Totals.TotalProfit

	return stats, nil
}

func (r *repository) periodStats(ctx context.Context, since time.Time) (PeriodStats, error) {
	var (
		s       PeriodStats
		revenue int
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_price), 0), COALESCE(SUM(total_profit), 0)
		FROM orders
		WHERE status = 'COMPLETED' AND completed_at >= $1
	`, since).Scan(&s.OrderCount, &revenue, &s.Profit)
	if err != nil {
		return s, err
	}
	s.Capital = revenue - s.Profit

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE spent_at >= $1
	`, since).Scan(&s.Expenses)
	return s, err
}

// GetYearlyStats returns one entry per calendar month, months without
// activity included as zero rows so the client always gets twelve.
func (r *repository) GetYearlyStats(ctx context.Context, year int) ([]*MonthlyStats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetYearlyStats"),
		zap.Int("year", year),
	)

	stats := make([]*MonthlyStats, 12)
	for i := range stats {
		stats[i] = &MonthlyStats{
			Month:       i + 1,
			MonthName:   arMonthNames[i],
			EnMonthName: enMonthNames[i],
		}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT EXTRACT(MONTH FROM completed_at)::int AS month,
		       COUNT(*), COALESCE(SUM(total_price), 0), COALESCE(SUM(total_profit), 0)
		FROM orders
		WHERE status = 'COMPLETED' AND EXTRACT(YEAR FROM completed_at)::int = $1
		GROUP BY month
	`, year)
	if err != nil {
		log.Error("failed to aggregate yearly orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var month, count, revenue, profit int
		if err := rows.Scan(&month, &count, &revenue, &profit); err != nil {
			return nil, err
		}
		if month < 1 || month > 12 {
			continue
		}
		s := stats[month-1]
		s.OrderCount = count
		s.Revenue = revenue
		s.Profit = profit
		s.Capital = revenue - profit
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	expenseRows, err := r.db.QueryContext(ctx, `
		SELECT EXTRACT(MONTH FROM spent_at)::int AS month, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE EXTRACT(YEAR FROM spent_at)::int = $1
		GROUP BY month
	`, year)
	if err != nil {
		log.Error("failed to aggregate yearly expenses", zap.Error(err))
		return nil, err
	}
	defer expenseRows.Close()

	for expenseRows.Next() {
		var month, amount int
		if err := expenseRows.Scan(&month, &amount); err != nil {
			return nil, err
		}
		if month < 1 || month > 12 {
			continue
		}
		stats[month-1].Expenses = amount
	}

	return stats, expenseRows.Err()
}
