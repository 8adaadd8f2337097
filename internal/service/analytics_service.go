package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
)

const (
	recentTransactionsLimit = 5
	// The trend series always spans the trailing six calendar months ending
	// now, independent of the requested window.
	trendMonths = 6
)

// AnalyticsService derives the aggregate views for one user and date window
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, userID string, start, end *time.Time) (*models.AnalyticsResponse, error)
}

type analyticsService struct {
	transactionRepo repository.TransactionRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(transactionRepo repository.TransactionRepository) AnalyticsService {
	return &analyticsService{transactionRepo: transactionRepo}
}

// MonthWindow returns the inclusive bounds of the calendar month containing t
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// GetAnalytics computes the four aggregate views over the window, defaulting
// to the current calendar month. The computations are independent read-only
// queries and run concurrently; the combined response is all-or-nothing.
// A window with end before start yields empty/zero results, not an error.
func (s *analyticsService) GetAnalytics(ctx context.Context, userID string, start, end *time.Time) (*models.AnalyticsResponse, error) {
	now := time.Now()
	windowStart, windowEnd := MonthWindow(now)
	if start != nil {
		windowStart = *start
	}
	if end != nil {
		windowEnd = *end
	}

	trendEnd := now
	trendStart := now.AddDate(0, -(trendMonths - 1), 0)

	var (
		totalIncome   float64
		totalExpenses float64
		count         int
		byCategory    []*entities.CategoryExpense
		trends        []*entities.MonthlyTrend
		recent        []*entities.TransactionDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalIncome, err = s.transactionRepo.SumByType(gctx, userID, entities.TypeIncome, windowStart, windowEnd)
		return err
	})
	g.Go(func() error {
		var err error
		totalExpenses, err = s.transactionRepo.SumByType(gctx, userID, entities.TypeExpense, windowStart, windowEnd)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.transactionRepo.CountInWindow(gctx, userID, windowStart, windowEnd)
		return err
	})
	g.Go(func() error {
		var err error
		byCategory, err = s.transactionRepo.ExpensesByCategory(gctx, userID, windowStart, windowEnd)
		return err
	})
	g.Go(func() error {
		var err error
		trends, err = s.transactionRepo.MonthlyTrends(gctx, userID, trendStart, trendEnd)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.transactionRepo.Recent(gctx, userID, windowStart, windowEnd, recentTransactionsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if byCategory == nil {
		byCategory = []*entities.CategoryExpense{}
	}
	if trends == nil {
		trends = []*entities.MonthlyTrend{}
	}
	if recent == nil {
		recent = []*entities.TransactionDetail{}
	}

	return &models.AnalyticsResponse{
		Summary: models.Summary{
			TotalIncome:      totalIncome,
			TotalExpenses:    totalExpenses,
			NetIncome:        totalIncome - totalExpenses,
			TransactionCount: count,
		},
		ExpensesByCategory: byCategory,
		MonthlyTrends:      trends,
		RecentTransactions: recent,
		Period: models.Period{
			Start: windowStart,
			End:   windowEnd,
		},
	}, nil
}
