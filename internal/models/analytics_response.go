package models

import (
	"time"

	"fintrack-be/internal/entities"
)

// Summary holds the aggregate totals for the requested window.
// Totals are 0, never null, when nothing matches.
type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetIncome        float64 `json:"netIncome"`
	TransactionCount int     `json:"transactionCount"`
}

// Period echoes the resolved inclusive date window back to the client
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AnalyticsResponse represents the combined aggregate views for one user
type AnalyticsResponse struct {
	Summary            Summary                       `json:"summary"`
	ExpensesByCategory []*entities.CategoryExpense   `json:"expensesByCategory"`
	MonthlyTrends      []*entities.MonthlyTrend      `json:"monthlyTrends"`
	RecentTransactions []*entities.TransactionDetail `json:"recentTransactions"`
	Period             Period                        `json:"period"`
}
