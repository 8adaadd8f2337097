package entities

import "time"

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction represents a financial entry in the database
type Transaction struct {
	ID          string    `json:"id"` // UUID
	UserID      string    `json:"userId"`
	CategoryID  string    `json:"categoryId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Type        string    `json:"type"` // income or expense
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TransactionDetail is a transaction row with its category display
// attributes resolved via join
type TransactionDetail struct {
	ID          string      `json:"id"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Category    CategoryRef `json:"category"`
	Date        time.Time   `json:"date"`
	UserID      string      `json:"userId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CategoryExpense is one row of the expense-by-category breakdown
type CategoryExpense struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
}

// MonthlyTrend is one aggregate point of the monthly trend series,
// keyed by (year, month, type)
type MonthlyTrend struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}
