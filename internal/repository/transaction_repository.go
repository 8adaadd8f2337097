package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fintrack-be/internal/entities"
)

// TransactionFilter narrows the transaction listing. Zero values mean
// "no filter". Date bounds are inclusive on both ends.
type TransactionFilter struct {
	Type       string
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionRepository defines the interface for transaction database
// operations, including the analytics aggregations. Every query carries
// the owning user's id in its predicate.
type TransactionRepository interface {
	Create(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)
	FindByID(ctx context.Context, id, userID string) (*entities.Transaction, error)
	FindDetailByID(ctx context.Context, id, userID string) (*entities.TransactionDetail, error)
	Update(ctx context.Context, t *entities.Transaction) error
	Delete(ctx context.Context, id, userID string) error
	List(ctx context.Context, userID string, filter TransactionFilter, offset, limit int) ([]*entities.TransactionDetail, error)
	Count(ctx context.Context, userID string, filter TransactionFilter) (int, error)
	CountByCategory(ctx context.Context, userID, categoryID string) (int, error)

	SumByType(ctx context.Context, userID, txType string, start, end time.Time) (float64, error)
	CountInWindow(ctx context.Context, userID string, start, end time.Time) (int, error)
	ExpensesByCategory(ctx context.Context, userID string, start, end time.Time) ([]*entities.CategoryExpense, error)
	MonthlyTrends(ctx context.Context, userID string, start, end time.Time) ([]*entities.MonthlyTrend, error)
	Recent(ctx context.Context, userID string, start, end time.Time, limit int) ([]*entities.TransactionDetail, error)
}

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts a new transaction into the database
func (r *transactionRepository) Create(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, description, type, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, category_id, amount, description, type, date, created_at, updated_at
	`

	var created entities.Transaction
	err := r.db.QueryRowContext(ctx, query,
		t.UserID,
		t.CategoryID,
		t.Amount,
		t.Description,
		t.Type,
		t.Date,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.CategoryID,
		&created.Amount,
		&created.Description,
		&created.Type,
		&created.Date,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &created, nil
}

// FindByID finds a transaction by id, only if the given user owns it
func (r *transactionRepository) FindByID(ctx context.Context, id, userID string) (*entities.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount, description, type, date, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`

	var t entities.Transaction
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&t.ID,
		&t.UserID,
		&t.CategoryID,
		&t.Amount,
		&t.Description,
		&t.Type,
		&t.Date,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return &t, nil
}

const detailColumns = `
	t.id, t.amount, t.description, t.type, t.date, t.user_id, t.created_at, t.updated_at,
	c.id, c.name, c.color, c.icon
`

func scanDetail(scanner interface{ Scan(...interface{}) error }) (*entities.TransactionDetail, error) {
	var d entities.TransactionDetail
	err := scanner.Scan(
		&d.ID,
		&d.Amount,
		&d.Description,
		&d.Type,
		&d.Date,
		&d.UserID,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Category.ID,
		&d.Category.Name,
		&d.Category.Color,
		&d.Category.Icon,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindDetailByID finds an owned transaction with its category resolved
func (r *transactionRepository) FindDetailByID(ctx context.Context, id, userID string) (*entities.TransactionDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1 AND t.user_id = $2
	`

	detail, err := scanDetail(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return detail, nil
}

// Update rewrites the mutable fields of an owned transaction
func (r *transactionRepository) Update(ctx context.Context, t *entities.Transaction) error {
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, description = $3, type = $4, date = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		t.CategoryID,
		t.Amount,
		t.Description,
		t.Type,
		t.Date,
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a transaction, only if the given user owns it
func (r *transactionRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// buildFilter appends the optional filter predicates to a WHERE clause that
// already scopes by user id. Returns the extra SQL and its arguments.
func buildFilter(filter TransactionFilter, argOffset int) (string, []interface{}) {
	var clause string
	var args []interface{}
	n := argOffset

	if filter.Type != "" {
		n++
		clause += fmt.Sprintf(" AND t.type = $%d", n)
		args = append(args, filter.Type)
	}
	if filter.CategoryID != "" {
		n++
		clause += fmt.Sprintf(" AND t.category_id = $%d", n)
		args = append(args, filter.CategoryID)
	}
	if filter.StartDate != nil {
		n++
		clause += fmt.Sprintf(" AND t.date >= $%d", n)
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		n++
		clause += fmt.Sprintf(" AND t.date <= $%d", n)
		args = append(args, *filter.EndDate)
	}

	return clause, args
}

// List retrieves one page of a user's transactions, most recent first,
// with category display attributes resolved
func (r *transactionRepository) List(ctx context.Context, userID string, filter TransactionFilter, offset, limit int) ([]*entities.TransactionDetail, error) {
	clause, filterArgs := buildFilter(filter, 1)
	args := append([]interface{}{userID}, filterArgs...)

	query := `
		SELECT ` + detailColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1` + clause + fmt.Sprintf(`
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entities.TransactionDetail
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// Count returns how many of a user's transactions match the filter
func (r *transactionRepository) Count(ctx context.Context, userID string, filter TransactionFilter) (int, error) {
	clause, filterArgs := buildFilter(filter, 1)
	args := append([]interface{}{userID}, filterArgs...)

	query := `
		SELECT COUNT(*)
		FROM transactions t
		WHERE t.user_id = $1` + clause

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// CountByCategory returns how many of a user's transactions reference a category
func (r *transactionRepository) CountByCategory(ctx context.Context, userID, categoryID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions by category: %w", err)
	}

	return count, nil
}

// SumByType sums one transaction type over an inclusive date window.
// COALESCE keeps the result at 0 when nothing matches.
func (r *transactionRepository) SumByType(ctx context.Context, userID, txType string, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = $2 AND date >= $3 AND date <= $4
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, userID, txType, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return total, nil
}

// CountInWindow counts a user's transactions over an inclusive date window
func (r *transactionRepository) CountInWindow(ctx context.Context, userID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// ExpensesByCategory groups a user's expenses by category over the window,
// largest total first. Categories without matching expenses produce no row.
func (r *transactionRepository) ExpensesByCategory(ctx context.Context, userID string, start, end time.Time) ([]*entities.CategoryExpense, error) {
	query := `
		SELECT c.id, c.name, c.color, SUM(t.amount) AS total, COUNT(*) AS count
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.type = 'expense' AND t.date >= $2 AND t.date <= $3
		GROUP BY c.id, c.name, c.color
		ORDER BY total DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses by category: %w", err)
	}
	defer rows.Close()

	var breakdown []*entities.CategoryExpense
	for rows.Next() {
		var row entities.CategoryExpense
		if err := rows.Scan(&row.CategoryID, &row.Name, &row.Color, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category expense: %w", err)
		}
		breakdown = append(breakdown, &row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category expenses: %w", err)
	}

	return breakdown, nil
}

// MonthlyTrends aggregates a user's transactions per (year, month, type)
// over the window, ascending by year then month
func (r *transactionRepository) MonthlyTrends(ctx context.Context, userID string, start, end time.Time) ([]*entities.MonthlyTrend, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM date)::int AS year,
			EXTRACT(MONTH FROM date)::int AS month,
			type,
			SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY year, month, type
		ORDER BY year ASC, month ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly trends: %w", err)
	}
	defer rows.Close()

	var trends []*entities.MonthlyTrend
	for rows.Next() {
		var trend entities.MonthlyTrend
		if err := rows.Scan(&trend.Year, &trend.Month, &trend.Type, &trend.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly trend: %w", err)
		}
		trends = append(trends, &trend)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly trends: %w", err)
	}

	return trends, nil
}

// Recent retrieves the most recent transactions in the window, date descending,
// with category display attributes resolved
func (r *transactionRepository) Recent(ctx context.Context, userID string, start, end time.Time, limit int) ([]*entities.TransactionDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.date >= $2 AND t.date <= $3
		ORDER BY t.date DESC
		LIMIT $4
	`

	rows, err := r.db.QueryContext(ctx, query, userID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entities.TransactionDetail
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
