package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"fintrack-be/internal/entities"
)

// CategorySeed holds the attributes of a category created in bulk at registration
type CategorySeed struct {
	Name  string
	Color string
	Icon  string
}

// CategoryRepository defines the interface for category database operations.
// Every query carries the owning user's id in its predicate.
type CategoryRepository interface {
	Create(ctx context.Context, userID, name, color, icon string) (*entities.Category, error)
	CreateBatch(ctx context.Context, userID string, seeds []CategorySeed) error
	GetByUserID(ctx context.Context, userID string) ([]*entities.Category, error)
	FindByID(ctx context.Context, id, userID string) (*entities.Category, error)
	FindByName(ctx context.Context, userID, name string) (*entities.Category, error)
	Delete(ctx context.Context, id, userID string) error
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a new category for a user
func (r *categoryRepository) Create(ctx context.Context, userID, name, color, icon string) (*entities.Category, error) {
	query := `
		INSERT INTO categories (user_id, name, color, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, color, icon, created_at, updated_at
	`

	var category entities.Category
	err := r.db.QueryRowContext(ctx, query, userID, name, color, icon).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Color,
		&category.Icon,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// CreateBatch inserts the default category set for a freshly registered user
// in a single statement
func (r *categoryRepository) CreateBatch(ctx context.Context, userID string, seeds []CategorySeed) error {
	if len(seeds) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(seeds))
	args := make([]interface{}, 0, len(seeds)*4)
	for i, seed := range seeds {
		n := i * 4
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4))
		args = append(args, userID, seed.Name, seed.Color, seed.Icon)
	}

	query := fmt.Sprintf(`
		INSERT INTO categories (user_id, name, color, icon)
		VALUES %s
	`, strings.Join(placeholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	return nil
}

// GetByUserID retrieves all categories owned by a user, sorted by name
func (r *categoryRepository) GetByUserID(ctx context.Context, userID string) ([]*entities.Category, error) {
	query := `
		SELECT id, user_id, name, color, icon, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []*entities.Category
	for rows.Next() {
		var category entities.Category
		err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Color,
			&category.Icon,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// FindByID finds a category by id, only if the given user owns it
func (r *categoryRepository) FindByID(ctx context.Context, id, userID string) (*entities.Category, error) {
	query := `
		SELECT id, user_id, name, color, icon, created_at, updated_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`

	var category entities.Category
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Color,
		&category.Icon,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

// FindByName finds a user's category by its exact name
func (r *categoryRepository) FindByName(ctx context.Context, userID, name string) (*entities.Category, error) {
	query := `
		SELECT id, user_id, name, color, icon, created_at, updated_at
		FROM categories
		WHERE user_id = $1 AND name = $2
	`

	var category entities.Category
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Color,
		&category.Icon,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

// Delete removes a category, only if the given user owns it
func (r *categoryRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
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
