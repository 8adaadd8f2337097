package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack-be/internal/cache"
	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
)

// Defaults applied when a category is created without display attributes.
const (
	DefaultCategoryColor = "#3B82F6"
	DefaultCategoryIcon  = "DollarSign"
)

const categoryCacheTTL = 5 * time.Minute

// CategoryService defines the interface for category business logic
type CategoryService interface {
	GetCategories(ctx context.Context, userID string) ([]*entities.Category, error)
	CreateCategory(ctx context.Context, userID string, req *models.CreateCategoryRequest) (*entities.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

type categoryService struct {
	categoryRepo    repository.CategoryRepository
	transactionRepo repository.TransactionRepository
	cache           cache.Cache
}

// NewCategoryService creates a new category service. The cache is optional;
// a nil cache disables the listing cache without changing behavior.
func NewCategoryService(categoryRepo repository.CategoryRepository, transactionRepo repository.TransactionRepository, cacheClient cache.Cache) CategoryService {
	return &categoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		cache:           cacheClient,
	}
}

func categoryCacheKey(userID string) string {
	return fmt.Sprintf("categories:%s", userID)
}

// GetCategories lists the caller's categories sorted by name
func (s *categoryService) GetCategories(ctx context.Context, userID string) ([]*entities.Category, error) {
	if s.cache != nil {
		var cached []*entities.Category
		if err := s.cache.GetJSON(ctx, categoryCacheKey(userID), &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort; listing still succeeds when the cache write fails
		_ = s.cache.SetJSON(ctx, categoryCacheKey(userID), categories, categoryCacheTTL)
	}

	return categories, nil
}

// CreateCategory creates a category for the caller, rejecting duplicates
// per user and defaulting color/icon when omitted
func (s *categoryService) CreateCategory(ctx context.Context, userID string, req *models.CreateCategoryRequest) (*entities.Category, error) {
	existing, err := s.categoryRepo.FindByName(ctx, userID, req.Name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	color := req.Color
	if color == "" {
		color = DefaultCategoryColor
	}
	icon := req.Icon
	if icon == "" {
		icon = DefaultCategoryIcon
	}

	category, err := s.categoryRepo.Create(ctx, userID, req.Name, color, icon)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)

	return category, nil
}

// DeleteCategory removes a caller-owned category, refusing while any
// transaction still references it
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.transactionRepo.CountByCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, categoryID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.invalidate(ctx, userID)

	return nil
}

func (s *categoryService) invalidate(ctx context.Context, userID string) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, categoryCacheKey(userID))
	}
}
