package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
)

const defaultPageSize = 10

// TransactionService defines the interface for transaction business logic
type TransactionService interface {
	List(ctx context.Context, userID string, query *models.ListTransactionsQuery) (*models.ListTransactionsResponse, error)
	Create(ctx context.Context, userID string, req *models.CreateTransactionRequest) (*entities.TransactionDetail, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateTransactionRequest) (*entities.TransactionDetail, error)
	Delete(ctx context.Context, userID, id string) error
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	categoryRepo    repository.CategoryRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository, categoryRepo repository.CategoryRepository) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// List returns one page of the caller's transactions, most recent first
func (s *transactionService) List(ctx context.Context, userID string, query *models.ListTransactionsQuery) (*models.ListTransactionsResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	filter := repository.TransactionFilter{
		Type:       query.Type,
		CategoryID: query.Category,
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
	}

	transactions, err := s.transactionRepo.List(ctx, userID, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.transactionRepo.Count(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []*entities.TransactionDetail{}
	}

	return &models.ListTransactionsResponse{
		Transactions: transactions,
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// checkCategory verifies the referenced category belongs to the caller.
// The store has no cross-user foreign key, so the check happens here at
// write time.
func (s *transactionService) checkCategory(ctx context.Context, userID, categoryID string) error {
	_, err := s.categoryRepo.FindByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCategory
		}
		return fmt.Errorf("failed to verify category: %w", err)
	}
	return nil
}

// Create records a new transaction for the caller; the date defaults to now
func (s *transactionService) Create(ctx context.Context, userID string, req *models.CreateTransactionRequest) (*entities.TransactionDetail, error) {
	if err := s.checkCategory(ctx, userID, req.Category); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	created, err := s.transactionRepo.Create(ctx, &entities.Transaction{
		UserID:      userID,
		CategoryID:  req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
		Date:        date,
	})
	if err != nil {
		return nil, err
	}

	return s.transactionRepo.FindDetailByID(ctx, created.ID, userID)
}

// Update applies a partial update to a caller-owned transaction; nil fields
// keep their current values
func (s *transactionService) Update(ctx context.Context, userID, id string, req *models.UpdateTransactionRequest) (*entities.TransactionDetail, error) {
	existing, err := s.transactionRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Amount != nil {
		existing.Amount = *req.Amount
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Type != nil {
		existing.Type = *req.Type
	}
	if req.Category != nil {
		if err := s.checkCategory(ctx, userID, *req.Category); err != nil {
			return nil, err
		}
		existing.CategoryID = *req.Category
	}
	if req.Date != nil {
		existing.Date = *req.Date
	}

	if err := s.transactionRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.transactionRepo.FindDetailByID(ctx, id, userID)
}

// Delete removes a caller-owned transaction
func (s *transactionService) Delete(ctx context.Context, userID, id string) error {
	err := s.transactionRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
