package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
)

func newCategoryFixture() (*fakeCategoryRepo, *fakeTransactionRepo, CategoryService) {
	categoryRepo := &fakeCategoryRepo{}
	transactionRepo := &fakeTransactionRepo{categoryRepo: categoryRepo}
	return categoryRepo, transactionRepo, NewCategoryService(categoryRepo, transactionRepo, nil)
}

func TestCategoryService_Create_Defaults(t *testing.T) {
	_, _, svc := newCategoryFixture()

	category, err := svc.CreateCategory(context.Background(), "user-1", &models.CreateCategoryRequest{Name: "Pets"})
	if err != nil {
		t.Fatalf("CreateCategory returned error: %v", err)
	}

	if category.Color != DefaultCategoryColor {
		t.Errorf("color = %q, want %q", category.Color, DefaultCategoryColor)
	}
	if category.Icon != DefaultCategoryIcon {
		t.Errorf("icon = %q, want %q", category.Icon, DefaultCategoryIcon)
	}
}

func TestCategoryService_Create_DuplicatePerUser(t *testing.T) {
	_, _, svc := newCategoryFixture()

	if _, err := svc.CreateCategory(context.Background(), "user-1", &models.CreateCategoryRequest{Name: "Pets"}); err != nil {
		t.Fatalf("CreateCategory returned error: %v", err)
	}

	_, err := svc.CreateCategory(context.Background(), "user-1", &models.CreateCategoryRequest{Name: "Pets"})
	if !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("err = %v, want ErrCategoryExists", err)
	}

	// Same name under another user is fine
	if _, err := svc.CreateCategory(context.Background(), "user-2", &models.CreateCategoryRequest{Name: "Pets"}); err != nil {
		t.Errorf("cross-user duplicate rejected: %v", err)
	}
}

func TestCategoryService_GetCategories_SortedAndScoped(t *testing.T) {
	categoryRepo, _, svc := newCategoryFixture()
	categoryRepo.add("user-1", "Travel", "#14B8A6", "MapPin")
	categoryRepo.add("user-1", "Food & Dining", "#EF4444", "UtensilsCrossed")
	categoryRepo.add("user-2", "Travel", "#14B8A6", "MapPin")

	categories, err := svc.GetCategories(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCategories returned error: %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if categories[0].Name != "Food & Dining" || categories[1].Name != "Travel" {
		t.Errorf("categories not sorted by name: %+v", categories)
	}
}

func TestCategoryService_Delete(t *testing.T) {
	categoryRepo, transactionRepo, svc := newCategoryFixture()
	used := categoryRepo.add("user-1", "Food & Dining", "#EF4444", "UtensilsCrossed")
	unused := categoryRepo.add("user-1", "Travel", "#14B8A6", "MapPin")

	_, _ = transactionRepo.Create(context.Background(), &entities.Transaction{
		UserID:     "user-1",
		CategoryID: used.ID,
		Amount:     10,
		Type:       entities.TypeExpense,
		Date:       time.Now(),
	})

	if err := svc.DeleteCategory(context.Background(), "user-1", used.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Errorf("err = %v, want ErrCategoryInUse", err)
	}

	if err := svc.DeleteCategory(context.Background(), "user-2", unused.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete err = %v, want ErrNotFound", err)
	}

	if err := svc.DeleteCategory(context.Background(), "user-1", unused.ID); err != nil {
		t.Errorf("unused delete returned error: %v", err)
	}
}
