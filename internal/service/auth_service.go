package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"fintrack-be/internal/jwt"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
)

// defaultCategories is the fixed set seeded for every new user.
var defaultCategories = []repository.CategorySeed{
	{Name: "Food & Dining", Color: "#EF4444", Icon: "UtensilsCrossed"},
	{Name: "Transportation", Color: "#3B82F6", Icon: "Car"},
	{Name: "Shopping", Color: "#8B5CF6", Icon: "ShoppingBag"},
	{Name: "Entertainment", Color: "#F59E0B", Icon: "Film"},
	{Name: "Bills & Utilities", Color: "#10B981", Icon: "Receipt"},
	{Name: "Healthcare", Color: "#EC4899", Icon: "Heart"},
	{Name: "Education", Color: "#6366F1", Icon: "GraduationCap"},
	{Name: "Travel", Color: "#14B8A6", Icon: "MapPin"},
	{Name: "Salary", Color: "#22C55E", Icon: "Banknote"},
	{Name: "Investment", Color: "#F97316", Icon: "TrendingUp"},
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	jwtService   *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, categoryRepo repository.CategoryRepository, jwtService *jwt.Service) AuthService {
	return &authService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		jwtService:   jwtService,
	}
}

// Register creates a new user account and seeds its default categories
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	// Check if user already exists
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// Hash password; the raw password is never stored
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.categoryRepo.CreateBatch(ctx, user.ID, defaultCategories); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	// Generate JWT token for automatic login after registration
	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.RegisterResponse{
		Message: "User created successfully",
		User: models.AuthResponse{
			UserID:    user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			Token:     token,
		},
	}, nil
}

// Login authenticates a user and returns user info with JWT token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	}, nil
}
