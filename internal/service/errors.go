package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	// ErrNotFound covers rows that are absent or owned by another user (404).
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when registering an already used email (400).
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login (401).
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrCategoryExists is returned on a duplicate category name per user (400).
	ErrCategoryExists = errors.New("category already exists")
	// ErrInvalidCategory is returned when a transaction references a category
	// the caller does not own (400).
	ErrInvalidCategory = errors.New("category not found for this user")
	// ErrCategoryInUse blocks deleting a category still referenced by
	// transactions (409).
	ErrCategoryInUse = errors.New("category is referenced by existing transactions")
)
