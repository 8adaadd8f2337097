package models

import "time"

// CreateTransactionRequest represents the request body for recording a transaction
type CreateTransactionRequest struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description" binding:"required,max=200"`
	Type        string     `json:"type" binding:"required,oneof=income expense"`
	Category    string     `json:"category" binding:"required"` // category UUID
	Date        *time.Time `json:"date,omitempty"`              // defaults to submission time
}

// UpdateTransactionRequest represents a partial update; nil fields are left unchanged
type UpdateTransactionRequest struct {
	Amount      *float64   `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=200"`
	Type        *string    `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category    *string    `json:"category,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// ListTransactionsQuery holds the parsed query parameters for the paginated list
type ListTransactionsQuery struct {
	Page      int
	Limit     int
	Type      string // income, expense or empty
	Category  string // category UUID or empty
	StartDate *time.Time
	EndDate   *time.Time
}
