package models

import "fintrack-be/internal/entities"

// Pagination describes the page window of a transaction listing
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"` // ceil(total / limit)
}

// ListTransactionsResponse represents the paginated transaction listing
type ListTransactionsResponse struct {
	Transactions []*entities.TransactionDetail `json:"transactions"`
	Pagination   Pagination                    `json:"pagination"`
}
