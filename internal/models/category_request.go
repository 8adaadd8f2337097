package models

// CreateCategoryRequest represents the request body for creating a category.
// Color and icon fall back to defaults when omitted.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=30"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}
