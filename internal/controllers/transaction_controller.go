package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fintrack-be/internal/models"
	"fintrack-be/internal/service"
)

type TransactionController struct {
	transactionService service.TransactionService
}

func NewTransactionController(transactionService service.TransactionService) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// List handles GET /transactions
func (tc *TransactionController) List(c *gin.Context) {
	query := &models.ListTransactionsQuery{Page: 1, Limit: 10}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid page"})
			return
		}
		query.Page = page
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
			return
		}
		query.Limit = limit
	}
	if v := c.Query("type"); v == "income" || v == "expense" {
		query.Type = v
	}
	query.Category = c.Query("category")
	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		query.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		query.EndDate = &t
	}

	response, err := tc.transactionService.List(c.Request.Context(), currentUserID(c), query)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /transactions
func (tc *TransactionController) Create(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	transaction, err := tc.transactionService.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found for this user"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// Update handles PUT /transactions/:id
func (tc *TransactionController) Update(c *gin.Context) {
	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	transaction, err := tc.transactionService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		case errors.Is(err, service.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found for this user"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// Delete handles DELETE /transactions/:id
func (tc *TransactionController) Delete(c *gin.Context) {
	err := tc.transactionService.Delete(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
