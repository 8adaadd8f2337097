package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// GetCategories handles GET /categories
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetCategories(c.Request.Context(), currentUserID(c))
	if err != nil {
		internalError(c, err)
		return
	}

	if categories == nil {
		categories = []*entities.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /categories
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category already exists"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /categories/:id
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	err := cc.categoryService.DeleteCategory(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		case errors.Is(err, service.ErrCategoryInUse):
			c.JSON(http.StatusConflict, gin.H{"message": "Category is referenced by existing transactions"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
