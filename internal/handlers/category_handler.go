package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetnatin/internal/response"
	"budgetnatin/internal/services"
)

// CategoryHandler handles expense category requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the payload for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" binding:"max=50"`
}

// CategoryCreatedResponse is returned after a category is created
type CategoryCreatedResponse struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
}

// ListCategories handles the retrieval of all categories for a user
// @Summary     List categories
// @Description Get the authenticated user's expense categories, ordered by name
// @Tags        expense-categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} EnvelopeResponse{data=[]models.ExpenseCategory} "Categories retrieved successfully"
// @Failure     401 {object} ErrorResponse "No token provided"
// @Failure     500 {object} ErrorResponse "Error fetching categories"
// @Router      /expense-categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error fetching categories")
		return
	}

	categories, err := h.categoryService.ListCategories(userID)
	if err != nil {
		respondWithError(c, err, "Error fetching categories")
		return
	}

	response.OK(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a new expense category
// @Tags        expense-categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category name"
// @Success     201 {object} EnvelopeResponse{data=CategoryCreatedResponse} "Category added successfully"
// @Failure     400 {object} ErrorResponse "Missing name or category exists"
// @Failure     401 {object} ErrorResponse "No token provided"
// @Failure     500 {object} ErrorResponse "Error adding category"
// @Router      /expense-categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error adding category")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error adding category")
		return
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name)
	if err != nil {
		respondWithError(c, err, "Error adding category")
		return
	}

	response.OK(c, http.StatusCreated, "Category added successfully", CategoryCreatedResponse{
		CategoryID: category.CategoryID,
		Name:       category.Name,
	})
}

// UpdateCategory handles renaming a category
// @Summary     Update category
// @Description Rename one of the user's expense categories
// @Tags        expense-categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category_id path int true "Category ID"
// @Param       request body CategoryRequest true "New name"
// @Success     200 {object} EnvelopeResponse "Category updated successfully"
// @Failure     400 {object} ErrorResponse "Missing name or name taken"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Error updating category"
// @Router      /expense-categories/{category_id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error updating category")
		return
	}

	categoryID, err := parsePathID(c, "category_id")
	if err != nil {
		respondWithError(c, err, "Error updating category")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error updating category")
		return
	}

	if err := h.categoryService.UpdateCategory(userID, categoryID, req.Name); err != nil {
		respondWithError(c, err, "Error updating category")
		return
	}

	response.OK(c, http.StatusOK, "Category updated successfully", nil)
}

// DeleteCategory handles deleting a category
// @Summary     Delete category
// @Description Delete an expense category that no expense references
// @Tags        expense-categories
// @Produce     json
// @Security    BearerAuth
// @Param       category_id path int true "Category ID"
// @Success     200 {object} EnvelopeResponse "Category deleted successfully"
// @Failure     400 {object} ErrorResponse "Category in use"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Error deleting category"
// @Router      /expense-categories/{category_id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error deleting category")
		return
	}

	categoryID, err := parsePathID(c, "category_id")
	if err != nil {
		respondWithError(c, err, "Error deleting category")
		return
	}

	if err := h.categoryService.DeleteCategory(userID, categoryID); err != nil {
		respondWithError(c, err, "Error deleting category")
		return
	}

	response.OK(c, http.StatusOK, "Category deleted successfully", nil)
}
