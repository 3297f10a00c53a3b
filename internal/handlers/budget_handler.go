package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetnatin/internal/response"
	"budgetnatin/internal/services"
)

// BudgetHandler handles monthly budget requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudgetRequest sets the budget for a month. Month accepts YYYY-MM or
// any date inside the month.
type UpsertBudgetRequest struct {
	Month  string          `json:"month" binding:"omitempty,date_value" example:"2024-03"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"15000.00"`
}

// UpdateBudgetRequest changes a budget's amount and optionally its month
type UpdateBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"15000.00"`
	Month  string          `json:"month" binding:"omitempty,date_value" example:"2024-04"`
}

// BudgetSavedResponse is returned after an upsert
type BudgetSavedResponse struct {
	BudgetID uint `json:"budget_id"`
}

// ListBudgets handles listing the user's monthly budgets
// @Summary     List monthly budgets
// @Description Get the user's monthly budgets, latest month first
// @Tags        monthly-budget
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month filter (YYYY-MM)"
// @Success     200 {object} EnvelopeResponse{data=[]models.MonthlyBudget} "Monthly budgets retrieved successfully"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Error fetching monthly budgets"
// @Router      /monthly-budget [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error fetching monthly budgets")
		return
	}

	var query MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err), "Error fetching monthly budgets")
		return
	}

	budgets, err := h.budgetService.ListBudgets(userID, query.month())
	if err != nil {
		respondWithError(c, err, "Error fetching monthly budgets")
		return
	}

	response.OK(c, http.StatusOK, "Monthly budgets retrieved successfully", budgets)
}

// UpsertBudget handles adding or replacing the budget of a month
// @Summary     Set a monthly budget
// @Description Insert the budget for the month, or update it when one already exists
// @Tags        monthly-budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertBudgetRequest true "Budget"
// @Success     201 {object} EnvelopeResponse{data=BudgetSavedResponse} "Monthly budget added / Monthly budget updated"
// @Failure     400 {object} ErrorResponse "Month and amount are required"
// @Failure     500 {object} ErrorResponse "Error processing budget request"
// @Router      /monthly-budget [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error processing budget request")
		return
	}

	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error processing budget request")
		return
	}
	month, err := parseOptionalMonth("month", req.Month)
	if err != nil {
		respondWithError(c, err, "Error processing budget request")
		return
	}
	var target time.Time
	if month != nil {
		target = *month
	}

	budget, created, err := h.budgetService.UpsertBudget(userID, target, req.Amount)
	if err != nil {
		respondWithError(c, err, "Error processing budget request")
		return
	}

	message := "Monthly budget updated"
	if created {
		message = "Monthly budget added"
	}
	response.OK(c, http.StatusCreated, message, BudgetSavedResponse{BudgetID: budget.BudgetID})
}

// UpdateBudget handles changing an existing budget
// @Summary     Update a monthly budget
// @Description Change a budget's amount, and optionally move it to a month without a budget
// @Tags        monthly-budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       budget_id path int true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Budget"
// @Success     200 {object} EnvelopeResponse "Monthly budget updated successfully"
// @Failure     400 {object} ErrorResponse "Invalid input or month taken"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Error updating monthly budget"
// @Router      /monthly-budget/{budget_id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error updating monthly budget")
		return
	}

	budgetID, err := parsePathID(c, "budget_id")
	if err != nil {
		respondWithError(c, err, "Error updating monthly budget")
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error updating monthly budget")
		return
	}
	month, err := parseOptionalMonth("month", req.Month)
	if err != nil {
		respondWithError(c, err, "Error updating monthly budget")
		return
	}

	if err := h.budgetService.UpdateBudget(userID, budgetID, req.Amount, month); err != nil {
		respondWithError(c, err, "Error updating monthly budget")
		return
	}

	response.OK(c, http.StatusOK, "Monthly budget updated successfully", nil)
}

// DeleteBudget handles deleting a budget
// @Summary     Delete a monthly budget
// @Tags        monthly-budget
// @Produce     json
// @Security    BearerAuth
// @Param       budget_id path int true "Budget ID"
// @Success     200 {object} EnvelopeResponse "Monthly budget deleted successfully"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Error deleting monthly budget"
// @Router      /monthly-budget/{budget_id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error deleting monthly budget")
		return
	}

	budgetID, err := parsePathID(c, "budget_id")
	if err != nil {
		respondWithError(c, err, "Error deleting monthly budget")
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err, "Error deleting monthly budget")
		return
	}

	response.OK(c, http.StatusOK, "Monthly budget deleted successfully", nil)
}
