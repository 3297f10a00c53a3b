package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/pagination"
	"budgetnatin/internal/response"
	"budgetnatin/internal/services"
)

// ExpenseHandler handles expense requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseListQuery holds the expense list filters.
type ExpenseListQuery struct {
	MonthQuery
	CategoryID uint `form:"category_id"`
	pagination.PageRequest
}

// ExpenseRequest is the payload for creating or replacing an expense.
// Dates accept YYYY-MM-DD, datetime-local or RFC 3339 values.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	CategoryID  uint            `json:"category_id"`
	ExpenseDate string          `json:"expense_date" example:"2024-03-15"`
	BudgetMonth string          `json:"budget_month" example:"2024-03"`
	Description string          `json:"description"`
	DueDate     string          `json:"due_date" example:"2024-03-20"`
	IsPaid      bool            `json:"is_paid"`
}

// ExpenseCreatedResponse is returned after an expense is created
type ExpenseCreatedResponse struct {
	ExpenseID uint `json:"expense_id"`
}

// BatchCreatedResponse is returned after a batch insert
type BatchCreatedResponse struct {
	AffectedRows int64 `json:"affectedRows"`
}

func (r ExpenseRequest) toInput() (services.ExpenseInput, error) {
	expenseDate, err := parseOptionalDate("expense_date", r.ExpenseDate)
	if err != nil {
		return services.ExpenseInput{}, err
	}
	budgetMonth, err := parseOptionalMonth("budget_month", r.BudgetMonth)
	if err != nil {
		return services.ExpenseInput{}, err
	}
	dueDate, err := parseOptionalDate("due_date", r.DueDate)
	if err != nil {
		return services.ExpenseInput{}, err
	}
	return services.ExpenseInput{
		Amount:      r.Amount,
		CategoryID:  r.CategoryID,
		ExpenseDate: expenseDate,
		BudgetMonth: budgetMonth,
		Description: r.Description,
		DueDate:     dueDate,
		IsPaid:      r.IsPaid,
	}, nil
}

// ListExpenses handles listing the user's expenses
// @Summary     List expenses
// @Description Get the user's expenses with their category name, newest first. Paginated only when page is given.
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       month       query string false "Month filter (YYYY-MM)"
// @Param       category_id query int    false "Category filter"
// @Param       page        query int    false "Page number"
// @Param       page_size   query int    false "Items per page (max 100)"
// @Success     200 {object} EnvelopeResponse{data=[]models.Expense} "Expenses retrieved successfully"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Error fetching expenses"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error fetching expenses")
		return
	}

	var query ExpenseListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err), "Error fetching expenses")
		return
	}

	filter := services.ExpenseFilter{Month: query.month()}
	if query.CategoryID != 0 {
		filter.CategoryID = &query.CategoryID
	}

	result, err := h.expenseService.ListExpenses(userID, filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err, "Error fetching expenses")
		return
	}

	if query.Enabled() {
		response.OK(c, http.StatusOK, "Expenses retrieved successfully", result)
		return
	}
	response.OK(c, http.StatusOK, "Expenses retrieved successfully", result.Items)
}

// CreateExpense handles adding one expense
// @Summary     Add an expense
// @Description Record an expense against one of the user's categories
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense"
// @Success     201 {object} EnvelopeResponse{data=ExpenseCreatedResponse} "Expense added successfully"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Error adding expense"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error adding expense")
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error adding expense")
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err, "Error adding expense")
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, input)
	if err != nil {
		respondWithError(c, err, "Error adding expense")
		return
	}

	response.OK(c, http.StatusCreated, "Expense added successfully", ExpenseCreatedResponse{ExpenseID: expense.ExpenseID})
}

// CreateExpenses handles adding several expenses at once
// @Summary     Add expenses in bulk
// @Description Validate every row, then insert all of them in one transaction. One invalid row rejects the batch.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body []ExpenseRequest true "Expenses"
// @Success     201 {object} EnvelopeResponse{data=BatchCreatedResponse} "N expenses added successfully"
// @Failure     400 {object} ErrorResponse "Expense N: reason"
// @Failure     500 {object} ErrorResponse "Error adding expenses"
// @Router      /expenses/batch [post]
func (h *ExpenseHandler) CreateExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error adding expenses")
		return
	}

	var reqs []ExpenseRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondWithError(c, bindingError(err), "Error adding expenses")
		return
	}

	inputs := make([]services.ExpenseInput, 0, len(reqs))
	for i, req := range reqs {
		input, err := req.toInput()
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("Expense %d: %s", i+1, err.Error())), "Error adding expenses")
			return
		}
		inputs = append(inputs, input)
	}

	affected, err := h.expenseService.CreateExpenses(userID, inputs)
	if err != nil {
		respondWithError(c, err, "Error adding expenses")
		return
	}

	response.OK(c, http.StatusCreated, fmt.Sprintf("%d expenses added successfully", len(inputs)), BatchCreatedResponse{AffectedRows: affected})
}

// UpdateExpense handles replacing an expense
// @Summary     Update an expense
// @Description Replace one of the user's expenses; the budget month is recomputed
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       expense_id path int true "Expense ID"
// @Param       request body ExpenseRequest true "Expense"
// @Success     200 {object} EnvelopeResponse "Expense updated successfully"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Error updating expense"
// @Router      /expenses/{expense_id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error updating expense")
		return
	}

	expenseID, err := parsePathID(c, "expense_id")
	if err != nil {
		respondWithError(c, err, "Error updating expense")
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error updating expense")
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err, "Error updating expense")
		return
	}

	if err := h.expenseService.UpdateExpense(userID, expenseID, input); err != nil {
		respondWithError(c, err, "Error updating expense")
		return
	}

	response.OK(c, http.StatusOK, "Expense updated successfully", nil)
}

// DeleteExpense handles deleting an expense
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       expense_id path int true "Expense ID"
// @Success     200 {object} EnvelopeResponse "Expense deleted successfully"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Error deleting expense"
// @Router      /expenses/{expense_id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error deleting expense")
		return
	}

	expenseID, err := parsePathID(c, "expense_id")
	if err != nil {
		respondWithError(c, err, "Error deleting expense")
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err, "Error deleting expense")
		return
	}

	response.OK(c, http.StatusOK, "Expense deleted successfully", nil)
}
