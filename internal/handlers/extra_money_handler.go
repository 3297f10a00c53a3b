package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetnatin/internal/response"
	"budgetnatin/internal/services"
)

// ExtraMoneyHandler handles extra money (income) requests
type ExtraMoneyHandler struct {
	extraMoneyService services.ExtraMoneyServicer
}

// NewExtraMoneyHandler creates a new ExtraMoneyHandler
func NewExtraMoneyHandler(extraMoneyService services.ExtraMoneyServicer) *ExtraMoneyHandler {
	return &ExtraMoneyHandler{extraMoneyService: extraMoneyService}
}

// ExtraMoneyRequest is the payload for recording income. budget_month
// defaults to the current month.
type ExtraMoneyRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"2500.00"`
	BudgetMonth string          `json:"budget_month" binding:"omitempty,date_value" example:"2024-03"`
}

// ExtraMoneyCreatedResponse is returned after income is recorded
type ExtraMoneyCreatedResponse struct {
	ExtraID uint `json:"extra_id"`
}

// ListExtraMoney handles listing income records
// @Summary     List extra money
// @Description Get the user's extra money records, most recently added first
// @Tags        extra-money
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Budget month filter (YYYY-MM)"
// @Success     200 {object} EnvelopeResponse{data=[]models.ExtraMoney} "Extra money records retrieved successfully"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Error fetching extra money"
// @Router      /extra-money [get]
func (h *ExtraMoneyHandler) ListExtraMoney(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error fetching extra money")
		return
	}

	var query MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err), "Error fetching extra money")
		return
	}

	records, err := h.extraMoneyService.ListExtraMoney(userID, query.month())
	if err != nil {
		respondWithError(c, err, "Error fetching extra money")
		return
	}

	response.OK(c, http.StatusOK, "Extra money records retrieved successfully", records)
}

// CreateExtraMoney handles recording income
// @Summary     Add extra money
// @Tags        extra-money
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExtraMoneyRequest true "Extra money"
// @Success     201 {object} EnvelopeResponse{data=ExtraMoneyCreatedResponse} "Extra money added successfully"
// @Failure     400 {object} ErrorResponse "Valid amount is required"
// @Failure     500 {object} ErrorResponse "Error adding extra money"
// @Router      /extra-money [post]
func (h *ExtraMoneyHandler) CreateExtraMoney(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error adding extra money")
		return
	}

	var req ExtraMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error adding extra money")
		return
	}
	month, err := parseOptionalMonth("budget_month", req.BudgetMonth)
	if err != nil {
		respondWithError(c, err, "Error adding extra money")
		return
	}

	record, err := h.extraMoneyService.CreateExtraMoney(userID, req.Amount, month)
	if err != nil {
		respondWithError(c, err, "Error adding extra money")
		return
	}

	response.OK(c, http.StatusCreated, "Extra money added successfully", ExtraMoneyCreatedResponse{ExtraID: record.ExtraID})
}

// UpdateExtraMoney handles changing an income record
// @Summary     Update extra money
// @Tags        extra-money
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       extra_id path int true "Extra money ID"
// @Param       request body ExtraMoneyRequest true "Extra money"
// @Success     200 {object} EnvelopeResponse "Extra money updated successfully"
// @Failure     400 {object} ErrorResponse "Valid amount is required"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Error updating extra money"
// @Router      /extra-money/{extra_id} [put]
func (h *ExtraMoneyHandler) UpdateExtraMoney(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error updating extra money")
		return
	}

	extraID, err := parsePathID(c, "extra_id")
	if err != nil {
		respondWithError(c, err, "Error updating extra money")
		return
	}

	var req ExtraMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error updating extra money")
		return
	}
	month, err := parseOptionalMonth("budget_month", req.BudgetMonth)
	if err != nil {
		respondWithError(c, err, "Error updating extra money")
		return
	}

	if err := h.extraMoneyService.UpdateExtraMoney(userID, extraID, req.Amount, month); err != nil {
		respondWithError(c, err, "Error updating extra money")
		return
	}

	response.OK(c, http.StatusOK, "Extra money updated successfully", nil)
}

// DeleteExtraMoney handles deleting an income record
// @Summary     Delete extra money
// @Tags        extra-money
// @Produce     json
// @Security    BearerAuth
// @Param       extra_id path int true "Extra money ID"
// @Success     200 {object} EnvelopeResponse "Extra money deleted successfully"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Error deleting extra money"
// @Router      /extra-money/{extra_id} [delete]
func (h *ExtraMoneyHandler) DeleteExtraMoney(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error deleting extra money")
		return
	}

	extraID, err := parsePathID(c, "extra_id")
	if err != nil {
		respondWithError(c, err, "Error deleting extra money")
		return
	}

	if err := h.extraMoneyService.DeleteExtraMoney(userID, extraID); err != nil {
		respondWithError(c, err, "Error deleting extra money")
		return
	}

	response.OK(c, http.StatusOK, "Extra money deleted successfully", nil)
}
