package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"budgetnatin/internal/dates"
	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/logger"
	"budgetnatin/internal/middleware"
	"budgetnatin/internal/response"
)

// EnvelopeResponse documents the body every endpoint answers with.
type EnvelopeResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Expenses retrieved successfully"`
	Data    interface{} `json:"data"`
}

// ErrorResponse documents a failed envelope.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Expense not found"`
}

// MonthQuery is the optional month filter shared by list endpoints.
type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,year_month"`
}

// month returns the parsed filter, or nil when absent.
func (q MonthQuery) month() *time.Time {
	if q.Month == "" {
		return nil
	}
	t, err := dates.ParseMonth(q.Month)
	if err != nil {
		return nil
	}
	return &t
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrAccessDenied if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, apperrors.ErrAccessDenied
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return 0, apperrors.ErrAccessDenied
	}
	return id, nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseOptionalDate parses a request date field, returning nil for "".
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := dates.Parse(value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+field)
	}
	return &t, nil
}

// parseOptionalMonth parses a request month field, returning nil for "".
func parseOptionalMonth(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := dates.ParseMonth(value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+field)
	}
	return &t, nil
}

// bindingError converts a gin binding failure into a 400. Field validation
// failures are reported by the first failing field.
func bindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fieldErrorMessage(fieldErrs[0]))
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request body")
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return "Invalid " + snakeCase(fe.Field())
	}
}

// snakeCase turns a Go field name such as BudgetMonth into budget_month.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// respondWithError writes a failed envelope. Client errors keep their own
// status and message; server errors are logged and answered with the
// endpoint's fallback message so internals never leak.
func respondWithError(c *gin.Context, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.StatusCode < http.StatusInternalServerError {
		response.Fail(c, appErr.StatusCode, appErr.Message)
		return
	}

	fields := []interface{}{
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	}
	if appErr != nil && appErr.Internal != nil {
		fields = append(fields, "code", appErr.Code, "error", appErr.Internal.Error())
	} else {
		fields = append(fields, "error", err.Error())
	}
	logger.Get().Errorw(fallback, fields...)
	response.Fail(c, http.StatusInternalServerError, fallback)
}
