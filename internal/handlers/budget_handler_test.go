package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/models"
	"budgetnatin/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	listBudgetsFn  func(userID uint, month *time.Time) ([]models.MonthlyBudget, error)
	upsertBudgetFn func(userID uint, month time.Time, amount decimal.Decimal) (*models.MonthlyBudget, bool, error)
	updateBudgetFn func(userID, budgetID uint, amount decimal.Decimal, month *time.Time) error
	deleteBudgetFn func(userID, budgetID uint) error
}

func (m *mockBudgetService) ListBudgets(userID uint, month *time.Time) ([]models.MonthlyBudget, error) {
	if m.listBudgetsFn != nil {
		return m.listBudgetsFn(userID, month)
	}
	return []models.MonthlyBudget{}, nil
}

func (m *mockBudgetService) UpsertBudget(userID uint, month time.Time, amount decimal.Decimal) (*models.MonthlyBudget, bool, error) {
	if m.upsertBudgetFn != nil {
		return m.upsertBudgetFn(userID, month, amount)
	}
	return &models.MonthlyBudget{BudgetID: 1}, true, nil
}

func (m *mockBudgetService) UpdateBudget(userID, budgetID uint, amount decimal.Decimal, month *time.Time) error {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(userID, budgetID, amount, month)
	}
	return nil
}

func (m *mockBudgetService) DeleteBudget(userID, budgetID uint) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(userID, budgetID)
	}
	return nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("/api/monthly-budget", injectUserID(1))
	auth.GET("", handler.ListBudgets)
	auth.POST("", handler.UpsertBudget)
	auth.PUT("/:budget_id", handler.UpdateBudget)
	auth.DELETE("/:budget_id", handler.DeleteBudget)
	return r
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	t.Run("returns 200 and forwards month", func(t *testing.T) {
		var got *time.Time
		budgetSvc := &mockBudgetService{
			listBudgetsFn: func(_ uint, month *time.Time) ([]models.MonthlyBudget, error) {
				got = month
				return []models.MonthlyBudget{{BudgetID: 1}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(budgetSvc))

		rec := doRequest(r, "GET", "/api/monthly-budget?month=2024-02", "")

		assertEnvelope(t, rec, http.StatusOK, true, "Monthly budgets retrieved successfully")
		if got == nil || !got.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected month %v", got)
		}
	})

	t.Run("no filter passes nil month", func(t *testing.T) {
		called := false
		budgetSvc := &mockBudgetService{
			listBudgetsFn: func(_ uint, month *time.Time) ([]models.MonthlyBudget, error) {
				called = true
				if month != nil {
					t.Errorf("expected nil month, got %v", month)
				}
				return nil, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(budgetSvc))

		rec := doRequest(r, "GET", "/api/monthly-budget", "")

		assertEnvelope(t, rec, http.StatusOK, true, "")
		if !called {
			t.Error("expected service call")
		}
	})
}

func TestBudgetHandler_UpsertBudget(t *testing.T) {
	t.Run("returns 201 added on insert", func(t *testing.T) {
		var gotMonth time.Time
		budgetSvc := &mockBudgetService{
			upsertBudgetFn: func(_ uint, month time.Time, _ decimal.Decimal) (*models.MonthlyBudget, bool, error) {
				gotMonth = month
				return &models.MonthlyBudget{BudgetID: 4}, true, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(budgetSvc))

		rec := doRequest(r, "POST", "/api/monthly-budget", `{"month":"2024-03-17","amount":"5000"}`)

		result := assertEnvelope(t, rec, http.StatusCreated, true, "Monthly budget added")
		data := result["data"].(map[string]interface{})
		if data["budget_id"] != float64(4) {
			t.Errorf("expected budget_id 4, got %v", data["budget_id"])
		}
		if !gotMonth.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected normalized month, got %v", gotMonth)
		}
	})

	t.Run("returns 201 updated on existing month", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			upsertBudgetFn: func(uint, time.Time, decimal.Decimal) (*models.MonthlyBudget, bool, error) {
				return &models.MonthlyBudget{BudgetID: 4}, false, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(budgetSvc))

		rec := doRequest(r, "POST", "/api/monthly-budget", `{"month":"2024-03","amount":6000}`)

		assertEnvelope(t, rec, http.StatusCreated, true, "Monthly budget updated")
	})

	t.Run("missing month reaches service as zero", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			upsertBudgetFn: func(_ uint, month time.Time, _ decimal.Decimal) (*models.MonthlyBudget, bool, error) {
				if !month.IsZero() {
					t.Errorf("expected zero month, got %v", month)
				}
				return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Month and amount are required")
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(budgetSvc))

		rec := doRequest(r, "POST", "/api/monthly-budget", `{"amount":"100"}`)

		assertEnvelope(t, rec, http.StatusBadRequest, false, "Month and amount are required")
	})

	t.Run("returns 400 on unparseable month", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/api/monthly-budget", `{"month":"March","amount":"100"}`)

		assertEnvelope(t, rec, http.StatusBadRequest, false, "Invalid month")
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "PUT", "/api/monthly-budget/4", `{"amount":"100","month":"2024-05"}`)

		assertEnvelope(t, rec, http.StatusOK, true, "Monthly budget updated successfully")
	})

	t.Run("returns 400 when month taken", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			updateBudgetFn: func(uint, uint, decimal.Decimal, *time.Time) error { return apperrors.ErrBudgetMonthTaken },
		}
		r := setupBudgetRouter(NewBudgetHandler(budgetSvc))

		rec := doRequest(r, "PUT", "/api/monthly-budget/4", `{"amount":"100","month":"2024-05"}`)

		assertEnvelope(t, rec, http.StatusBadRequest, false, "A budget already exists for this month")
	})
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	t.Run("returns 404 when not owned", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			deleteBudgetFn: func(uint, uint) error { return apperrors.ErrBudgetNotFound },
		}
		r := setupBudgetRouter(NewBudgetHandler(budgetSvc))

		rec := doRequest(r, "DELETE", "/api/monthly-budget/4", "")

		assertEnvelope(t, rec, http.StatusNotFound, false, "Budget not found")
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "DELETE", "/api/monthly-budget/4", "")

		assertEnvelope(t, rec, http.StatusOK, true, "Monthly budget deleted successfully")
	})
}
