package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budgetnatin/internal/dates"
	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/models"
)

// budgetService handles monthly budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// ListBudgets returns the user's budgets, latest month first.
func (s *budgetService) ListBudgets(userID uint, month *time.Time) ([]models.MonthlyBudget, error) {
	q := s.db.Where("user_id = ?", userID)
	if month != nil {
		start, end := dates.MonthRange(*month)
		q = q.Where("month >= ? AND month < ?", start, end)
	}

	budgets := []models.MonthlyBudget{}
	if err := q.Order("month DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// UpsertBudget sets the budget for the month containing month: the existing
// row is updated, otherwise a new one is inserted. created reports which.
func (s *budgetService) UpsertBudget(userID uint, month time.Time, amount decimal.Decimal) (*models.MonthlyBudget, bool, error) {
	if month.IsZero() || amount.IsZero() {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Month and amount are required")
	}
	if amount.IsNegative() {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	month = dates.NormalizeToMonthStart(month)
	amount = amount.Round(2)

	var budget models.MonthlyBudget
	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := findBudgetForMonth(tx, userID, month, &budget)
		switch {
		case err == nil:
			return tx.Model(&budget).Update("amount", amount).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			budget = models.MonthlyBudget{UserID: userID, Month: month, Amount: amount}
			created = true
			// A concurrent insert for the same month becomes an update of its row.
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
				DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
			}).Create(&budget).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, created, nil
}

// UpdateBudget changes the amount and optionally moves the budget to another
// month, which must not already have a budget.
func (s *budgetService) UpdateBudget(userID, budgetID uint, amount decimal.Decimal, month *time.Time) error {
	if amount.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount is required")
	}
	if amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var budget models.MonthlyBudget
		if err := tx.Where("budget_id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBudgetNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		updates := map[string]interface{}{"amount": amount.Round(2)}
		if month != nil {
			target := dates.NormalizeToMonthStart(*month)
			if !target.Equal(dates.NormalizeToMonthStart(budget.Month)) {
				var other models.MonthlyBudget
				err := findBudgetForMonth(tx, userID, target, &other)
				if err == nil {
					return apperrors.ErrBudgetMonthTaken
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				updates["month"] = target
			}
		}

		if err := tx.Model(&budget).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrBudgetMonthTaken
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	result := s.db.Where("budget_id = ? AND user_id = ?", budgetID, userID).Delete(&models.MonthlyBudget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

// findBudgetForMonth matches on the month range rather than equality so the
// lookup does not depend on how the driver round-trips DATE values.
func findBudgetForMonth(db *gorm.DB, userID uint, month time.Time, out *models.MonthlyBudget) error {
	start, end := dates.MonthRange(month)
	return db.Where("user_id = ? AND month >= ? AND month < ?", userID, start, end).First(out).Error
}
