package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetnatin/internal/dates"
	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/models"
)

const invalidExtraAmount = "Valid amount is required"

// extraMoneyService handles extra money (income) business logic.
type extraMoneyService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewExtraMoneyService creates a new ExtraMoneyServicer.
func NewExtraMoneyService(db *gorm.DB) ExtraMoneyServicer {
	return &extraMoneyService{db: db, now: time.Now}
}

func (s *extraMoneyService) ListExtraMoney(userID uint, month *time.Time) ([]models.ExtraMoney, error) {
	q := s.db.Where("user_id = ?", userID)
	if month != nil {
		start, end := dates.MonthRange(*month)
		q = q.Where("budget_month >= ? AND budget_month < ?", start, end)
	}

	records := []models.ExtraMoney{}
	if err := q.Order("added_date DESC").Order("extra_id DESC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// CreateExtraMoney records income for budgetMonth, or the current month when omitted.
func (s *extraMoneyService) CreateExtraMoney(userID uint, amount decimal.Decimal, budgetMonth *time.Time) (*models.ExtraMoney, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, invalidExtraAmount)
	}

	record := &models.ExtraMoney{
		UserID:      userID,
		Amount:      amount.Round(2),
		BudgetMonth: s.resolveMonth(budgetMonth),
		AddedDate:   s.now().UTC(),
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *extraMoneyService) UpdateExtraMoney(userID, extraID uint, amount decimal.Decimal, budgetMonth *time.Time) error {
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, invalidExtraAmount)
	}

	result := s.db.Model(&models.ExtraMoney{}).
		Where("extra_id = ? AND user_id = ?", extraID, userID).
		Updates(map[string]interface{}{
			"amount":       amount.Round(2),
			"budget_month": s.resolveMonth(budgetMonth),
		})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

func (s *extraMoneyService) DeleteExtraMoney(userID, extraID uint) error {
	result := s.db.Where("extra_id = ? AND user_id = ?", extraID, userID).Delete(&models.ExtraMoney{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

func (s *extraMoneyService) resolveMonth(month *time.Time) time.Time {
	if month == nil {
		return dates.NormalizeToMonthStart(s.now())
	}
	return dates.NormalizeToMonthStart(*month)
}
