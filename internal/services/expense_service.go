package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"budgetnatin/internal/dates"
	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/models"
	"budgetnatin/internal/pagination"
)

// expenseService handles expense business logic.
type expenseService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db, now: time.Now}
}

// ListExpenses returns the user's expenses joined with their category name,
// newest first. Pagination is applied only when requested.
func (s *expenseService) ListExpenses(userID uint, filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := func() *gorm.DB {
		q := s.db.Table("expenses AS e").Where("e.user_id = ?", userID)
		if filter.Month != nil {
			start, end := dates.MonthRange(*filter.Month)
			q = q.Where("e.expense_date >= ? AND e.expense_date < ?", start, end)
		}
		if filter.CategoryID != nil {
			q = q.Where("e.category_id = ?", *filter.CategoryID)
		}
		return q
	}

	expenses := []models.Expense{}
	err := base().
		Select("e.*, ec.name AS category_name").
		Joins("LEFT JOIN expense_categories ec ON e.category_id = ec.category_id").
		Order("e.expense_date DESC, e.expense_id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	total := int64(len(expenses))
	if page.Enabled() {
		if err := base().Count(&total).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	resp := pagination.NewPageResponse(expenses, page.Page, page.PageSize, total)
	return &resp, nil
}

// CreateExpense records one expense against a category the user owns.
func (s *expenseService) CreateExpense(userID uint, input ExpenseInput) (*models.Expense, error) {
	if msg := validateExpenseInput(input); msg != "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
	}
	owned, err := ownedCategoryIDs(s.db, userID, []uint{input.CategoryID})
	if err != nil {
		return nil, err
	}
	if !owned[input.CategoryID] {
		return nil, apperrors.ErrCategoryNotFound
	}

	expense := s.buildExpense(userID, input)
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// CreateExpenses validates every row before writing anything, then inserts
// the whole batch in one transaction. The first invalid row is reported as
// "Expense N: <reason>" with N counted from 1.
func (s *expenseService) CreateExpenses(userID uint, inputs []ExpenseInput) (int64, error) {
	if len(inputs) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "No expenses provided")
	}

	categoryIDs := make([]uint, 0, len(inputs))
	for i, input := range inputs {
		if msg := validateExpenseInput(input); msg != "" {
			return 0, batchRowError(i, msg)
		}
		categoryIDs = append(categoryIDs, input.CategoryID)
	}

	owned, err := ownedCategoryIDs(s.db, userID, categoryIDs)
	if err != nil {
		return 0, err
	}
	rows := make([]*models.Expense, 0, len(inputs))
	for i, input := range inputs {
		if !owned[input.CategoryID] {
			return 0, batchRowError(i, apperrors.ErrCategoryNotFound.Message)
		}
		rows = append(rows, s.buildExpense(userID, input))
	}

	var affected int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Create(&rows)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return affected, nil
}

// UpdateExpense replaces an expense the user owns. The budget month is
// recomputed the same way as on create.
func (s *expenseService) UpdateExpense(userID, expenseID uint, input ExpenseInput) error {
	if msg := validateExpenseInput(input); msg != "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
	}
	owned, err := ownedCategoryIDs(s.db, userID, []uint{input.CategoryID})
	if err != nil {
		return err
	}
	if !owned[input.CategoryID] {
		return apperrors.ErrCategoryNotFound
	}

	expense := s.buildExpense(userID, input)
	result := s.db.Model(&models.Expense{}).
		Where("expense_id = ? AND user_id = ?", expenseID, userID).
		Updates(map[string]interface{}{
			"amount":       expense.Amount,
			"category_id":  expense.CategoryID,
			"expense_date": expense.ExpenseDate,
			"budget_month": expense.BudgetMonth,
			"description":  expense.Description,
			"due_date":     expense.DueDate,
			"is_paid":      expense.IsPaid,
		})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	result := s.db.Where("expense_id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// buildExpense applies defaults: expense_date is now when omitted and the
// budget month is the normalized budget_month, else the expense date's month.
func (s *expenseService) buildExpense(userID uint, input ExpenseInput) *models.Expense {
	expenseDate := s.now().UTC()
	if input.ExpenseDate != nil {
		expenseDate = input.ExpenseDate.UTC()
	}
	month := expenseDate
	if input.BudgetMonth != nil {
		month = *input.BudgetMonth
	}

	var dueDate *time.Time
	if input.DueDate != nil {
		d := dates.StartOfDay(*input.DueDate)
		dueDate = &d
	}

	return &models.Expense{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount.Round(2),
		ExpenseDate: expenseDate,
		BudgetMonth: dates.NormalizeToMonthStart(month),
		Description: input.Description,
		DueDate:     dueDate,
		IsPaid:      input.IsPaid,
	}
}

// validateExpenseInput returns a client-facing reason, or "" when valid.
func validateExpenseInput(input ExpenseInput) string {
	if input.Amount.IsZero() || input.CategoryID == 0 {
		return "Amount and category are required"
	}
	if input.Amount.IsNegative() {
		return "Amount must be greater than zero"
	}
	if len(input.Description) > 255 {
		return "Description must be at most 255 characters"
	}
	return ""
}

func batchRowError(index int, reason string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("Expense %d: %s", index+1, reason))
}
