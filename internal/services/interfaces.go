package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgetnatin/internal/models"
	"budgetnatin/internal/oauth"
	"budgetnatin/internal/pagination"
)

// RegisterInput carries the fields required to create a local account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(input RegisterInput) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	FindOrCreateGoogleUser(profile *oauth.GoogleProfile) (*models.User, error)
}

// CategoryServicer defines the contract for expense category business logic.
type CategoryServicer interface {
	ListCategories(userID uint) ([]models.ExpenseCategory, error)
	CreateCategory(userID uint, name string) (*models.ExpenseCategory, error)
	UpdateCategory(userID, categoryID uint, name string) error
	DeleteCategory(userID, categoryID uint) error
}

// ExpenseInput is one expense as submitted by a client. Zero values mean the
// field was omitted.
type ExpenseInput struct {
	Amount      decimal.Decimal
	CategoryID  uint
	ExpenseDate *time.Time
	BudgetMonth *time.Time
	Description string
	DueDate     *time.Time
	IsPaid      bool
}

// ExpenseFilter holds the optional list filters. Month is a normalized month start.
type ExpenseFilter struct {
	Month      *time.Time
	CategoryID *uint
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	ListExpenses(userID uint, filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	CreateExpense(userID uint, input ExpenseInput) (*models.Expense, error)
	CreateExpenses(userID uint, inputs []ExpenseInput) (int64, error)
	UpdateExpense(userID, expenseID uint, input ExpenseInput) error
	DeleteExpense(userID, expenseID uint) error
}

// BudgetServicer defines the contract for monthly budget business logic.
type BudgetServicer interface {
	ListBudgets(userID uint, month *time.Time) ([]models.MonthlyBudget, error)
	UpsertBudget(userID uint, month time.Time, amount decimal.Decimal) (budget *models.MonthlyBudget, created bool, err error)
	UpdateBudget(userID, budgetID uint, amount decimal.Decimal, month *time.Time) error
	DeleteBudget(userID, budgetID uint) error
}

// ExtraMoneyServicer defines the contract for extra money (income) business logic.
type ExtraMoneyServicer interface {
	ListExtraMoney(userID uint, month *time.Time) ([]models.ExtraMoney, error)
	CreateExtraMoney(userID uint, amount decimal.Decimal, budgetMonth *time.Time) (*models.ExtraMoney, error)
	UpdateExtraMoney(userID, extraID uint, amount decimal.Decimal, budgetMonth *time.Time) error
	DeleteExtraMoney(userID, extraID uint) error
}

// NotificationServicer defines the contract for notification business logic.
type NotificationServicer interface {
	ListNotifications(userID uint, unreadOnly bool, page pagination.PageRequest) (*pagination.PageResponse[models.Notification], error)
	MarkAsRead(userID, notificationID uint) error
	MarkAllAsRead(userID uint) (int64, error)
	DeleteNotification(userID, notificationID uint) error
	CheckDueExpenses(ctx context.Context, userID uint) (int, error)
}
