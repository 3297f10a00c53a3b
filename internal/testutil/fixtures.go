package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetnatin/internal/dates"
	"budgetnatin/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal, failing loudly on typos.
func Amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Date builds a UTC midnight date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates a local user with a hashed password and unique
// email and username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithEmail(t, db, fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWithEmail creates a local user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	hashed := string(hash)

	user := &models.User{
		Username:     fmt.Sprintf("user%d", nextID()),
		Email:        email,
		Password:     &hashed,
		FirstName:    "Test",
		LastName:     "User",
		AuthProvider: models.AuthProviderLocal,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates an expense category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint) *models.ExpenseCategory {
	t.Helper()
	return CreateTestCategoryNamed(t, db, userID, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryNamed creates an expense category with the given name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, userID uint, name string) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{UserID: userID, Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an unpaid expense dated expenseDate.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID uint, amount string, expenseDate time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      Amount(amount),
		ExpenseDate: expenseDate.UTC(),
		BudgetMonth: dates.NormalizeToMonthStart(expenseDate),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBill creates an expense with a due date.
func CreateTestBill(t *testing.T, db *gorm.DB, userID, categoryID uint, description, amount string, dueDate time.Time, paid bool) *models.Expense {
	t.Helper()

	due := dates.StartOfDay(dueDate)
	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      Amount(amount),
		ExpenseDate: due,
		BudgetMonth: dates.NormalizeToMonthStart(due),
		Description: description,
		DueDate:     &due,
		IsPaid:      paid,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return expense
}

// CreateTestBudget creates a monthly budget for the month containing month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, month time.Time, amount string) *models.MonthlyBudget {
	t.Helper()

	budget := &models.MonthlyBudget{
		UserID: userID,
		Month:  dates.NormalizeToMonthStart(month),
		Amount: Amount(amount),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExtraMoney creates an income record for the month containing month.
func CreateTestExtraMoney(t *testing.T, db *gorm.DB, userID uint, month time.Time, amount string) *models.ExtraMoney {
	t.Helper()

	record := &models.ExtraMoney{
		UserID:      userID,
		Amount:      Amount(amount),
		BudgetMonth: dates.NormalizeToMonthStart(month),
		AddedDate:   time.Now().UTC(),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test extra money: %v", err)
	}
	return record
}

// CreateTestNotification creates an unread info notification.
func CreateTestNotification(t *testing.T, db *gorm.DB, userID uint, title string) *models.Notification {
	t.Helper()

	n := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: title,
		Type:    models.NotificationTypeInfo,
	}
	if err := db.Create(n).Error; err != nil {
		t.Fatalf("failed to create test notification: %v", err)
	}
	return n
}
