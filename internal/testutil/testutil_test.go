package testutil_test

import (
	"testing"
	"time"

	"budgetnatin/internal/errors"
	"budgetnatin/internal/models"
	"budgetnatin/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "expense_categories", "monthly_budget", "expenses", "extra_money", "notifications"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}
	if user.AuthProvider != models.AuthProviderLocal {
		t.Errorf("expected local user, got %s", user.AuthProvider)
	}

	category := testutil.CreateTestCategory(t, db, user.ID)
	if category.CategoryID == 0 {
		t.Fatal("category should have a non-zero ID")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, category.CategoryID, "150.00", time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
	if !expense.BudgetMonth.Equal(testutil.Date(2024, 3, 1)) {
		t.Errorf("expected budget month 2024-03-01, got %v", expense.BudgetMonth)
	}

	budget := testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 3, 20), "5000")
	if !budget.Month.Equal(testutil.Date(2024, 3, 1)) {
		t.Errorf("expected normalized month, got %v", budget.Month)
	}

	extra := testutil.CreateTestExtraMoney(t, db, user.ID, testutil.Date(2024, 3, 2), "250.50")
	if !extra.Amount.Equal(testutil.Amount("250.5")) {
		t.Errorf("expected amount 250.50, got %s", extra.Amount)
	}

	n := testutil.CreateTestNotification(t, db, user.ID, "Hello")
	if n.IsRead {
		t.Error("expected new notification to be unread")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrExpenseNotFound, "custom message")
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
