package services

import (
	"testing"

	"budgetnatin/internal/models"
	"budgetnatin/internal/testutil"
)

func TestUpsertBudget(t *testing.T) {
	t.Run("creates_then_updates_single_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, created, err := svc.UpsertBudget(user.ID, testutil.Date(2024, 3, 17), testutil.Amount("5000"))
		testutil.AssertNoError(t, err)
		if !created {
			t.Error("expected first upsert to create")
		}
		if !budget.Month.Equal(testutil.Date(2024, 3, 1)) {
			t.Errorf("expected month 2024-03-01, got %v", budget.Month)
		}

		again, created, err := svc.UpsertBudget(user.ID, testutil.Date(2024, 3, 1), testutil.Amount("6000"))
		testutil.AssertNoError(t, err)
		if created {
			t.Error("expected second upsert to update")
		}
		if again.BudgetID != budget.BudgetID {
			t.Errorf("expected same budget %d, got %d", budget.BudgetID, again.BudgetID)
		}

		var rows []models.MonthlyBudget
		db.Where("user_id = ?", user.ID).Find(&rows)
		if len(rows) != 1 {
			t.Fatalf("expected exactly one budget row, got %d", len(rows))
		}
		if !rows[0].Amount.Equal(testutil.Amount("6000")) {
			t.Errorf("expected amount 6000, got %s", rows[0].Amount)
		}
	})

	t.Run("concurrent_insert_keeps_single_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 3, 1), "5000")

		// The month lookup misses, as it would for a request racing the first insert.
		hidden := hideRows(t, db, "monthly_budget")
		_, _, err := svc.UpsertBudget(user.ID, testutil.Date(2024, 3, 9), testutil.Amount("7000"))
		testutil.AssertNoError(t, err)
		*hidden = false

		var rows []models.MonthlyBudget
		db.Where("user_id = ?", user.ID).Find(&rows)
		if len(rows) != 1 {
			t.Fatalf("expected exactly one budget row, got %d", len(rows))
		}
		if !rows[0].Amount.Equal(testutil.Amount("7000")) {
			t.Errorf("expected amount 7000, got %s", rows[0].Amount)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, _, err := svc.UpsertBudget(user.ID, testutil.Date(2024, 3, 1), testutil.Amount("0"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		if err.Error() != "Month and amount are required" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, _, err := svc.UpsertBudget(user.ID, testutil.Date(2024, 3, 1), testutil.Amount("-1"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("separate_users_same_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, created1, err := svc.UpsertBudget(user1.ID, testutil.Date(2024, 3, 1), testutil.Amount("100"))
		testutil.AssertNoError(t, err)
		_, created2, err := svc.UpsertBudget(user2.ID, testutil.Date(2024, 3, 1), testutil.Amount("200"))
		testutil.AssertNoError(t, err)
		if !created1 || !created2 {
			t.Error("expected both users to get their own budget")
		}
	})
}

func TestListBudgets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 1, 1), "100")
	testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 3, 1), "300")
	testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 2, 1), "200")
	testutil.CreateTestBudget(t, db, other.ID, testutil.Date(2024, 2, 1), "999")

	all, err := svc.ListBudgets(user.ID, nil)
	testutil.AssertNoError(t, err)
	if len(all) != 3 {
		t.Fatalf("expected 3 budgets, got %d", len(all))
	}
	if !all[0].Month.Equal(testutil.Date(2024, 3, 1)) || !all[2].Month.Equal(testutil.Date(2024, 1, 1)) {
		t.Errorf("expected latest month first, got %v .. %v", all[0].Month, all[2].Month)
	}

	month := testutil.Date(2024, 2, 14)
	feb, err := svc.ListBudgets(user.ID, &month)
	testutil.AssertNoError(t, err)
	if len(feb) != 1 || !feb[0].Amount.Equal(testutil.Amount("200")) {
		t.Errorf("expected the February budget only, got %+v", feb)
	}
}

func TestUpdateBudget(t *testing.T) {
	t.Run("amount_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 3, 1), "100")

		testutil.AssertNoError(t, svc.UpdateBudget(user.ID, budget.BudgetID, testutil.Amount("150.5"), nil))

		var reloaded models.MonthlyBudget
		db.First(&reloaded, budget.BudgetID)
		if !reloaded.Amount.Equal(testutil.Amount("150.5")) {
			t.Errorf("expected amount 150.50, got %s", reloaded.Amount)
		}
	})

	t.Run("move_to_free_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 3, 1), "100")

		month := testutil.Date(2024, 4, 20)
		testutil.AssertNoError(t, svc.UpdateBudget(user.ID, budget.BudgetID, testutil.Amount("100"), &month))

		var reloaded models.MonthlyBudget
		db.First(&reloaded, budget.BudgetID)
		if !reloaded.Month.Equal(testutil.Date(2024, 4, 1)) {
			t.Errorf("expected month 2024-04-01, got %v", reloaded.Month)
		}
	})

	t.Run("move_to_taken_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 3, 1), "100")
		testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 4, 1), "200")

		month := testutil.Date(2024, 4, 1)
		err := svc.UpdateBudget(user.ID, budget.BudgetID, testutil.Amount("100"), &month)
		testutil.AssertAppError(t, err, "BUDGET_MONTH_TAKEN")
	})

	t.Run("missing_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, testutil.Date(2024, 3, 1), "100")

		err := svc.UpdateBudget(user.ID, budget.BudgetID, testutil.Amount("0"), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("other_users_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, owner.ID, testutil.Date(2024, 3, 1), "100")

		err := svc.UpdateBudget(intruder.ID, budget.BudgetID, testutil.Amount("1"), nil)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	owner := testutil.CreateTestUser(t, db)
	intruder := testutil.CreateTestUser(t, db)
	budget := testutil.CreateTestBudget(t, db, owner.ID, testutil.Date(2024, 3, 1), "100")

	err := svc.DeleteBudget(intruder.ID, budget.BudgetID)
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteBudget(owner.ID, budget.BudgetID))

	err = svc.DeleteBudget(owner.ID, budget.BudgetID)
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}
