package services

import (
	"testing"
	"time"

	"budgetnatin/internal/models"
	"budgetnatin/internal/testutil"
)

func TestCreateExtraMoney(t *testing.T) {
	t.Run("explicit_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExtraMoneyService(db)
		user := testutil.CreateTestUser(t, db)

		month := testutil.Date(2024, 2, 29)
		record, err := svc.CreateExtraMoney(user.ID, testutil.Amount("1250.75"), &month)
		testutil.AssertNoError(t, err)
		if record.ExtraID == 0 {
			t.Fatal("expected non-zero extra ID")
		}
		if !record.BudgetMonth.Equal(testutil.Date(2024, 2, 1)) {
			t.Errorf("expected budget month 2024-02-01, got %v", record.BudgetMonth)
		}
	})

	t.Run("defaults_to_current_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		fixed := time.Date(2024, 8, 20, 9, 30, 0, 0, time.UTC)
		svc := &extraMoneyService{db: db, now: func() time.Time { return fixed }}
		user := testutil.CreateTestUser(t, db)

		record, err := svc.CreateExtraMoney(user.ID, testutil.Amount("10"), nil)
		testutil.AssertNoError(t, err)
		if !record.BudgetMonth.Equal(testutil.Date(2024, 8, 1)) {
			t.Errorf("expected budget month 2024-08-01, got %v", record.BudgetMonth)
		}
		if !record.AddedDate.Equal(fixed) {
			t.Errorf("expected added date %v, got %v", fixed, record.AddedDate)
		}
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExtraMoneyService(db)
		user := testutil.CreateTestUser(t, db)

		for _, amount := range []string{"0", "-5"} {
			_, err := svc.CreateExtraMoney(user.ID, testutil.Amount(amount), nil)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
			if err.Error() != "Valid amount is required" {
				t.Errorf("amount %s: unexpected message %q", amount, err.Error())
			}
		}
	})
}

func TestListExtraMoney(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExtraMoneyService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestExtraMoney(t, db, user.ID, testutil.Date(2024, 1, 1), "100")
	testutil.CreateTestExtraMoney(t, db, user.ID, testutil.Date(2024, 2, 1), "200")
	testutil.CreateTestExtraMoney(t, db, other.ID, testutil.Date(2024, 2, 1), "300")

	all, err := svc.ListExtraMoney(user.ID, nil)
	testutil.AssertNoError(t, err)
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}

	month := testutil.Date(2024, 2, 1)
	feb, err := svc.ListExtraMoney(user.ID, &month)
	testutil.AssertNoError(t, err)
	if len(feb) != 1 || !feb[0].Amount.Equal(testutil.Amount("200")) {
		t.Errorf("expected only the February record, got %+v", feb)
	}
}

func TestUpdateExtraMoney(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExtraMoneyService(db)
		user := testutil.CreateTestUser(t, db)
		record := testutil.CreateTestExtraMoney(t, db, user.ID, testutil.Date(2024, 1, 1), "100")

		month := testutil.Date(2024, 5, 5)
		testutil.AssertNoError(t, svc.UpdateExtraMoney(user.ID, record.ExtraID, testutil.Amount("75"), &month))

		var reloaded models.ExtraMoney
		db.First(&reloaded, record.ExtraID)
		if !reloaded.Amount.Equal(testutil.Amount("75")) || !reloaded.BudgetMonth.Equal(testutil.Date(2024, 5, 1)) {
			t.Errorf("unexpected stored record %+v", reloaded)
		}
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExtraMoneyService(db)
		user := testutil.CreateTestUser(t, db)
		record := testutil.CreateTestExtraMoney(t, db, user.ID, testutil.Date(2024, 1, 1), "100")

		err := svc.UpdateExtraMoney(user.ID, record.ExtraID, testutil.Amount("0"), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("other_users_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExtraMoneyService(db)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		record := testutil.CreateTestExtraMoney(t, db, owner.ID, testutil.Date(2024, 1, 1), "100")

		err := svc.UpdateExtraMoney(intruder.ID, record.ExtraID, testutil.Amount("5"), nil)
		testutil.AssertAppError(t, err, "RECORD_NOT_FOUND")
	})
}

func TestDeleteExtraMoney(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExtraMoneyService(db)
	owner := testutil.CreateTestUser(t, db)
	intruder := testutil.CreateTestUser(t, db)
	record := testutil.CreateTestExtraMoney(t, db, owner.ID, testutil.Date(2024, 1, 1), "100")

	err := svc.DeleteExtraMoney(intruder.ID, record.ExtraID)
	testutil.AssertAppError(t, err, "RECORD_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteExtraMoney(owner.ID, record.ExtraID))
}
