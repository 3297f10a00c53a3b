package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents money spent by a user, filed under one of their categories.
type Expense struct {
	ExpenseID   uint            `gorm:"column:expense_id;primaryKey" json:"expense_id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	ExpenseDate time.Time       `gorm:"not null" json:"expense_date"`
	BudgetMonth time.Time       `gorm:"type:date;not null" json:"budget_month"`
	Description string          `gorm:"size:255" json:"description"`
	DueDate     *time.Time      `gorm:"type:date" json:"due_date"`
	IsPaid      bool            `gorm:"not null;default:false" json:"is_paid"`

	// Populated by list queries joining expense_categories.
	CategoryName string `gorm:"->;-:migration" json:"category_name,omitempty"`
}

// TableName overrides the table name used by Expense.
func (Expense) TableName() string { return "expenses" }
