package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBudget is the spending limit a user sets for one calendar month.
// Month is always the first day of that month.
type MonthlyBudget struct {
	BudgetID uint            `gorm:"column:budget_id;primaryKey" json:"budget_id"`
	UserID   uint            `gorm:"not null;uniqueIndex:unique_user_month" json:"user_id"`
	Month    time.Time       `gorm:"type:date;not null;uniqueIndex:unique_user_month" json:"month"`
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"amount"`
	Timestamps
}

// TableName overrides the table name used by MonthlyBudget.
func (MonthlyBudget) TableName() string { return "monthly_budget" }
