package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExtraMoney is income added on top of a month's budget.
type ExtraMoney struct {
	ExtraID     uint            `gorm:"column:extra_id;primaryKey" json:"extra_id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	BudgetMonth time.Time       `gorm:"type:date;not null" json:"budget_month"`
	AddedDate   time.Time       `gorm:"not null" json:"added_date"`
}

// TableName overrides the table name used by ExtraMoney.
func (ExtraMoney) TableName() string { return "extra_money" }
