package models

import "time"

// ExpenseCategory is a user-defined label that expenses are filed under.
type ExpenseCategory struct {
	CategoryID uint      `gorm:"column:category_id;primaryKey" json:"category_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:unique_user_category" json:"user_id"`
	Name       string    `gorm:"size:50;not null;uniqueIndex:unique_user_category" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the table name used by ExpenseCategory.
func (ExpenseCategory) TableName() string { return "expense_categories" }
