package models

import "time"

// Timestamps contains the audit columns shared by mutable tables.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
