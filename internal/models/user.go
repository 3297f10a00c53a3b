package models

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

// User represents the user model in the database
type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string       `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password     *string      `gorm:"size:255" json:"-"`
	FirstName    string       `gorm:"column:firstname;size:50" json:"firstname"`
	LastName     string       `gorm:"column:lastname;size:50" json:"lastname"`
	AuthProvider AuthProvider `gorm:"size:20;default:local" json:"auth_provider"`
	ProviderID   *string      `gorm:"size:255" json:"-"`
	Timestamps
}

// TableName overrides the table name used by User.
func (User) TableName() string { return "users" }

// IsGoogleLinked reports whether the user is already linked to the given Google account.
func (u *User) IsGoogleLinked(providerID string) bool {
	return u.AuthProvider == AuthProviderGoogle && u.ProviderID != nil && *u.ProviderID == providerID
}
