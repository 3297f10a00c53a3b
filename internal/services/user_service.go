package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/models"
	"budgetnatin/internal/oauth"
)

const maxUsernameLength = 50

// userService handles user-related business logic.
type userService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db, now: time.Now}
}

// Register creates a local account with a bcrypt-hashed password.
func (s *userService) Register(input RegisterInput) (*models.User, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Username = strings.TrimSpace(input.Username)
	input.Email = normalizeEmail(input.Email)

	if input.FirstName == "" || input.LastName == "" || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide all required fields")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ? OR username = ?", input.Email, input.Username).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	hash := string(hashedPassword)

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		Password:     &hash,
		AuthProvider: models.AuthProviderLocal,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// AttemptLogin checks a local user's credentials. Unknown e-mail, Google-only
// accounts and wrong passwords all yield the same error.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide email and password")
	}

	var user models.User
	err := s.db.Where("email = ? AND auth_provider = ?", email, models.AuthProviderLocal).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if user.Password == nil || bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// FindOrCreateGoogleUser resolves a Google profile to a user, matching on
// e-mail or provider id. Existing accounts are linked to Google on first use.
func (s *userService) FindOrCreateGoogleUser(profile *oauth.GoogleProfile) (*models.User, error) {
	if profile == nil || profile.Email == "" || profile.ID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Google profile is incomplete")
	}
	email := normalizeEmail(profile.Email)

	var user models.User
	err := s.db.Where("email = ? OR provider_id = ?", email, profile.ID).First(&user).Error
	switch {
	case err == nil:
		if !user.IsGoogleLinked(profile.ID) {
			providerID := profile.ID
			if err := s.db.Model(&user).Updates(map[string]interface{}{
				"auth_provider": models.AuthProviderGoogle,
				"provider_id":   providerID,
			}).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			user.AuthProvider = models.AuthProviderGoogle
			user.ProviderID = &providerID
		}
		return &user, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	username, err := s.googleUsername(profile.DisplayName)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	providerID := profile.ID
	user = models.User{
		FirstName:    profile.GivenName,
		LastName:     profile.FamilyName,
		Username:     username,
		Email:        email,
		AuthProvider: models.AuthProviderGoogle,
		ProviderID:   &providerID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// googleUsername uses the Google display name when it is free, falling back
// to user_<unix millis>.
func (s *userService) googleUsername(displayName string) (string, error) {
	candidate := truncateRunes(strings.TrimSpace(displayName), maxUsernameLength)
	if candidate != "" {
		var count int64
		if err := s.db.Model(&models.User{}).Where("username = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return fmt.Sprintf("user_%d", s.now().UnixMilli()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
