package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/models"
)

// categoryService handles expense category business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

func (s *categoryService) ListCategories(userID uint) ([]models.ExpenseCategory, error) {
	categories := []models.ExpenseCategory{}
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CreateCategory adds a category. Names are trimmed and unique per user.
func (s *categoryService) CreateCategory(userID uint, name string) (*models.ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category name is required")
	}

	var count int64
	if err := s.db.Model(&models.ExpenseCategory{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.ExpenseCategory{UserID: userID, Name: name}
	if err := s.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// UpdateCategory renames a category the user owns.
func (s *categoryService) UpdateCategory(userID, categoryID uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Category name is required")
	}

	var count int64
	if err := s.db.Model(&models.ExpenseCategory{}).
		Where("user_id = ? AND name = ? AND category_id <> ?", userID, name, categoryID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrCategoryNameTaken
	}

	result := s.db.Model(&models.ExpenseCategory{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		Update("name", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrCategoryNameTaken
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes a category that no expense references.
func (s *categoryService) DeleteCategory(userID, categoryID uint) error {
	var inUse int64
	if err := s.db.Model(&models.Expense{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		Count(&inUse).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if inUse > 0 {
		return apperrors.ErrCategoryInUse
	}

	result := s.db.Where("category_id = ? AND user_id = ?", categoryID, userID).Delete(&models.ExpenseCategory{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// ownedCategoryIDs returns the subset of categoryIDs that belong to userID.
func ownedCategoryIDs(db *gorm.DB, userID uint, categoryIDs []uint) (map[uint]bool, error) {
	var owned []uint
	if err := db.Model(&models.ExpenseCategory{}).
		Where("user_id = ? AND category_id IN ?", userID, categoryIDs).
		Pluck("category_id", &owned).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	set := make(map[uint]bool, len(owned))
	for _, id := range owned {
		set[id] = true
	}
	return set, nil
}
