package repositories

import (
	"errors"
	"fmt"

	"payme/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("budget category not found")
)

// CategoryRepository handles database operations for budget categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new budget category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// Create creates a new budget category in the database
func (r *CategoryRepository) Create(category *models.BudgetCategory) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a budget category by its ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.BudgetCategory, error) {
	var category models.BudgetCategory
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return &category, nil
}

// GetAllByUserID retrieves every budget category for a user, ordered by label
func (r *CategoryRepository) GetAllByUserID(userID uuid.UUID) ([]models.BudgetCategory, error) {
	var categories []models.BudgetCategory
	if err := r.db.Where("user_id = ?", userID).
		Order("label ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// ExistsByLabel checks whether the user already has a category with this label
func (r *CategoryRepository) ExistsByLabel(userID uuid.UUID, label string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.BudgetCategory{}).
		Where("user_id = ? AND label = ?", userID, label).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category label: %w", err)
	}

	return count > 0, nil
}

// Update updates a budget category in the database
func (r *CategoryRepository) Update(category *models.BudgetCategory) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// Delete removes a budget category
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.BudgetCategory{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// CountItemsByCategoryID counts the spending items recorded against a category
func (r *CategoryRepository) CountItemsByCategoryID(categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Item{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items for category: %w", err)
	}

	return count, nil
}
