package repositories

import (
	"errors"
	"fmt"

	"payme/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

// ItemRepository handles database operations for spending items
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) ItemRepositoryInterface {
	return &ItemRepository{
		db: db,
	}
}

// Create creates a new item in the database
func (r *ItemRepository) Create(item *models.Item) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}

	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by its ID
func (r *ItemRepository) GetByID(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}

	return &item, nil
}

// GetByMonthID retrieves the month's items joined with their category
// labels, most recent spend first
func (r *ItemRepository) GetByMonthID(monthID uuid.UUID) ([]models.ItemWithCategory, error) {
	var items []models.ItemWithCategory

	query := `
		SELECT
			i.id,
			i.month_id,
			i.category_id,
			bc.label AS category_label,
			i.description,
			i.amount,
			i.spent_on
		FROM items i
		INNER JOIN budget_categories bc ON bc.id = i.category_id
		WHERE i.month_id = ?
		ORDER BY i.spent_on DESC, i.created_at DESC
	`

	if err := r.db.Raw(query, monthID).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// Update updates an item in the database
func (r *ItemRepository) Update(item *models.Item) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}

	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	return nil
}

// Delete removes an item
func (r *ItemRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// SumByMonthID totals the spending recorded against a month
func (r *ItemRepository) SumByMonthID(monthID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.Item{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("month_id = ?", monthID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum items: %w", err)
	}

	return result.Total, nil
}
