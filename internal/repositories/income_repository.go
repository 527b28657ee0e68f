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
	ErrIncomeEntryNotFound = errors.New("income entry not found")
)

// IncomeRepository handles database operations for income entries
type IncomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income entry repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &IncomeRepository{
		db: db,
	}
}

// Create creates a new income entry in the database
func (r *IncomeRepository) Create(entry *models.IncomeEntry) error {
	if entry == nil {
		return errors.New("income entry cannot be nil")
	}

	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create income entry: %w", err)
	}

	return nil
}

// GetByID retrieves an income entry by its ID
func (r *IncomeRepository) GetByID(id uuid.UUID) (*models.IncomeEntry, error) {
	var entry models.IncomeEntry
	if err := r.db.Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeEntryNotFound
		}
		return nil, fmt.Errorf("failed to get income entry by ID: %w", err)
	}

	return &entry, nil
}

// GetByMonthID retrieves every income entry of a month, oldest first
func (r *IncomeRepository) GetByMonthID(monthID uuid.UUID) ([]models.IncomeEntry, error) {
	var entries []models.IncomeEntry
	if err := r.db.Where("month_id = ?", monthID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}

	return entries, nil
}

// Update updates an income entry in the database
func (r *IncomeRepository) Update(entry *models.IncomeEntry) error {
	if entry == nil {
		return errors.New("income entry cannot be nil")
	}

	if err := r.db.Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update income entry: %w", err)
	}

	return nil
}

// Delete removes an income entry
func (r *IncomeRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.IncomeEntry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete income entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomeEntryNotFound
	}

	return nil
}

// SumByMonthID totals the income recorded against a month
func (r *IncomeRepository) SumByMonthID(monthID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.IncomeEntry{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("month_id = ?", monthID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum income entries: %w", err)
	}

	return result.Total, nil
}
