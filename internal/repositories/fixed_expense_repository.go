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
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")
)

// FixedExpenseRepository handles database operations for fixed expenses
type FixedExpenseRepository struct {
	db *gorm.DB
}

// NewFixedExpenseRepository creates a new fixed expense repository
func NewFixedExpenseRepository(db *gorm.DB) FixedExpenseRepositoryInterface {
	return &FixedExpenseRepository{
		db: db,
	}
}

// Create creates a new fixed expense in the database
func (r *FixedExpenseRepository) Create(expense *models.FixedExpense) error {
	if expense == nil {
		return errors.New("fixed expense cannot be nil")
	}

	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create fixed expense: %w", err)
	}

	return nil
}

// GetByID retrieves a fixed expense by its ID
func (r *FixedExpenseRepository) GetByID(id uuid.UUID) (*models.FixedExpense, error) {
	var expense models.FixedExpense
	if err := r.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFixedExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get fixed expense by ID: %w", err)
	}

	return &expense, nil
}

// GetByUserID retrieves every fixed expense for a user, ordered by label
func (r *FixedExpenseRepository) GetByUserID(userID uuid.UUID) ([]models.FixedExpense, error) {
	var expenses []models.FixedExpense
	if err := r.db.Where("user_id = ?", userID).
		Order("label ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}

	return expenses, nil
}

// Update updates a fixed expense in the database
func (r *FixedExpenseRepository) Update(expense *models.FixedExpense) error {
	if expense == nil {
		return errors.New("fixed expense cannot be nil")
	}

	if err := r.db.Save(expense).Error; err != nil {
		return fmt.Errorf("failed to update fixed expense: %w", err)
	}

	return nil
}

// Delete removes a fixed expense
func (r *FixedExpenseRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.FixedExpense{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFixedExpenseNotFound
	}

	return nil
}

// SumByUserID totals the user's recurring fixed costs
func (r *FixedExpenseRepository) SumByUserID(userID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.FixedExpense{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum fixed expenses: %w", err)
	}

	return result.Total, nil
}
