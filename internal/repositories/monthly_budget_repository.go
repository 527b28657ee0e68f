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
	ErrBudgetNotFound  = errors.New("monthly budget not found")
	ErrBudgetDuplicate = errors.New("budget already exists for this category in this month")
)

// MonthlyBudgetRepository handles database operations for monthly budget allocations
type MonthlyBudgetRepository struct {
	db *gorm.DB
}

// NewMonthlyBudgetRepository creates a new monthly budget repository
func NewMonthlyBudgetRepository(db *gorm.DB) MonthlyBudgetRepositoryInterface {
	return &MonthlyBudgetRepository{
		db: db,
	}
}

// Create creates a new monthly budget in the database
func (r *MonthlyBudgetRepository) Create(budget *models.MonthlyBudget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetDuplicate
		}
		return fmt.Errorf("failed to create monthly budget: %w", err)
	}

	return nil
}

// CreateBatch inserts a set of allocations in a single transaction,
// used when a new month is seeded from the category defaults
func (r *MonthlyBudgetRepository) CreateBatch(budgets []models.MonthlyBudget) error {
	if len(budgets) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range budgets {
			if err := tx.Create(&budgets[i]).Error; err != nil {
				if isDuplicateKeyError(err) {
					return ErrBudgetDuplicate
				}
				return fmt.Errorf("failed to create monthly budget batch: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a monthly budget by its ID
func (r *MonthlyBudgetRepository) GetByID(id uuid.UUID) (*models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	if err := r.db.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get monthly budget by ID: %w", err)
	}

	return &budget, nil
}

// GetByMonthAndCategory retrieves the allocation for one category within a month
func (r *MonthlyBudgetRepository) GetByMonthAndCategory(monthID, categoryID uuid.UUID) (*models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	if err := r.db.Where("month_id = ? AND category_id = ?", monthID, categoryID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get monthly budget: %w", err)
	}

	return &budget, nil
}

// GetLinesByMonthID retrieves the month's allocations joined with their
// category labels and the spent total derived from the month's items
func (r *MonthlyBudgetRepository) GetLinesByMonthID(monthID uuid.UUID) ([]models.BudgetLine, error) {
	var lines []models.BudgetLine

	query := `
		SELECT
			mb.id,
			mb.month_id,
			mb.category_id,
			bc.label AS category_label,
			mb.allocated_amount,
			COALESCE(SUM(i.amount), 0) AS spent_amount
		FROM monthly_budgets mb
		INNER JOIN budget_categories bc ON bc.id = mb.category_id
		LEFT JOIN items i ON i.category_id = mb.category_id AND i.month_id = mb.month_id
		WHERE mb.month_id = ?
		GROUP BY mb.id, mb.month_id, mb.category_id, bc.label, mb.allocated_amount
		ORDER BY bc.label ASC
	`

	if err := r.db.Raw(query, monthID).Scan(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget lines: %w", err)
	}

	return lines, nil
}

// UpdateAllocatedAmount sets the allocation for a single monthly budget
func (r *MonthlyBudgetRepository) UpdateAllocatedAmount(id uuid.UUID, amount decimal.Decimal) error {
	result := r.db.Model(&models.MonthlyBudget{}).
		Where("id = ?", id).
		Update("allocated_amount", amount)
	if result.Error != nil {
		return fmt.Errorf("failed to update allocated amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

// Delete removes a monthly budget
func (r *MonthlyBudgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.MonthlyBudget{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete monthly budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

// SumAllocatedByMonthID totals the allocations for a month
func (r *MonthlyBudgetRepository) SumAllocatedByMonthID(monthID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.MonthlyBudget{}).
		Select("COALESCE(SUM(allocated_amount), 0) as total").
		Where("month_id = ?", monthID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum allocated amounts: %w", err)
	}

	return result.Total, nil
}
