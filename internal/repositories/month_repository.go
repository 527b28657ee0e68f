package repositories

import (
	"errors"
	"fmt"

	"payme/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMonthNotFound      = errors.New("month not found")
	ErrMonthAlreadyExists = errors.New("month already exists for this period")
)

// MonthRepository handles database operations for budgeting months
type MonthRepository struct {
	db *gorm.DB
}

// NewMonthRepository creates a new month repository
func NewMonthRepository(db *gorm.DB) MonthRepositoryInterface {
	return &MonthRepository{
		db: db,
	}
}

// Create creates a new month in the database
func (r *MonthRepository) Create(month *models.Month) error {
	if month == nil {
		return errors.New("month cannot be nil")
	}

	if err := r.db.Create(month).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrMonthAlreadyExists
		}
		return fmt.Errorf("failed to create month: %w", err)
	}

	return nil
}

// GetByID retrieves a month by its ID
func (r *MonthRepository) GetByID(id uuid.UUID) (*models.Month, error) {
	var month models.Month
	if err := r.db.Where("id = ?", id).First(&month).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMonthNotFound
		}
		return nil, fmt.Errorf("failed to get month by ID: %w", err)
	}

	return &month, nil
}

// GetByUserAndPeriod retrieves the user's month for a specific year/month pair
func (r *MonthRepository) GetByUserAndPeriod(userID uuid.UUID, year, monthNumber int) (*models.Month, error) {
	var month models.Month
	if err := r.db.Where("user_id = ? AND year = ? AND month = ?", userID, year, monthNumber).
		First(&month).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMonthNotFound
		}
		return nil, fmt.Errorf("failed to get month by period: %w", err)
	}

	return &month, nil
}

// GetAllByUserID retrieves every month for a user, newest period first
func (r *MonthRepository) GetAllByUserID(userID uuid.UUID) ([]models.Month, error) {
	var months []models.Month
	if err := r.db.Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&months).Error; err != nil {
		return nil, fmt.Errorf("failed to list months: %w", err)
	}

	return months, nil
}

// GetOpenByUserID retrieves months that are still accepting writes,
// used when a new category's default must be propagated
func (r *MonthRepository) GetOpenByUserID(userID uuid.UUID) ([]models.Month, error) {
	var months []models.Month
	if err := r.db.Where("user_id = ? AND is_closed = ?", userID, false).
		Order("year DESC, month DESC").
		Find(&months).Error; err != nil {
		return nil, fmt.Errorf("failed to list open months: %w", err)
	}

	return months, nil
}

// Update updates a month in the database
func (r *MonthRepository) Update(month *models.Month) error {
	if month == nil {
		return errors.New("month cannot be nil")
	}

	if err := r.db.Save(month).Error; err != nil {
		return fmt.Errorf("failed to update month: %w", err)
	}

	return nil
}
