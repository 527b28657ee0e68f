package services

import (
	"errors"
	"fmt"
	"log/slog"

	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsService manages the user's savings balances and projections
type SavingsService struct {
	userRepo        repositories.UserRepositoryInterface
	monthService    MonthServiceInterface
	varianceService VarianceServiceInterface
}

// NewSavingsService creates a new savings service
func NewSavingsService(
	userRepo repositories.UserRepositoryInterface,
	monthService MonthServiceInterface,
	varianceService VarianceServiceInterface,
) SavingsServiceInterface {
	return &SavingsService{
		userRepo:        userRepo,
		monthService:    monthService,
		varianceService: varianceService,
	}
}

// UpdateSavings sets the user's savings balance
func (ss *SavingsService) UpdateSavings(userID uuid.UUID, amount decimal.Decimal) (*models.User, error) {
	if err := ss.userRepo.UpdateSavings(userID, amount); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update savings: %w", err)
	}

	slog.Info("savings updated", "user_id", userID)
	return ss.reload(userID)
}

// UpdateRetirementSavings sets the user's retirement savings balance
func (ss *SavingsService) UpdateRetirementSavings(userID uuid.UUID, amount decimal.Decimal) (*models.User, error) {
	if err := ss.userRepo.UpdateRetirementSavings(userID, amount); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update retirement savings: %w", err)
	}

	slog.Info("retirement savings updated", "user_id", userID)
	return ss.reload(userID)
}

// ProjectedSavings estimates the savings balance at month end, assuming
// whatever remains of the month's income is banked.
func (ss *SavingsService) ProjectedSavings(userID, monthID uuid.UUID) (decimal.Decimal, error) {
	user, err := ss.reload(userID)
	if err != nil {
		return decimal.Zero, err
	}

	summary, err := ss.monthService.GetSummary(userID, monthID)
	if err != nil {
		return decimal.Zero, err
	}

	return ss.varianceService.ProjectedSavings(user.Savings, summary.Remaining), nil
}

func (ss *SavingsService) reload(userID uuid.UUID) (*models.User, error) {
	user, err := ss.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
