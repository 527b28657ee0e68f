package services

import (
	"errors"
	"fmt"

	"payme/internal/dto"
	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
)

var ErrIncomeNotFound = errors.New("income entry not found")

// IncomeService manages per-month income entries
type IncomeService struct {
	incomeRepo repositories.IncomeRepositoryInterface
	monthRepo  repositories.MonthRepositoryInterface
}

// NewIncomeService creates a new income service
func NewIncomeService(
	incomeRepo repositories.IncomeRepositoryInterface,
	monthRepo repositories.MonthRepositoryInterface,
) IncomeServiceInterface {
	return &IncomeService{
		incomeRepo: incomeRepo,
		monthRepo:  monthRepo,
	}
}

// Create records an income source against an open month
func (is *IncomeService) Create(userID, monthID uuid.UUID, req *dto.CreateIncomeRequest) (*models.IncomeEntry, error) {
	if req == nil {
		return nil, errors.New("create income request cannot be nil")
	}

	month, err := is.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}
	if month.IsClosed {
		return nil, models.ErrMonthClosed
	}

	entry := &models.IncomeEntry{
		MonthID: month.ID,
		Label:   req.Label,
		Amount:  req.Amount,
	}

	if err := is.incomeRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create income entry: %w", err)
	}

	return entry, nil
}

// ListByMonth returns all income entries of a month
func (is *IncomeService) ListByMonth(userID, monthID uuid.UUID) ([]models.IncomeEntry, error) {
	month, err := is.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}

	entries, err := is.incomeRepo.GetByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}

	return entries, nil
}

// Update changes an income entry in an open month
func (is *IncomeService) Update(userID, entryID uuid.UUID, req *dto.UpdateIncomeRequest) (*models.IncomeEntry, error) {
	if req == nil {
		return nil, errors.New("update income request cannot be nil")
	}

	entry, err := is.ownedOpenEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Label != "" {
		entry.Label = req.Label
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}

	if err := is.incomeRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update income entry: %w", err)
	}

	return entry, nil
}

// Delete removes an income entry from an open month
func (is *IncomeService) Delete(userID, entryID uuid.UUID) error {
	entry, err := is.ownedOpenEntry(userID, entryID)
	if err != nil {
		return err
	}

	if err := is.incomeRepo.Delete(entry.ID); err != nil {
		return fmt.Errorf("failed to delete income entry: %w", err)
	}

	return nil
}

func (is *IncomeService) ownedOpenEntry(userID, entryID uuid.UUID) (*models.IncomeEntry, error) {
	entry, err := is.incomeRepo.GetByID(entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrIncomeEntryNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to load income entry: %w", err)
	}

	month, err := is.ownedMonth(userID, entry.MonthID)
	if err != nil {
		if errors.Is(err, ErrMonthNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, err
	}
	if month.IsClosed {
		return nil, models.ErrMonthClosed
	}

	return entry, nil
}

func (is *IncomeService) ownedMonth(userID, monthID uuid.UUID) (*models.Month, error) {
	month, err := is.monthRepo.GetByID(monthID)
	if err != nil {
		if errors.Is(err, repositories.ErrMonthNotFound) {
			return nil, ErrMonthNotFound
		}
		return nil, fmt.Errorf("failed to load month: %w", err)
	}
	if month.UserID != userID {
		return nil, ErrMonthNotFound
	}
	return month, nil
}
