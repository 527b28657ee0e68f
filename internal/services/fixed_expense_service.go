package services

import (
	"errors"
	"fmt"

	"payme/internal/dto"
	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
)

var ErrFixedExpenseNotFound = errors.New("fixed expense not found")

// FixedExpenseService manages recurring monthly costs. Fixed expenses
// belong to the user, not to a month; every summary counts them.
type FixedExpenseService struct {
	fixedRepo repositories.FixedExpenseRepositoryInterface
}

// NewFixedExpenseService creates a new fixed expense service
func NewFixedExpenseService(fixedRepo repositories.FixedExpenseRepositoryInterface) FixedExpenseServiceInterface {
	return &FixedExpenseService{fixedRepo: fixedRepo}
}

// Create records a recurring cost
func (fs *FixedExpenseService) Create(userID uuid.UUID, req *dto.CreateFixedExpenseRequest) (*models.FixedExpense, error) {
	if req == nil {
		return nil, errors.New("create fixed expense request cannot be nil")
	}

	expense := &models.FixedExpense{
		UserID: userID,
		Label:  req.Label,
		Amount: req.Amount,
	}

	if err := fs.fixedRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create fixed expense: %w", err)
	}

	return expense, nil
}

// List returns all of the user's fixed expenses
func (fs *FixedExpenseService) List(userID uuid.UUID) ([]models.FixedExpense, error) {
	expenses, err := fs.fixedRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}
	return expenses, nil
}

// Update changes a fixed expense
func (fs *FixedExpenseService) Update(userID, expenseID uuid.UUID, req *dto.UpdateFixedExpenseRequest) (*models.FixedExpense, error) {
	if req == nil {
		return nil, errors.New("update fixed expense request cannot be nil")
	}

	expense, err := fs.ownedExpense(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Label != "" {
		expense.Label = req.Label
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}

	if err := fs.fixedRepo.Update(expense); err != nil {
		return nil, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	return expense, nil
}

// Delete removes a fixed expense
func (fs *FixedExpenseService) Delete(userID, expenseID uuid.UUID) error {
	expense, err := fs.ownedExpense(userID, expenseID)
	if err != nil {
		return err
	}

	if err := fs.fixedRepo.Delete(expense.ID); err != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", err)
	}

	return nil
}

func (fs *FixedExpenseService) ownedExpense(userID, expenseID uuid.UUID) (*models.FixedExpense, error) {
	expense, err := fs.fixedRepo.GetByID(expenseID)
	if err != nil {
		if errors.Is(err, repositories.ErrFixedExpenseNotFound) {
			return nil, ErrFixedExpenseNotFound
		}
		return nil, fmt.Errorf("failed to load fixed expense: %w", err)
	}

	if expense.UserID != userID {
		return nil, ErrFixedExpenseNotFound
	}

	return expense, nil
}
