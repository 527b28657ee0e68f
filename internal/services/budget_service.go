package services

import (
	"errors"
	"fmt"
	"log/slog"

	"payme/internal/dto"
	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
	ErrBudgetExists   = errors.New("budget already exists for this category and month")
)

// BudgetService manages per-month category allocations
type BudgetService struct {
	budgetRepo   repositories.MonthlyBudgetRepositoryInterface
	monthRepo    repositories.MonthRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.MonthlyBudgetRepositoryInterface,
	monthRepo repositories.MonthRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		monthRepo:    monthRepo,
		categoryRepo: categoryRepo,
	}
}

// Create allocates a category for an open month
func (bs *BudgetService) Create(userID, monthID uuid.UUID, req *dto.CreateBudgetRequest) (*models.MonthlyBudget, error) {
	if req == nil {
		return nil, errors.New("create budget request cannot be nil")
	}

	month, err := bs.openOwnedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID: %w", err)
	}

	category, err := bs.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category.UserID != userID {
		return nil, ErrCategoryNotFound
	}

	budget := &models.MonthlyBudget{
		MonthID:         month.ID,
		CategoryID:      category.ID,
		AllocatedAmount: req.AllocatedAmount,
	}

	if err := bs.budgetRepo.Create(budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetDuplicate) {
			return nil, ErrBudgetExists
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	slog.Info("budget allocated",
		"user_id", userID,
		"month_id", monthID,
		"category_id", category.ID)

	return budget, nil
}

// ListLines returns the month's budget lines with category labels and
// spend totals attached
func (bs *BudgetService) ListLines(userID, monthID uuid.UUID) ([]models.BudgetLine, error) {
	month, err := bs.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}

	lines, err := bs.budgetRepo.GetLinesByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget lines: %w", err)
	}

	return lines, nil
}

// Update changes a budget's allocated amount
func (bs *BudgetService) Update(userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.MonthlyBudget, error) {
	if req == nil {
		return nil, errors.New("update budget request cannot be nil")
	}

	budget, err := bs.ownedBudget(userID, budgetID, true)
	if err != nil {
		return nil, err
	}

	if err := bs.budgetRepo.UpdateAllocatedAmount(budget.ID, req.AllocatedAmount); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	budget.AllocatedAmount = req.AllocatedAmount
	return budget, nil
}

// Delete removes a budget line from an open month
func (bs *BudgetService) Delete(userID, budgetID uuid.UUID) error {
	budget, err := bs.ownedBudget(userID, budgetID, true)
	if err != nil {
		return err
	}

	if err := bs.budgetRepo.Delete(budget.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return nil
}

// ownedBudget loads a budget and verifies that its month belongs to the
// user, optionally requiring the month to still be open.
func (bs *BudgetService) ownedBudget(userID, budgetID uuid.UUID, requireOpen bool) (*models.MonthlyBudget, error) {
	budget, err := bs.budgetRepo.GetByID(budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	month, err := bs.ownedMonth(userID, budget.MonthID)
	if err != nil {
		if errors.Is(err, ErrMonthNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}

	if requireOpen && month.IsClosed {
		return nil, models.ErrMonthClosed
	}

	return budget, nil
}

func (bs *BudgetService) ownedMonth(userID, monthID uuid.UUID) (*models.Month, error) {
	month, err := bs.monthRepo.GetByID(monthID)
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

func (bs *BudgetService) openOwnedMonth(userID, monthID uuid.UUID) (*models.Month, error) {
	month, err := bs.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}
	if month.IsClosed {
		return nil, models.ErrMonthClosed
	}
	return month, nil
}
