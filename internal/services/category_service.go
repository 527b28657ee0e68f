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
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this label already exists")
	ErrCategoryInUse    = errors.New("category has recorded spending and cannot be deleted")
)

// CategoryService manages budget category templates
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	monthRepo    repositories.MonthRepositoryInterface
	budgetRepo   repositories.MonthlyBudgetRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	monthRepo repositories.MonthRepositoryInterface,
	budgetRepo repositories.MonthlyBudgetRepositoryInterface,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		monthRepo:    monthRepo,
		budgetRepo:   budgetRepo,
	}
}

// Create adds a category and gives every open month a budget line for it
// at the category's default amount.
func (cs *CategoryService) Create(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.BudgetCategory, error) {
	if req == nil {
		return nil, errors.New("create category request cannot be nil")
	}

	exists, err := cs.categoryRepo.ExistsByLabel(userID, req.Label)
	if err != nil {
		return nil, fmt.Errorf("failed to check category label: %w", err)
	}
	if exists {
		return nil, ErrCategoryExists
	}

	category := &models.BudgetCategory{
		UserID:        userID,
		Label:         req.Label,
		DefaultAmount: req.DefaultAmount,
	}

	if err := cs.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if err := cs.propagateToOpenMonths(userID, category); err != nil {
		return nil, err
	}

	slog.Info("category created",
		"user_id", userID,
		"category_id", category.ID,
		"label", category.Label)

	return category, nil
}

// List returns the user's categories ordered by label
func (cs *CategoryService) List(userID uuid.UUID) ([]models.BudgetCategory, error) {
	categories, err := cs.categoryRepo.GetAllByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update changes a category's label or default amount. Existing monthly
// allocations keep their values; the default only shapes future months.
func (cs *CategoryService) Update(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.BudgetCategory, error) {
	if req == nil {
		return nil, errors.New("update category request cannot be nil")
	}

	category, err := cs.ownedCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Label != "" && req.Label != category.Label {
		exists, err := cs.categoryRepo.ExistsByLabel(userID, req.Label)
		if err != nil {
			return nil, fmt.Errorf("failed to check category label: %w", err)
		}
		if exists {
			return nil, ErrCategoryExists
		}
		category.Label = req.Label
	}

	if req.DefaultAmount != nil {
		category.DefaultAmount = *req.DefaultAmount
	}

	if err := cs.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Delete removes a category that has no recorded spending
func (cs *CategoryService) Delete(userID, categoryID uuid.UUID) error {
	category, err := cs.ownedCategory(userID, categoryID)
	if err != nil {
		return err
	}

	itemCount, err := cs.categoryRepo.CountItemsByCategoryID(category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category items: %w", err)
	}
	if itemCount > 0 {
		return ErrCategoryInUse
	}

	if err := cs.categoryRepo.Delete(category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("category deleted",
		"user_id", userID,
		"category_id", categoryID)

	return nil
}

func (cs *CategoryService) propagateToOpenMonths(userID uuid.UUID, category *models.BudgetCategory) error {
	openMonths, err := cs.monthRepo.GetOpenByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to load open months: %w", err)
	}

	for _, month := range openMonths {
		budget := &models.MonthlyBudget{
			MonthID:         month.ID,
			CategoryID:      category.ID,
			AllocatedAmount: category.DefaultAmount,
		}
		if err := cs.budgetRepo.Create(budget); err != nil {
			if errors.Is(err, repositories.ErrBudgetDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed budget line for month %s: %w", month.ID, err)
		}
	}

	return nil
}

func (cs *CategoryService) ownedCategory(userID, categoryID uuid.UUID) (*models.BudgetCategory, error) {
	category, err := cs.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	if category.UserID != userID {
		return nil, ErrCategoryNotFound
	}

	return category, nil
}
