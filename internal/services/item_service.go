package services

import (
	"errors"
	"fmt"

	"payme/internal/dto"
	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("item not found")

// ItemService manages recorded spends within a month
type ItemService struct {
	itemRepo     repositories.ItemRepositoryInterface
	monthRepo    repositories.MonthRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repositories.ItemRepositoryInterface,
	monthRepo repositories.MonthRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) ItemServiceInterface {
	return &ItemService{
		itemRepo:     itemRepo,
		monthRepo:    monthRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// Create records a spend against a category in an open month
func (its *ItemService) Create(userID, monthID uuid.UUID, req *dto.CreateItemRequest) (*models.Item, error) {
	if req == nil {
		return nil, errors.New("create item request cannot be nil")
	}

	month, err := its.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}
	if month.IsClosed {
		return nil, models.ErrMonthClosed
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID: %w", err)
	}

	category, err := its.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category.UserID != userID {
		return nil, ErrCategoryNotFound
	}

	item := &models.Item{
		MonthID:     month.ID,
		CategoryID:  category.ID,
		Description: req.Description,
		Amount:      req.Amount,
		SpentOn:     req.SpentOn,
	}

	if err := its.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	if its.metrics != nil {
		its.metrics.IncrementCounter("item.recorded", nil)
		amount, _ := item.Amount.Float64()
		its.metrics.RecordGauge("item.amount", amount, nil)
	}

	return item, nil
}

// ListByMonth returns the month's items with category labels, newest first
func (its *ItemService) ListByMonth(userID, monthID uuid.UUID) ([]models.ItemWithCategory, error) {
	month, err := its.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}

	items, err := its.itemRepo.GetByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// Update changes a recorded spend in an open month
func (its *ItemService) Update(userID, itemID uuid.UUID, req *dto.UpdateItemRequest) (*models.Item, error) {
	if req == nil {
		return nil, errors.New("update item request cannot be nil")
	}

	item, err := its.ownedOpenItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.SpentOn != nil {
		item.SpentOn = *req.SpentOn
	}

	if err := its.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// Delete removes a recorded spend from an open month
func (its *ItemService) Delete(userID, itemID uuid.UUID) error {
	item, err := its.ownedOpenItem(userID, itemID)
	if err != nil {
		return err
	}

	if err := its.itemRepo.Delete(item.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

func (its *ItemService) ownedOpenItem(userID, itemID uuid.UUID) (*models.Item, error) {
	item, err := its.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	month, err := its.ownedMonth(userID, item.MonthID)
	if err != nil {
		if errors.Is(err, ErrMonthNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if month.IsClosed {
		return nil, models.ErrMonthClosed
	}

	return item, nil
}

func (its *ItemService) ownedMonth(userID, monthID uuid.UUID) (*models.Month, error) {
	month, err := its.monthRepo.GetByID(monthID)
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
