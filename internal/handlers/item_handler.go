package handlers

import (
	"errors"
	"net/http"

	"payme/internal/dto"
	apperrors "payme/internal/errors"
	"payme/internal/models"
	"payme/internal/services"

	"github.com/labstack/echo/v4"
)

// ItemHandler handles spending item endpoints
type ItemHandler struct {
	itemService services.ItemServiceInterface
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService services.ItemServiceInterface) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create records a spend against a category in an open month
// @Summary Create an item
// @Tags Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Month ID"
// @Param request body dto.CreateItemRequest true "Item"
// @Success 201 {object} SuccessResponse{data=models.Item} "Item created"
// @Failure 404 {object} errors.ErrorResponse "Month or category not found - MONTH_001 / CATEGORY_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /months/{id}/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	item, err := h.itemService.Create(userID, monthID, &req)
	if err != nil {
		if handled := sendItemError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    item,
		Message: "Item created successfully",
	})
}

// List returns a month's items with their category labels
// @Summary List items
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=[]models.ItemWithCategory} "Items"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Router /months/{id}/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	items, err := h.itemService.ListByMonth(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: items})
}

// Update changes a recorded spend in an open month
// @Summary Update an item
// @Tags Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=models.Item} "Updated item"
// @Failure 404 {object} errors.ErrorResponse "Item not found - ENTRY_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	itemID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid item ID"))
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	item, err := h.itemService.Update(userID, itemID, &req)
	if err != nil {
		if handled := sendItemError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: item})
}

// Delete removes an item from an open month
// @Summary Delete an item
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} SuccessResponse{message=string} "Item deleted"
// @Failure 404 {object} errors.ErrorResponse "Item not found - ENTRY_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	itemID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid item ID"))
	}

	if err := h.itemService.Delete(userID, itemID); err != nil {
		if handled := sendItemError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Item deleted successfully"})
}

func sendItemError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrMonthNotFound):
		return SendError(c, apperrors.MonthNotFound)
	case errors.Is(err, services.ErrItemNotFound):
		return SendError(c, apperrors.EntryNotFound)
	case errors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, apperrors.CategoryNotFound)
	case errors.Is(err, models.ErrMonthClosed):
		return SendError(c, apperrors.MonthClosed)
	default:
		return nil
	}
}
