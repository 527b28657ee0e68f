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

// BudgetHandler handles monthly budget allocation endpoints
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// Create allocates a category inside an open month
// @Summary Create a budget line
// @Description Allocate an amount to a category for a month; one line per category
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Month ID"
// @Param request body dto.CreateBudgetRequest true "Allocation"
// @Success 201 {object} SuccessResponse{data=models.MonthlyBudget} "Budget line created"
// @Failure 404 {object} errors.ErrorResponse "Month or category not found - MONTH_001 / CATEGORY_001"
// @Failure 409 {object} errors.ErrorResponse "Duplicate line or closed month - BUDGET_003 / MONTH_002"
// @Router /months/{id}/budgets [post]
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.Create(userID, monthID, &req)
	if err != nil {
		if handled := sendBudgetError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    budget,
		Message: "Budget line created successfully",
	})
}

// List returns a month's budget lines with per-category spending
// @Summary List budget lines
// @Description List a month's allocations joined with category labels and spent amounts
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=[]models.BudgetLine} "Budget lines"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Router /months/{id}/budgets [get]
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	lines, err := h.budgetService.ListLines(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: lines})
}

// Update changes a budget line's allocated amount
// @Summary Update a budget line
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Budget line ID"
// @Param request body dto.UpdateBudgetRequest true "New allocation"
// @Success 200 {object} SuccessResponse{data=models.MonthlyBudget} "Updated budget line"
// @Failure 404 {object} errors.ErrorResponse "Budget line not found - BUDGET_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	budgetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid budget ID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.Update(userID, budgetID, &req)
	if err != nil {
		if handled := sendBudgetError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: budget})
}

// Delete removes a budget line from an open month
// @Summary Delete a budget line
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget line ID"
// @Success 200 {object} SuccessResponse{message=string} "Budget line deleted"
// @Failure 404 {object} errors.ErrorResponse "Budget line not found - BUDGET_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	budgetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetService.Delete(userID, budgetID); err != nil {
		if handled := sendBudgetError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget line deleted successfully"})
}

// sendBudgetError maps the budget service's business errors onto
// standardized responses; returns nil for anything unrecognized
func sendBudgetError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrMonthNotFound):
		return SendError(c, apperrors.MonthNotFound)
	case errors.Is(err, services.ErrBudgetNotFound):
		return SendError(c, apperrors.BudgetNotFound)
	case errors.Is(err, services.ErrBudgetExists):
		return SendError(c, apperrors.BudgetDuplicate)
	case errors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, apperrors.CategoryNotFound)
	case errors.Is(err, models.ErrMonthClosed):
		return SendError(c, apperrors.MonthClosed)
	default:
		return nil
	}
}
