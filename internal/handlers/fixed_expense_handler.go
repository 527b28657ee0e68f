package handlers

import (
	"errors"
	"net/http"

	"payme/internal/dto"
	apperrors "payme/internal/errors"
	"payme/internal/services"

	"github.com/labstack/echo/v4"
)

// FixedExpenseHandler handles recurring expense endpoints. Fixed
// expenses are user-scoped and count against every month's summary.
type FixedExpenseHandler struct {
	fixedExpenseService services.FixedExpenseServiceInterface
}

// NewFixedExpenseHandler creates a new fixed expense handler
func NewFixedExpenseHandler(fixedExpenseService services.FixedExpenseServiceInterface) *FixedExpenseHandler {
	return &FixedExpenseHandler{fixedExpenseService: fixedExpenseService}
}

// Create records a recurring expense
// @Summary Create a fixed expense
// @Tags Fixed Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateFixedExpenseRequest true "Fixed expense"
// @Success 201 {object} SuccessResponse{data=models.FixedExpense} "Fixed expense created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Router /fixed-expenses [post]
func (h *FixedExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CreateFixedExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.fixedExpenseService.Create(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    expense,
		Message: "Fixed expense created successfully",
	})
}

// List returns the user's fixed expenses ordered by label
// @Summary List fixed expenses
// @Tags Fixed Expenses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.FixedExpense} "Fixed expenses"
// @Router /fixed-expenses [get]
func (h *FixedExpenseHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	expenses, err := h.fixedExpenseService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: expenses})
}

// Update changes a fixed expense
// @Summary Update a fixed expense
// @Tags Fixed Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Fixed expense ID"
// @Param request body dto.UpdateFixedExpenseRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=models.FixedExpense} "Updated fixed expense"
// @Failure 404 {object} errors.ErrorResponse "Fixed expense not found - ENTRY_001"
// @Router /fixed-expenses/{id} [put]
func (h *FixedExpenseHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid fixed expense ID"))
	}

	var req dto.UpdateFixedExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.fixedExpenseService.Update(userID, expenseID, &req)
	if err != nil {
		if errors.Is(err, services.ErrFixedExpenseNotFound) {
			return SendError(c, apperrors.EntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: expense})
}

// Delete removes a fixed expense
// @Summary Delete a fixed expense
// @Tags Fixed Expenses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Fixed expense ID"
// @Success 200 {object} SuccessResponse{message=string} "Fixed expense deleted"
// @Failure 404 {object} errors.ErrorResponse "Fixed expense not found - ENTRY_001"
// @Router /fixed-expenses/{id} [delete]
func (h *FixedExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid fixed expense ID"))
	}

	if err := h.fixedExpenseService.Delete(userID, expenseID); err != nil {
		if errors.Is(err, services.ErrFixedExpenseNotFound) {
			return SendError(c, apperrors.EntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Fixed expense deleted successfully"})
}
