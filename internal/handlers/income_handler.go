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

// IncomeHandler handles income entry endpoints
type IncomeHandler struct {
	incomeService services.IncomeServiceInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeService services.IncomeServiceInterface) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// Create records an income source for an open month
// @Summary Create an income entry
// @Tags Income
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Month ID"
// @Param request body dto.CreateIncomeRequest true "Income entry"
// @Success 201 {object} SuccessResponse{data=models.IncomeEntry} "Income entry created"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /months/{id}/income [post]
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	var req dto.CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.incomeService.Create(userID, monthID, &req)
	if err != nil {
		if handled := sendIncomeError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    entry,
		Message: "Income entry created successfully",
	})
}

// List returns a month's income entries in recording order
// @Summary List income entries
// @Tags Income
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=[]models.IncomeEntry} "Income entries"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Router /months/{id}/income [get]
func (h *IncomeHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	entries, err := h.incomeService.ListByMonth(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: entries})
}

// Update changes an income entry in an open month
// @Summary Update an income entry
// @Tags Income
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Income entry ID"
// @Param request body dto.UpdateIncomeRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=models.IncomeEntry} "Updated income entry"
// @Failure 404 {object} errors.ErrorResponse "Entry not found - ENTRY_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /income/{id} [put]
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	entryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid income entry ID"))
	}

	var req dto.UpdateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.incomeService.Update(userID, entryID, &req)
	if err != nil {
		if handled := sendIncomeError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: entry})
}

// Delete removes an income entry from an open month
// @Summary Delete an income entry
// @Tags Income
// @Security BearerAuth
// @Produce json
// @Param id path string true "Income entry ID"
// @Success 200 {object} SuccessResponse{message=string} "Income entry deleted"
// @Failure 404 {object} errors.ErrorResponse "Entry not found - ENTRY_001"
// @Failure 409 {object} errors.ErrorResponse "Month closed - MONTH_002"
// @Router /income/{id} [delete]
func (h *IncomeHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	entryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid income entry ID"))
	}

	if err := h.incomeService.Delete(userID, entryID); err != nil {
		if handled := sendIncomeError(c, err); handled != nil {
			return handled
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Income entry deleted successfully"})
}

func sendIncomeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrMonthNotFound):
		return SendError(c, apperrors.MonthNotFound)
	case errors.Is(err, services.ErrIncomeNotFound):
		return SendError(c, apperrors.EntryNotFound)
	case errors.Is(err, models.ErrMonthClosed):
		return SendError(c, apperrors.MonthClosed)
	default:
		return nil
	}
}
