package handlers

import (
	"errors"
	"net/http"

	"payme/internal/dto"
	apperrors "payme/internal/errors"
	"payme/internal/models"
	"payme/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SavingsHandler handles savings balance and projection endpoints
type SavingsHandler struct {
	savingsService services.SavingsServiceInterface
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(savingsService services.SavingsServiceInterface) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// UpdateSavings sets the user's savings balance
// @Summary Update savings
// @Tags Savings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSavingsRequest true "New balance"
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse} "Updated profile"
// @Failure 404 {object} errors.ErrorResponse "User not found - USER_001"
// @Router /savings [put]
func (h *SavingsHandler) UpdateSavings(c echo.Context) error {
	return h.updateBalance(c, h.savingsService.UpdateSavings)
}

// UpdateRetirementSavings sets the user's retirement savings balance
// @Summary Update retirement savings
// @Tags Savings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSavingsRequest true "New balance"
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse} "Updated profile"
// @Failure 404 {object} errors.ErrorResponse "User not found - USER_001"
// @Router /savings/retirement [put]
func (h *SavingsHandler) UpdateRetirementSavings(c echo.Context) error {
	return h.updateBalance(c, h.savingsService.UpdateRetirementSavings)
}

// ProjectedSavings estimates the savings balance at the end of a month
// @Summary Get projected savings
// @Description Estimate the savings balance at month end, assuming the month's remaining amount is banked
// @Tags Savings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=object{projectedSavings=string}} "Projection"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Router /months/{id}/projected-savings [get]
func (h *SavingsHandler) ProjectedSavings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	projected, err := h.savingsService.ProjectedSavings(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apperrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"projectedSavings": projected,
		},
	})
}

func (h *SavingsHandler) updateBalance(c echo.Context, update func(uuid.UUID, decimal.Decimal) (*models.User, error)) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.UpdateSavingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := update(userID, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apperrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	profile := dto.UserProfileResponse{
		ID:                user.ID.String(),
		Username:          user.Username,
		Savings:           user.Savings,
		RetirementSavings: user.RetirementSavings,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: profile})
}
