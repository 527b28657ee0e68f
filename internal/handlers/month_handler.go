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

// MonthHandler handles month lifecycle and reporting endpoints
type MonthHandler struct {
	monthService services.MonthServiceInterface
}

// NewMonthHandler creates a new month handler
func NewMonthHandler(monthService services.MonthServiceInterface) *MonthHandler {
	return &MonthHandler{monthService: monthService}
}

// Open returns the month for the requested period, creating it on first
// access. An empty body opens the current calendar month.
// @Summary Open a month
// @Description Get or create the month for a period; omit the body for the current calendar month. A new month is seeded with one budget line per category at its default amount.
// @Tags Months
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.OpenMonthRequest false "Period to open"
// @Success 200 {object} SuccessResponse{data=models.Month} "Month"
// @Failure 400 {object} errors.ErrorResponse "Invalid period - MONTH_004"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /months [post]
func (h *MonthHandler) Open(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.OpenMonthRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	var month *models.Month
	if req.Year == 0 && req.Month == 0 {
		month, err = h.monthService.GetOrCreateCurrent(userID)
	} else if req.Year == 0 || req.Month == 0 {
		return SendError(c, apperrors.MonthInvalidPeriod, apperrors.WithDetails("Year and month must be provided together"))
	} else {
		month, err = h.monthService.GetOrCreateForPeriod(userID, req.Year, req.Month)
	}
	if err != nil {
		if errors.Is(err, models.ErrInvalidMonthValue) {
			return SendError(c, apperrors.MonthInvalidPeriod)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: month})
}

// List returns all of the user's months, newest first
// @Summary List months
// @Description List every month the user has opened, newest first
// @Tags Months
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Month} "Months"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /months [get]
func (h *MonthHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	months, err := h.monthService.ListByUser(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: months})
}

// Get returns a single month
// @Summary Get a month
// @Tags Months
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=models.Month} "Month"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Router /months/{id} [get]
func (h *MonthHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	month, err := h.monthService.GetByID(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: month})
}

// Close marks a month closed, freezing its entries
// @Summary Close a month
// @Description Close a month; its budgets, income and items become read-only
// @Tags Months
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=models.Month} "Closed month"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Failure 409 {object} errors.ErrorResponse "Month already closed - MONTH_002"
// @Router /months/{id}/close [post]
func (h *MonthHandler) Close(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	month, err := h.monthService.CloseMonth(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		if errors.Is(err, services.ErrMonthAlreadyClosed) {
			return SendError(c, apperrors.MonthClosed, apperrors.WithDetails("Month is already closed"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    month,
		Message: "Month closed successfully",
	})
}

// Summary returns a month's aggregated financial picture
// @Summary Get a month summary
// @Description Aggregate income, fixed expenses, budget lines with spending, and the remaining amount
// @Tags Months
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=models.MonthSummary} "Summary"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Router /months/{id}/summary [get]
func (h *MonthHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	summary, err := h.monthService.GetSummary(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// Variance returns a month's budget variance report
// @Summary Get a variance report
// @Description Partition the month's budget lines into over-budget, unplanned and under-budget groups with aggregate totals
// @Tags Months
// @Security BearerAuth
// @Produce json
// @Param id path string true "Month ID"
// @Success 200 {object} SuccessResponse{data=models.VarianceReport} "Variance report"
// @Failure 404 {object} errors.ErrorResponse "Month not found - MONTH_001"
// @Router /months/{id}/variance [get]
func (h *MonthHandler) Variance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	monthID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid month ID"))
	}

	report, err := h.monthService.GetVarianceReport(userID, monthID)
	if err != nil {
		if errors.Is(err, services.ErrMonthNotFound) {
			return SendError(c, apperrors.MonthNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}
