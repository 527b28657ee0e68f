package handlers

import (
	"net/http"

	"payme/internal/dto"
	apperrors "payme/internal/errors"
	"payme/internal/services"

	"github.com/labstack/echo/v4"
)

// CurrencyHandler handles currency catalog and selection endpoints
type CurrencyHandler struct {
	currencyService services.CurrencyServiceInterface
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(currencyService services.CurrencyServiceInterface) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// List returns the supported currency catalog
// @Summary List currencies
// @Description List every supported currency with its symbol, placement and fraction digits
// @Tags Currencies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.CurrencyResponse} "Currencies"
// @Router /currencies [get]
func (h *CurrencyHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.currencyService.ListCurrencies()})
}

// Active returns the user's selected currency with a formatted sample
// @Summary Get active currency
// @Description Return the user's active currency and a sample amount rendered with it
// @Tags Currencies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ActiveCurrencyResponse} "Active currency"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Router /currencies/active [get]
func (h *CurrencyHandler) Active(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	active, err := h.currencyService.ActiveCurrency(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: active})
}

// Select switches the user's display currency
// @Summary Select a currency
// @Description Persist a new display currency; subsequent sessions render amounts with it
// @Tags Currencies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SelectCurrencyRequest true "Currency code"
// @Success 200 {object} SuccessResponse{data=dto.ActiveCurrencyResponse} "Selected currency"
// @Failure 400 {object} errors.ErrorResponse "Unknown code - CURRENCY_001"
// @Failure 422 {object} errors.ErrorResponse "Persistence failure - CURRENCY_002"
// @Router /currencies/active [put]
func (h *CurrencyHandler) Select(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.SelectCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	active, err := h.currencyService.SelectCurrency(userID, req.Code)
	if err != nil {
		return SendError(c, apperrors.CurrencySaveFailed)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    active,
		Message: "Currency selected successfully",
	})
}
