package handlers

import (
	"net/http"

	apperrors "payme/internal/errors"
	"payme/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{demoDataService: demoDataService}
}

// SeedDemoData populates the authenticated user's account with
// realistic budgeting data
//
// Method: POST /api/v1/dev/seed-demo-data
// Authentication: Required
// Environment: Development only
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	if err := h.demoDataService.SeedDemoData(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Demo data seeded successfully",
	})
}
