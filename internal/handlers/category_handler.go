package handlers

import (
	"errors"
	"net/http"

	"payme/internal/dto"
	apperrors "payme/internal/errors"
	"payme/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles budget category endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create adds a budget category
// @Summary Create a category
// @Description Create a budget category; every open month immediately gains a budget line at the category's default amount
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} SuccessResponse{data=models.BudgetCategory} "Category created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 422 {object} errors.ErrorResponse "Label already exists - CATEGORY_002"
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			return SendError(c, apperrors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    category,
		Message: "Category created successfully",
	})
}

// List returns the user's categories ordered by label
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.BudgetCategory} "Categories"
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	categories, err := h.categoryService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: categories})
}

// Update changes a category's label or default amount
// @Summary Update a category
// @Description Change the label or default amount; existing monthly allocations are left untouched
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=models.BudgetCategory} "Updated category"
// @Failure 404 {object} errors.ErrorResponse "Category not found - CATEGORY_001"
// @Failure 422 {object} errors.ErrorResponse "Label already exists - CATEGORY_002"
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(userID, categoryID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return SendError(c, apperrors.CategoryNotFound)
		}
		if errors.Is(err, services.ErrCategoryExists) {
			return SendError(c, apperrors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: category})
}

// Delete removes a category
// @Summary Delete a category
// @Description Delete a category and its monthly allocations. Categories with recorded spending cannot be deleted.
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse{message=string} "Category deleted"
// @Failure 404 {object} errors.ErrorResponse "Category not found - CATEGORY_001"
// @Failure 422 {object} errors.ErrorResponse "Category in use - CATEGORY_003"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.Delete(userID, categoryID); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return SendError(c, apperrors.CategoryNotFound)
		}
		if errors.Is(err, services.ErrCategoryInUse) {
			return SendError(c, apperrors.CategoryInUse)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category deleted successfully"})
}
