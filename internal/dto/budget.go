package dto

import (
	"github.com/shopspring/decimal"
)

// Category Request DTOs

// CreateCategoryRequest contains data for a new budget category
type CreateCategoryRequest struct {
	Label         string          `json:"label" validate:"required,min=1,max=100"`
	DefaultAmount decimal.Decimal `json:"defaultAmount"`
}

// UpdateCategoryRequest updates a budget category's template
type UpdateCategoryRequest struct {
	Label         string           `json:"label" validate:"omitempty,min=1,max=100"`
	DefaultAmount *decimal.Decimal `json:"defaultAmount"`
}

// Monthly Budget Request DTOs

// CreateBudgetRequest adds a category allocation to a month
type CreateBudgetRequest struct {
	CategoryID      string          `json:"categoryId" validate:"required,uuid"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}

// UpdateBudgetRequest changes the allocation of a monthly budget
type UpdateBudgetRequest struct {
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}
