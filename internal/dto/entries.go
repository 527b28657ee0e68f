package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income Request DTOs

// CreateIncomeRequest records an income source against a month
type CreateIncomeRequest struct {
	Label  string          `json:"label" validate:"required,min=1,max=100"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// UpdateIncomeRequest changes an income entry
type UpdateIncomeRequest struct {
	Label  string           `json:"label" validate:"omitempty,min=1,max=100"`
	Amount *decimal.Decimal `json:"amount"`
}

// Fixed Expense Request DTOs

// CreateFixedExpenseRequest records a recurring cost for the user
type CreateFixedExpenseRequest struct {
	Label  string          `json:"label" validate:"required,min=1,max=100"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// UpdateFixedExpenseRequest changes a fixed expense
type UpdateFixedExpenseRequest struct {
	Label  string           `json:"label" validate:"omitempty,min=1,max=100"`
	Amount *decimal.Decimal `json:"amount"`
}

// Item Request DTOs

// CreateItemRequest records a spend against a category within a month
type CreateItemRequest struct {
	CategoryID  string          `json:"categoryId" validate:"required,uuid"`
	Description string          `json:"description" validate:"required,min=1,max=200"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	SpentOn     time.Time       `json:"spentOn" validate:"required"`
}

// UpdateItemRequest changes a recorded spend
type UpdateItemRequest struct {
	Description string           `json:"description" validate:"omitempty,min=1,max=200"`
	Amount      *decimal.Decimal `json:"amount"`
	SpentOn     *time.Time       `json:"spentOn"`
}

// Savings Request DTOs

// UpdateSavingsRequest sets one of the user's savings balances
type UpdateSavingsRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}
