package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBudget is the allocation of one category for one month.
// Exactly one row exists per (month, category) pair.
type MonthlyBudget struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	MonthID         uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_monthly_budgets_month_category,priority:1" json:"month_id"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_monthly_budgets_month_category,priority:2" json:"category_id"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"allocated_amount"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	Category BudgetCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

func (mb *MonthlyBudget) BeforeCreate(tx *gorm.DB) error {
	if mb.ID == uuid.Nil {
		mb.ID = uuid.New()
	}

	now := time.Now()
	if mb.CreatedAt.IsZero() {
		mb.CreatedAt = now
	}
	if mb.UpdatedAt.IsZero() {
		mb.UpdatedAt = now
	}

	return mb.Validate()
}

func (mb *MonthlyBudget) Validate() error {
	if mb.MonthID == uuid.Nil {
		return errors.New("month ID is required")
	}

	if mb.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	return nil
}

func (mb *MonthlyBudget) TableName() string {
	return "monthly_budgets"
}

// BudgetLine is a monthly budget joined with its category label and the
// spent total derived from the month's items. It is never persisted.
type BudgetLine struct {
	ID              uuid.UUID       `json:"id"`
	MonthID         uuid.UUID       `json:"month_id"`
	CategoryID      uuid.UUID       `json:"category_id"`
	CategoryLabel   string          `json:"category_label"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
}
