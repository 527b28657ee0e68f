package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MaxCategoryLabelLength = 100

// BudgetCategory is a per-user category template. Its default amount is
// copied into the monthly allocation whenever a new month is opened.
type BudgetCategory struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Label         string          `gorm:"type:varchar(100);not null" json:"label"`
	DefaultAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"default_amount"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (bc *BudgetCategory) BeforeCreate(tx *gorm.DB) error {
	if bc.ID == uuid.Nil {
		bc.ID = uuid.New()
	}

	now := time.Now()
	if bc.CreatedAt.IsZero() {
		bc.CreatedAt = now
	}
	if bc.UpdatedAt.IsZero() {
		bc.UpdatedAt = now
	}

	return bc.Validate()
}

func (bc *BudgetCategory) Validate() error {
	if bc.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if bc.Label == "" {
		return errors.New("category label is required")
	}

	if len(bc.Label) > MaxCategoryLabelLength {
		return errors.New("category label too long")
	}

	return nil
}

func (bc *BudgetCategory) TableName() string {
	return "budget_categories"
}
