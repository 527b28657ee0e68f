package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FixedExpense is a recurring cost (rent, internet) attached to the user
// rather than to any single month.
type FixedExpense struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Label     string          `gorm:"type:varchar(100);not null" json:"label"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (fe *FixedExpense) BeforeCreate(tx *gorm.DB) error {
	if fe.ID == uuid.Nil {
		fe.ID = uuid.New()
	}

	now := time.Now()
	if fe.CreatedAt.IsZero() {
		fe.CreatedAt = now
	}
	if fe.UpdatedAt.IsZero() {
		fe.UpdatedAt = now
	}

	return fe.Validate()
}

func (fe *FixedExpense) Validate() error {
	if fe.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if fe.Label == "" {
		return errors.New("expense label is required")
	}

	return nil
}

func (fe *FixedExpense) TableName() string {
	return "fixed_expenses"
}
