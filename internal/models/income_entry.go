package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeEntry is one income source recorded against a month
// (paycheck, gift, refund).
type IncomeEntry struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	MonthID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"month_id"`
	Label     string          `gorm:"type:varchar(100);not null" json:"label"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (ie *IncomeEntry) BeforeCreate(tx *gorm.DB) error {
	if ie.ID == uuid.Nil {
		ie.ID = uuid.New()
	}

	now := time.Now()
	if ie.CreatedAt.IsZero() {
		ie.CreatedAt = now
	}
	if ie.UpdatedAt.IsZero() {
		ie.UpdatedAt = now
	}

	return ie.Validate()
}

func (ie *IncomeEntry) Validate() error {
	if ie.MonthID == uuid.Nil {
		return errors.New("month ID is required")
	}

	if ie.Label == "" {
		return errors.New("income label is required")
	}

	return nil
}

func (ie *IncomeEntry) TableName() string {
	return "income_entries"
}
