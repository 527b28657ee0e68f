package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MaxItemDescriptionLength = 200

// Item is one recorded spend against a budget category within a month.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	MonthID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"month_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Description string          `gorm:"type:varchar(200);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	SpentOn     time.Time       `gorm:"type:date;not null;index" json:"spent_on"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category BudgetCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *Item) Validate() error {
	if i.MonthID == uuid.Nil {
		return errors.New("month ID is required")
	}

	if i.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if i.Description == "" {
		return errors.New("item description is required")
	}

	if len(i.Description) > MaxItemDescriptionLength {
		return errors.New("item description too long")
	}

	if i.SpentOn.IsZero() {
		return errors.New("spent date is required")
	}

	return nil
}

func (i *Item) TableName() string {
	return "items"
}

// ItemWithCategory is an item joined with its category label for display.
type ItemWithCategory struct {
	ID            uuid.UUID       `json:"id"`
	MonthID       uuid.UUID       `json:"month_id"`
	CategoryID    uuid.UUID       `json:"category_id"`
	CategoryLabel string          `json:"category_label"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	SpentOn       time.Time       `json:"spent_on"`
}
