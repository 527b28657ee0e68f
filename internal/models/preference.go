package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preference is the per-user settings slot. Today it holds only the
// selected currency code; it is read once at login and written on every
// currency selection.
type Preference struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CurrencyCode string    `gorm:"type:varchar(3);not null;default:'USD'" json:"currency_code"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (p *Preference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Preference) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if p.CurrencyCode == "" {
		return errors.New("currency code is required")
	}

	return nil
}

func (p *Preference) TableName() string {
	return "preferences"
}
