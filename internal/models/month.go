package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMonthClosed       = errors.New("month is closed")
	ErrInvalidMonthValue = errors.New("month must be between 1 and 12")
)

// Month is one budgeting period. A user has at most one row per
// (year, month); closing it freezes all writes against it.
type Month struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_months_user_period,priority:1" json:"user_id"`
	Year      int        `gorm:"not null;uniqueIndex:idx_months_user_period,priority:2" json:"year"`
	Month     int        `gorm:"not null;uniqueIndex:idx_months_user_period,priority:3" json:"month"`
	IsClosed  bool       `gorm:"not null;default:false" json:"is_closed"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	Budgets       []MonthlyBudget `gorm:"foreignKey:MonthID" json:"-"`
	IncomeEntries []IncomeEntry   `gorm:"foreignKey:MonthID" json:"-"`
	Items         []Item          `gorm:"foreignKey:MonthID" json:"-"`
}

func (m *Month) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	return m.Validate()
}

func (m *Month) Validate() error {
	if m.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if m.Month < 1 || m.Month > 12 {
		return ErrInvalidMonthValue
	}

	if m.Year < 1970 {
		return errors.New("year is out of range")
	}

	return nil
}

// Close marks the month as closed and stamps the closing time.
func (m *Month) Close() {
	now := time.Now()
	m.IsClosed = true
	m.ClosedAt = &now
}

func (m *Month) TableName() string {
	return "months"
}
