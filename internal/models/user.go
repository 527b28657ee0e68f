package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// User is the account owner. Savings balances live on the user record
// rather than any month, matching the profile-level wealth endpoints.
type User struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Username          string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"username"`
	PasswordHash      string          `gorm:"type:varchar(255);not null" json:"-"`
	Savings           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"savings"`
	RetirementSavings decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"retirement_savings"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	Months         []Month          `gorm:"foreignKey:UserID" json:"-"`
	Categories     []BudgetCategory `gorm:"foreignKey:UserID" json:"-"`
	FixedExpenses  []FixedExpense   `gorm:"foreignKey:UserID" json:"-"`
	Preference     *Preference      `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Skip validation for map-based updates (Updates with map); the User
	// struct is empty then and only specific columns are being written.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}

	if len(u.Username) < MinUsernameLength || len(u.Username) > MaxUsernameLength {
		return fmt.Errorf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
	}

	if !usernameRegex.MatchString(u.Username) {
		return errors.New("username contains invalid characters")
	}

	return nil
}

func (u *User) TableName() string {
	return "users"
}
