package repositories

import (
	"errors"
	"fmt"

	"payme/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPreferenceNotFound = errors.New("preference not found")
)

// PreferenceRepository handles database operations for user preferences
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &PreferenceRepository{
		db: db,
	}
}

// GetByUserID retrieves the preference slot for a user
func (r *PreferenceRepository) GetByUserID(userID uuid.UUID) (*models.Preference, error) {
	var preference models.Preference
	if err := r.db.Where("user_id = ?", userID).First(&preference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	return &preference, nil
}

// UpsertCurrencyCode writes the selected currency code into the user's
// preference slot, creating the slot on first selection
func (r *PreferenceRepository) UpsertCurrencyCode(userID uuid.UUID, code string) error {
	if userID == uuid.Nil {
		return errors.New("user ID cannot be nil")
	}

	preference := &models.Preference{
		UserID:       userID,
		CurrencyCode: code,
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"currency_code", "updated_at"}),
	}).Create(preference).Error; err != nil {
		return fmt.Errorf("failed to upsert currency code: %w", err)
	}

	return nil
}

// UserCurrencyStore adapts the preference repository to the single-slot
// persistence contract the currency formatter expects, bound to one user.
type UserCurrencyStore struct {
	repo   PreferenceRepositoryInterface
	userID uuid.UUID
}

// NewUserCurrencyStore builds a currency store backed by the given
// user's preference slot
func NewUserCurrencyStore(repo PreferenceRepositoryInterface, userID uuid.UUID) *UserCurrencyStore {
	return &UserCurrencyStore{
		repo:   repo,
		userID: userID,
	}
}

// Load reads the persisted currency code. A missing slot reads as an
// empty code rather than an error so the formatter falls back to locale
// detection.
func (s *UserCurrencyStore) Load() (string, error) {
	preference, err := s.repo.GetByUserID(s.userID)
	if err != nil {
		if errors.Is(err, ErrPreferenceNotFound) {
			return "", nil
		}
		return "", err
	}

	return preference.CurrencyCode, nil
}

// Save persists the selected currency code
func (s *UserCurrencyStore) Save(code string) error {
	return s.repo.UpsertCurrencyCode(s.userID, code)
}
