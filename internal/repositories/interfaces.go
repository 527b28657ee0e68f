package repositories

import (
	"payme/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateSavings(userID uuid.UUID, savings decimal.Decimal) error
	UpdateRetirementSavings(userID uuid.UUID, retirementSavings decimal.Decimal) error
	Delete(userID uuid.UUID) error
}

// MonthRepositoryInterface defines the contract for month repository operations
type MonthRepositoryInterface interface {
	Create(month *models.Month) error
	GetByID(id uuid.UUID) (*models.Month, error)
	GetByUserAndPeriod(userID uuid.UUID, year, monthNumber int) (*models.Month, error)
	GetAllByUserID(userID uuid.UUID) ([]models.Month, error)
	GetOpenByUserID(userID uuid.UUID) ([]models.Month, error)
	Update(month *models.Month) error
}

// CategoryRepositoryInterface defines the contract for budget category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.BudgetCategory) error
	GetByID(id uuid.UUID) (*models.BudgetCategory, error)
	GetAllByUserID(userID uuid.UUID) ([]models.BudgetCategory, error)
	ExistsByLabel(userID uuid.UUID, label string) (bool, error)
	Update(category *models.BudgetCategory) error
	Delete(id uuid.UUID) error
	CountItemsByCategoryID(categoryID uuid.UUID) (int64, error)
}

// MonthlyBudgetRepositoryInterface defines the contract for monthly budget repository operations
type MonthlyBudgetRepositoryInterface interface {
	Create(budget *models.MonthlyBudget) error
	CreateBatch(budgets []models.MonthlyBudget) error
	GetByID(id uuid.UUID) (*models.MonthlyBudget, error)
	GetByMonthAndCategory(monthID, categoryID uuid.UUID) (*models.MonthlyBudget, error)
	GetLinesByMonthID(monthID uuid.UUID) ([]models.BudgetLine, error)
	UpdateAllocatedAmount(id uuid.UUID, amount decimal.Decimal) error
	Delete(id uuid.UUID) error
	SumAllocatedByMonthID(monthID uuid.UUID) (decimal.Decimal, error)
}

// IncomeRepositoryInterface defines the contract for income entry repository operations
type IncomeRepositoryInterface interface {
	Create(entry *models.IncomeEntry) error
	GetByID(id uuid.UUID) (*models.IncomeEntry, error)
	GetByMonthID(monthID uuid.UUID) ([]models.IncomeEntry, error)
	Update(entry *models.IncomeEntry) error
	Delete(id uuid.UUID) error
	SumByMonthID(monthID uuid.UUID) (decimal.Decimal, error)
}

// FixedExpenseRepositoryInterface defines the contract for fixed expense repository operations
type FixedExpenseRepositoryInterface interface {
	Create(expense *models.FixedExpense) error
	GetByID(id uuid.UUID) (*models.FixedExpense, error)
	GetByUserID(userID uuid.UUID) ([]models.FixedExpense, error)
	Update(expense *models.FixedExpense) error
	Delete(id uuid.UUID) error
	SumByUserID(userID uuid.UUID) (decimal.Decimal, error)
}

// ItemRepositoryInterface defines the contract for spending item repository operations
type ItemRepositoryInterface interface {
	Create(item *models.Item) error
	GetByID(id uuid.UUID) (*models.Item, error)
	GetByMonthID(monthID uuid.UUID) ([]models.ItemWithCategory, error)
	Update(item *models.Item) error
	Delete(id uuid.UUID) error
	SumByMonthID(monthID uuid.UUID) (decimal.Decimal, error)
}

// PreferenceRepositoryInterface defines the contract for user preference repository operations
type PreferenceRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.Preference, error)
	UpsertCurrencyCode(userID uuid.UUID, code string) error
}
