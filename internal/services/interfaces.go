package services

import (
	"time"

	"payme/internal/dto"
	"payme/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken string) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	GenerateSecurePassword() (string, error)
	UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

// MonthServiceInterface defines month lifecycle and reporting operations
type MonthServiceInterface interface {
	// GetOrCreateCurrent returns the month for the current calendar period,
	// creating it with budget lines seeded from category defaults if needed
	GetOrCreateCurrent(userID uuid.UUID) (*models.Month, error)
	// GetOrCreateForPeriod does the same for an explicit year and month
	GetOrCreateForPeriod(userID uuid.UUID, year, monthNumber int) (*models.Month, error)
	GetByID(userID, monthID uuid.UUID) (*models.Month, error)
	ListByUser(userID uuid.UUID) ([]models.Month, error)
	CloseMonth(userID, monthID uuid.UUID) (*models.Month, error)
	GetSummary(userID, monthID uuid.UUID) (*models.MonthSummary, error)
	GetVarianceReport(userID, monthID uuid.UUID) (*models.VarianceReport, error)
}

// CategoryServiceInterface defines budget category operations
type CategoryServiceInterface interface {
	// Create adds a category and propagates its default allocation into
	// every open month the user has
	Create(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.BudgetCategory, error)
	List(userID uuid.UUID) ([]models.BudgetCategory, error)
	Update(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.BudgetCategory, error)
	Delete(userID, categoryID uuid.UUID) error
}

// BudgetServiceInterface defines per-month allocation operations
type BudgetServiceInterface interface {
	Create(userID, monthID uuid.UUID, req *dto.CreateBudgetRequest) (*models.MonthlyBudget, error)
	ListLines(userID, monthID uuid.UUID) ([]models.BudgetLine, error)
	Update(userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.MonthlyBudget, error)
	Delete(userID, budgetID uuid.UUID) error
}

type IncomeServiceInterface interface {
	Create(userID, monthID uuid.UUID, req *dto.CreateIncomeRequest) (*models.IncomeEntry, error)
	ListByMonth(userID, monthID uuid.UUID) ([]models.IncomeEntry, error)
	Update(userID, entryID uuid.UUID, req *dto.UpdateIncomeRequest) (*models.IncomeEntry, error)
	Delete(userID, entryID uuid.UUID) error
}

type FixedExpenseServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateFixedExpenseRequest) (*models.FixedExpense, error)
	List(userID uuid.UUID) ([]models.FixedExpense, error)
	Update(userID, expenseID uuid.UUID, req *dto.UpdateFixedExpenseRequest) (*models.FixedExpense, error)
	Delete(userID, expenseID uuid.UUID) error
}

type ItemServiceInterface interface {
	Create(userID, monthID uuid.UUID, req *dto.CreateItemRequest) (*models.Item, error)
	ListByMonth(userID, monthID uuid.UUID) ([]models.ItemWithCategory, error)
	Update(userID, itemID uuid.UUID, req *dto.UpdateItemRequest) (*models.Item, error)
	Delete(userID, itemID uuid.UUID) error
}

// SavingsServiceInterface defines savings balances and projections
type SavingsServiceInterface interface {
	UpdateSavings(userID uuid.UUID, amount decimal.Decimal) (*models.User, error)
	UpdateRetirementSavings(userID uuid.UUID, amount decimal.Decimal) (*models.User, error)
	ProjectedSavings(userID, monthID uuid.UUID) (decimal.Decimal, error)
}

// CurrencyServiceInterface defines currency selection and formatting
type CurrencyServiceInterface interface {
	ListCurrencies() []dto.CurrencyResponse
	ActiveCurrency(userID uuid.UUID) (*dto.ActiveCurrencyResponse, error)
	SelectCurrency(userID uuid.UUID, code string) (*dto.ActiveCurrencyResponse, error)
}

// VarianceServiceInterface defines budget variance analysis
type VarianceServiceInterface interface {
	Analyze(records []models.BudgetRecord, totalIncome, totalFixed, totalBudgeted decimal.Decimal) *models.VarianceReport
	ProjectedSavings(currentSavings, remaining decimal.Decimal) decimal.Decimal
}

// DemoDataServiceInterface generates realistic budgeting data for demo accounts
type DemoDataServiceInterface interface {
	SeedDemoData(userID uuid.UUID) error
	GenerateCategories(userID uuid.UUID, count int) []*models.BudgetCategory
	GenerateIncomeEntries(monthID uuid.UUID, count int) []*models.IncomeEntry
	GenerateItems(monthID uuid.UUID, categoryIDs []uuid.UUID, count int) []*models.Item
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
