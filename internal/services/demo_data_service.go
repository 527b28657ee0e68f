package services

import (
	"fmt"
	"log/slog"
	"time"

	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// categoryTemplate is one entry in the demo category pool. Amounts are
// the centers around which allocations are jittered.
type categoryTemplate struct {
	label         string
	defaultAmount float64
}

var demoCategoryPool = []categoryTemplate{
	{"Groceries", 450},
	{"Dining Out", 200},
	{"Transport", 120},
	{"Entertainment", 80},
	{"Shopping", 150},
	{"Health", 60},
	{"Subscriptions", 45},
	{"Gifts", 50},
	{"Home", 100},
	{"Travel", 250},
}

var demoFixedExpensePool = []categoryTemplate{
	{"Rent", 1400},
	{"Electricity", 90},
	{"Internet", 55},
	{"Phone", 40},
	{"Insurance", 120},
}

// DemoDataService seeds realistic budgeting data for demo accounts
type DemoDataService struct {
	monthService MonthServiceInterface
	categoryRepo repositories.CategoryRepositoryInterface
	incomeRepo   repositories.IncomeRepositoryInterface
	fixedRepo    repositories.FixedExpenseRepositoryInterface
	itemRepo     repositories.ItemRepositoryInterface
	faker        *gofakeit.Faker
}

// NewDemoDataService creates a new demo data service
func NewDemoDataService(
	monthService MonthServiceInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	fixedRepo repositories.FixedExpenseRepositoryInterface,
	itemRepo repositories.ItemRepositoryInterface,
) DemoDataServiceInterface {
	return &DemoDataService{
		monthService: monthService,
		categoryRepo: categoryRepo,
		incomeRepo:   incomeRepo,
		fixedRepo:    fixedRepo,
		itemRepo:     itemRepo,
		faker:        gofakeit.New(0),
	}
}

// SeedDemoData populates a user with categories, fixed expenses, a
// current month, income and a spread of spending items.
func (ds *DemoDataService) SeedDemoData(userID uuid.UUID) error {
	categories := ds.GenerateCategories(userID, 6)
	categoryIDs := make([]uuid.UUID, 0, len(categories))
	for _, category := range categories {
		if err := ds.categoryRepo.Create(category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Label, err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	for _, tmpl := range demoFixedExpensePool {
		expense := &models.FixedExpense{
			UserID: userID,
			Label:  tmpl.label,
			Amount: decimal.NewFromFloat(tmpl.defaultAmount),
		}
		if err := ds.fixedRepo.Create(expense); err != nil {
			return fmt.Errorf("failed to seed fixed expense %q: %w", expense.Label, err)
		}
	}

	// Month creation copies the just-seeded category defaults into its
	// budget lines
	month, err := ds.monthService.GetOrCreateCurrent(userID)
	if err != nil {
		return fmt.Errorf("failed to open demo month: %w", err)
	}

	for _, entry := range ds.GenerateIncomeEntries(month.ID, 2) {
		if err := ds.incomeRepo.Create(entry); err != nil {
			return fmt.Errorf("failed to seed income entry: %w", err)
		}
	}

	for _, item := range ds.GenerateItems(month.ID, categoryIDs, 25) {
		if err := ds.itemRepo.Create(item); err != nil {
			return fmt.Errorf("failed to seed item: %w", err)
		}
	}

	slog.Info("demo data seeded",
		"user_id", userID,
		"categories", len(categoryIDs))

	return nil
}

// GenerateCategories picks count templates from the pool and jitters
// their default amounts
func (ds *DemoDataService) GenerateCategories(userID uuid.UUID, count int) []*models.BudgetCategory {
	if count > len(demoCategoryPool) {
		count = len(demoCategoryPool)
	}

	categories := make([]*models.BudgetCategory, 0, count)
	for _, tmpl := range demoCategoryPool[:count] {
		categories = append(categories, &models.BudgetCategory{
			UserID:        userID,
			Label:         tmpl.label,
			DefaultAmount: ds.jitteredAmount(tmpl.defaultAmount),
		})
	}
	return categories
}

// GenerateIncomeEntries produces count paychecks for the month
func (ds *DemoDataService) GenerateIncomeEntries(monthID uuid.UUID, count int) []*models.IncomeEntry {
	entries := make([]*models.IncomeEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, &models.IncomeEntry{
			MonthID: monthID,
			Label:   fmt.Sprintf("%s Salary", ds.faker.Company()),
			Amount:  decimal.NewFromFloat(ds.faker.Float64Range(1200, 3500)).Round(2),
		})
	}
	return entries
}

// GenerateItems produces count spends scattered across the categories
// and the current calendar month
func (ds *DemoDataService) GenerateItems(monthID uuid.UUID, categoryIDs []uuid.UUID, count int) []*models.Item {
	if len(categoryIDs) == 0 {
		return nil
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	items := make([]*models.Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, &models.Item{
			MonthID:     monthID,
			CategoryID:  categoryIDs[ds.faker.IntRange(0, len(categoryIDs)-1)],
			Description: ds.faker.ProductName(),
			Amount:      decimal.NewFromFloat(ds.faker.Float64Range(2, 180)).Round(2),
			SpentOn:     monthStart.AddDate(0, 0, ds.faker.IntRange(0, now.Day()-1)),
		})
	}
	return items
}

func (ds *DemoDataService) jitteredAmount(center float64) decimal.Decimal {
	low, high := center*0.8, center*1.2
	return decimal.NewFromFloat(ds.faker.Float64Range(low, high)).Round(0)
}
