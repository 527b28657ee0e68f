package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrMonthNotFound      = errors.New("month not found")
	ErrMonthAlreadyClosed = errors.New("month is already closed")
)

// MonthService manages budgeting periods and assembles per-month reports
type MonthService struct {
	monthRepo       repositories.MonthRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	budgetRepo      repositories.MonthlyBudgetRepositoryInterface
	incomeRepo      repositories.IncomeRepositoryInterface
	fixedRepo       repositories.FixedExpenseRepositoryInterface
	itemRepo        repositories.ItemRepositoryInterface
	varianceService VarianceServiceInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewMonthService creates a new month service
func NewMonthService(
	monthRepo repositories.MonthRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.MonthlyBudgetRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	fixedRepo repositories.FixedExpenseRepositoryInterface,
	itemRepo repositories.ItemRepositoryInterface,
	varianceService VarianceServiceInterface,
	metrics MetricsRecorderInterface,
) MonthServiceInterface {
	return &MonthService{
		monthRepo:       monthRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		incomeRepo:      incomeRepo,
		fixedRepo:       fixedRepo,
		itemRepo:        itemRepo,
		varianceService: varianceService,
		metrics:         metrics,
		now:             time.Now,
	}
}

// GetOrCreateCurrent returns the month matching the current calendar
// period, creating it on first access. A freshly created month gets one
// budget line per category, allocated at the category's default amount.
func (ms *MonthService) GetOrCreateCurrent(userID uuid.UUID) (*models.Month, error) {
	now := ms.now()
	return ms.GetOrCreateForPeriod(userID, now.Year(), int(now.Month()))
}

// GetOrCreateForPeriod returns the month for an explicit year and
// calendar month, creating and seeding it the same way as the current
// period.
func (ms *MonthService) GetOrCreateForPeriod(userID uuid.UUID, year, monthNumber int) (*models.Month, error) {
	if userID == uuid.Nil {
		return nil, errors.New("user ID is required")
	}
	if monthNumber < 1 || monthNumber > 12 {
		return nil, models.ErrInvalidMonthValue
	}

	month, err := ms.monthRepo.GetByUserAndPeriod(userID, year, monthNumber)
	if err == nil {
		return month, nil
	}
	if !errors.Is(err, repositories.ErrMonthNotFound) {
		return nil, fmt.Errorf("failed to look up current month: %w", err)
	}

	month = &models.Month{
		UserID: userID,
		Year:   year,
		Month:  monthNumber,
	}

	if err := ms.monthRepo.Create(month); err != nil {
		if errors.Is(err, repositories.ErrMonthAlreadyExists) {
			// Lost a creation race, the winner's row is the one we want
			return ms.monthRepo.GetByUserAndPeriod(userID, year, monthNumber)
		}
		return nil, fmt.Errorf("failed to create month: %w", err)
	}

	if err := ms.seedBudgetLines(userID, month.ID); err != nil {
		return nil, err
	}

	if ms.metrics != nil {
		ms.metrics.IncrementCounter("month.opened", nil)
	}

	slog.Info("month opened",
		"user_id", userID,
		"year", year,
		"month", monthNumber)

	return month, nil
}

// GetByID returns a month owned by the given user
func (ms *MonthService) GetByID(userID, monthID uuid.UUID) (*models.Month, error) {
	return ms.ownedMonth(userID, monthID)
}

// ListByUser returns all of the user's months, newest first
func (ms *MonthService) ListByUser(userID uuid.UUID) ([]models.Month, error) {
	months, err := ms.monthRepo.GetAllByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list months: %w", err)
	}
	return months, nil
}

// CloseMonth freezes a month against further writes
func (ms *MonthService) CloseMonth(userID, monthID uuid.UUID) (*models.Month, error) {
	month, err := ms.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}

	if month.IsClosed {
		return nil, ErrMonthAlreadyClosed
	}

	month.Close()
	if err := ms.monthRepo.Update(month); err != nil {
		return nil, fmt.Errorf("failed to close month: %w", err)
	}

	if ms.metrics != nil {
		ms.metrics.IncrementCounter("month.closed", nil)
	}

	slog.Info("month closed",
		"user_id", userID,
		"month_id", monthID)

	return month, nil
}

// GetSummary assembles the full financial picture of one month
func (ms *MonthService) GetSummary(userID, monthID uuid.UUID) (*models.MonthSummary, error) {
	start := ms.now()
	defer func() {
		if ms.metrics != nil {
			ms.metrics.RecordProcessingTime("month.summary", time.Since(start))
		}
	}()

	month, err := ms.ownedMonth(userID, monthID)
	if err != nil {
		return nil, err
	}

	incomeEntries, err := ms.incomeRepo.GetByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load income entries: %w", err)
	}

	fixedExpenses, err := ms.fixedRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed expenses: %w", err)
	}

	budgetLines, err := ms.budgetRepo.GetLinesByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget lines: %w", err)
	}

	items, err := ms.itemRepo.GetByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	totalIncome, err := ms.incomeRepo.SumByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	totalFixed, err := ms.fixedRepo.SumByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum fixed expenses: %w", err)
	}

	totalBudgeted, err := ms.budgetRepo.SumAllocatedByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum allocations: %w", err)
	}

	totalSpent, err := ms.itemRepo.SumByMonthID(month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum items: %w", err)
	}

	return &models.MonthSummary{
		Month:         *month,
		IncomeEntries: incomeEntries,
		FixedExpenses: fixedExpenses,
		Budgets:       budgetLines,
		Items:         items,
		TotalIncome:   totalIncome,
		TotalFixed:    totalFixed,
		TotalBudgeted: totalBudgeted,
		TotalSpent:    totalSpent,
		Remaining:     totalIncome.Sub(totalFixed).Sub(totalSpent),
	}, nil
}

// GetVarianceReport runs the variance analysis over one month's budget lines
func (ms *MonthService) GetVarianceReport(userID, monthID uuid.UUID) (*models.VarianceReport, error) {
	summary, err := ms.GetSummary(userID, monthID)
	if err != nil {
		return nil, err
	}

	report := ms.varianceService.Analyze(
		summary.BudgetRecords(),
		summary.TotalIncome,
		summary.TotalFixed,
		summary.TotalBudgeted,
	)

	if ms.metrics != nil {
		ms.metrics.IncrementCounter("variance.analysis", map[string]string{
			"on_track": strconv.FormatBool(report.IsOnTrack),
		})
	}

	return report, nil
}

func (ms *MonthService) seedBudgetLines(userID, monthID uuid.UUID) error {
	categories, err := ms.categoryRepo.GetAllByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	if len(categories) == 0 {
		return nil
	}

	budgets := make([]models.MonthlyBudget, 0, len(categories))
	for _, category := range categories {
		budgets = append(budgets, models.MonthlyBudget{
			MonthID:         monthID,
			CategoryID:      category.ID,
			AllocatedAmount: category.DefaultAmount,
		})
	}

	if err := ms.budgetRepo.CreateBatch(budgets); err != nil {
		return fmt.Errorf("failed to seed budget lines: %w", err)
	}

	return nil
}

// ownedMonth loads a month and verifies ownership. A month belonging to
// another user is reported as not found.
func (ms *MonthService) ownedMonth(userID, monthID uuid.UUID) (*models.Month, error) {
	month, err := ms.monthRepo.GetByID(monthID)
	if err != nil {
		if errors.Is(err, repositories.ErrMonthNotFound) {
			return nil, ErrMonthNotFound
		}
		return nil, fmt.Errorf("failed to load month: %w", err)
	}

	if month.UserID != userID {
		return nil, ErrMonthNotFound
	}

	return month, nil
}
