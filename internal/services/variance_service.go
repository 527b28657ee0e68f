package services

import (
	"log/slog"
	"sort"

	"payme/internal/models"

	"github.com/shopspring/decimal"
)

type varianceService struct{}

func NewVarianceService() VarianceServiceInterface {
	return &varianceService{}
}

// Analyze partitions the month's budget records into over-budget,
// unplanned and under-budget buckets and derives the aggregate totals.
// It accepts any numeric input, including negative amounts and duplicate
// labels, and always produces an arithmetically consistent report.
func (s *varianceService) Analyze(records []models.BudgetRecord, totalIncome, totalFixed, totalBudgeted decimal.Decimal) *models.VarianceReport {
	report := &models.VarianceReport{
		OverBudget:      []models.VarianceItem{},
		Unplanned:       []models.VarianceItem{},
		UnderBudget:     []models.VarianceItem{},
		TotalOverspend:  decimal.Zero,
		TotalUnplanned:  decimal.Zero,
		TotalSaved:      decimal.Zero,
		NetVariance:     decimal.Zero,
		IncomeShortfall: decimal.Zero,
	}

	for _, record := range records {
		item := models.VarianceItem{
			Label:       record.CategoryLabel,
			Allocated:   record.AllocatedAmount,
			Spent:       record.SpentAmount,
			Variance:    record.SpentAmount.Sub(record.AllocatedAmount),
			IsUnplanned: record.AllocatedAmount.IsZero() && record.SpentAmount.IsPositive(),
		}

		// Unplanned wins over the raw variance sign: spend against a
		// category that had no allocation at all is a different signal
		// from overrunning an existing budget.
		switch {
		case item.IsUnplanned:
			report.Unplanned = append(report.Unplanned, item)
			report.TotalUnplanned = report.TotalUnplanned.Add(item.Spent)
		case item.Variance.IsPositive():
			report.OverBudget = append(report.OverBudget, item)
			report.TotalOverspend = report.TotalOverspend.Add(item.Variance)
		case item.Variance.IsNegative():
			report.UnderBudget = append(report.UnderBudget, item)
			report.TotalSaved = report.TotalSaved.Add(item.Variance.Abs())
		}
		// Exactly on budget contributes nothing and is listed nowhere.
	}

	// Biggest problems and biggest wins first. Stable so ties keep the
	// caller's record order.
	sort.SliceStable(report.OverBudget, func(i, j int) bool {
		return report.OverBudget[i].Variance.GreaterThan(report.OverBudget[j].Variance)
	})
	sort.SliceStable(report.Unplanned, func(i, j int) bool {
		return report.Unplanned[i].Spent.GreaterThan(report.Unplanned[j].Spent)
	})
	sort.SliceStable(report.UnderBudget, func(i, j int) bool {
		return report.UnderBudget[i].Variance.LessThan(report.UnderBudget[j].Variance)
	})

	report.NetVariance = report.TotalOverspend.Add(report.TotalUnplanned).Sub(report.TotalSaved)

	shortfall := totalFixed.Add(totalBudgeted).Sub(totalIncome)
	if shortfall.IsPositive() {
		report.IncomeShortfall = shortfall
	}

	report.IsOnTrack = !report.NetVariance.IsPositive() && report.IncomeShortfall.IsZero()

	slog.Info("variance report generated",
		"records", len(records),
		"over_budget", len(report.OverBudget),
		"unplanned", len(report.Unplanned),
		"under_budget", len(report.UnderBudget),
		"net_variance", report.NetVariance.String(),
		"on_track", report.IsOnTrack)

	return report
}

// ProjectedSavings is the single source of truth for the projected
// month-end savings figure: current savings plus whatever of the month's
// income is still unspent.
func (s *varianceService) ProjectedSavings(currentSavings, remaining decimal.Decimal) decimal.Decimal {
	return currentSavings.Add(remaining)
}
