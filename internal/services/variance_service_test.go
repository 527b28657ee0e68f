package services

import (
	"testing"

	"payme/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type VarianceServiceTestSuite struct {
	suite.Suite
	service *varianceService
}

func TestVarianceServiceSuite(t *testing.T) {
	suite.Run(t, new(VarianceServiceTestSuite))
}

func (s *VarianceServiceTestSuite) SetupTest() {
	s.service = NewVarianceService().(*varianceService)
}

func record(label string, allocated, spent float64) models.BudgetRecord {
	return models.BudgetRecord{
		CategoryLabel:   label,
		AllocatedAmount: decimal.NewFromFloat(allocated),
		SpentAmount:     decimal.NewFromFloat(spent),
	}
}

func (s *VarianceServiceTestSuite) analyze(records []models.BudgetRecord, income, fixed, budgeted float64) *models.VarianceReport {
	return s.service.Analyze(records,
		decimal.NewFromFloat(income),
		decimal.NewFromFloat(fixed),
		decimal.NewFromFloat(budgeted))
}

// Partitioning

func (s *VarianceServiceTestSuite) TestAnalyze_EmptyInput() {
	report := s.analyze(nil, 0, 0, 0)

	s.Empty(report.OverBudget)
	s.Empty(report.Unplanned)
	s.Empty(report.UnderBudget)
	s.True(report.NetVariance.IsZero())
	s.True(report.IsOnTrack)
}

func (s *VarianceServiceTestSuite) TestAnalyze_PartitionIsMutuallyExclusive() {
	records := []models.BudgetRecord{
		record("Groceries", 100, 120), // over
		record("Gifts", 0, 40),        // unplanned
		record("Transport", 80, 50),   // under
		record("Rent", 500, 500),      // exactly on budget
	}

	report := s.analyze(records, 1000, 0, 680)

	s.Len(report.OverBudget, 1)
	s.Len(report.Unplanned, 1)
	s.Len(report.UnderBudget, 1)
	s.Equal("Groceries", report.OverBudget[0].Label)
	s.Equal("Gifts", report.Unplanned[0].Label)
	s.Equal("Transport", report.UnderBudget[0].Label)
}

func (s *VarianceServiceTestSuite) TestAnalyze_ExactlyOnBudgetIsDropped() {
	report := s.analyze([]models.BudgetRecord{record("Rent", 500, 500)}, 1000, 0, 500)

	s.Empty(report.OverBudget)
	s.Empty(report.Unplanned)
	s.Empty(report.UnderBudget)
}

func (s *VarianceServiceTestSuite) TestAnalyze_UnplannedWinsOverPositiveVariance() {
	report := s.analyze([]models.BudgetRecord{record("Gifts", 0, 5)}, 0, 0, 0)

	s.Empty(report.OverBudget, "positive variance alone must not claim an unplanned record")
	s.Len(report.Unplanned, 1)
	s.True(report.Unplanned[0].IsUnplanned)
	s.True(report.TotalOverspend.IsZero())
	s.Equal("5", report.TotalUnplanned.String())
}

func (s *VarianceServiceTestSuite) TestAnalyze_ZeroAllocatedZeroSpentIsDropped() {
	report := s.analyze([]models.BudgetRecord{record("Dormant", 0, 0)}, 0, 0, 0)

	s.Empty(report.OverBudget)
	s.Empty(report.Unplanned)
	s.Empty(report.UnderBudget)
}

// Sorting

func (s *VarianceServiceTestSuite) TestAnalyze_OverBudgetSortedByLargestOverrunFirst() {
	records := []models.BudgetRecord{
		record("Dining", 100, 110),
		record("Groceries", 100, 180),
		record("Transport", 50, 75),
	}

	report := s.analyze(records, 0, 0, 0)

	s.Require().Len(report.OverBudget, 3)
	s.Equal("Groceries", report.OverBudget[0].Label)
	s.Equal("Transport", report.OverBudget[1].Label)
	s.Equal("Dining", report.OverBudget[2].Label)
}

func (s *VarianceServiceTestSuite) TestAnalyze_UnplannedSortedByLargestSpendFirst() {
	records := []models.BudgetRecord{
		record("Gifts", 0, 20),
		record("Repairs", 0, 90),
		record("Fees", 0, 5),
	}

	report := s.analyze(records, 0, 0, 0)

	s.Require().Len(report.Unplanned, 3)
	s.Equal("Repairs", report.Unplanned[0].Label)
	s.Equal("Gifts", report.Unplanned[1].Label)
	s.Equal("Fees", report.Unplanned[2].Label)
}

func (s *VarianceServiceTestSuite) TestAnalyze_UnderBudgetSortedByLargestSavingFirst() {
	records := []models.BudgetRecord{
		record("Dining", 100, 90),
		record("Groceries", 200, 120),
		record("Transport", 60, 55),
	}

	report := s.analyze(records, 0, 0, 0)

	s.Require().Len(report.UnderBudget, 3)
	s.Equal("Groceries", report.UnderBudget[0].Label)
	s.Equal("Dining", report.UnderBudget[1].Label)
	s.Equal("Transport", report.UnderBudget[2].Label)
}

func (s *VarianceServiceTestSuite) TestAnalyze_TiesPreserveInputOrder() {
	records := []models.BudgetRecord{
		record("First", 100, 150),
		record("Second", 200, 250),
		record("Third", 50, 100),
	}

	report := s.analyze(records, 0, 0, 0)

	s.Require().Len(report.OverBudget, 3)
	s.Equal("First", report.OverBudget[0].Label)
	s.Equal("Second", report.OverBudget[1].Label)
	s.Equal("Third", report.OverBudget[2].Label)
}

func (s *VarianceServiceTestSuite) TestAnalyze_DuplicateLabelsArePreservedNotMerged() {
	records := []models.BudgetRecord{
		record("Groceries", 100, 130),
		record("Groceries", 50, 70),
	}

	report := s.analyze(records, 0, 0, 0)

	s.Require().Len(report.OverBudget, 2)
	s.Equal("Groceries", report.OverBudget[0].Label)
	s.Equal("Groceries", report.OverBudget[1].Label)
	s.Equal("50", report.TotalOverspend.String())
}

// Aggregates

func (s *VarianceServiceTestSuite) TestAnalyze_AggregateIdentity() {
	records := []models.BudgetRecord{
		record("A", 100, 180),
		record("B", 0, 35),
		record("C", 200, 120),
		record("D", 50, 50),
	}

	report := s.analyze(records, 1000, 100, 350)

	s.Equal("80", report.TotalOverspend.String())
	s.Equal("35", report.TotalUnplanned.String())
	s.Equal("80", report.TotalSaved.String())
	s.True(report.NetVariance.Equal(
		report.TotalOverspend.Add(report.TotalUnplanned).Sub(report.TotalSaved)))
	s.Equal("35", report.NetVariance.String())
}

func (s *VarianceServiceTestSuite) TestAnalyze_OnTrackMonth() {
	records := []models.BudgetRecord{
		record("A", 100, 80),
		record("B", 50, 60),
	}

	report := s.analyze(records, 1000, 200, 150)

	s.Equal("20", report.TotalSaved.String())
	s.Equal("10", report.TotalOverspend.String())
	s.Equal("-10", report.NetVariance.String())
	s.True(report.IncomeShortfall.IsZero())
	s.True(report.IsOnTrack)
}

func (s *VarianceServiceTestSuite) TestAnalyze_IncomeShortfallIgnoresCategoryVariance() {
	records := []models.BudgetRecord{record("A", 50, 10)}

	report := s.analyze(records, 100, 80, 50)

	s.Equal("30", report.IncomeShortfall.String())
	s.False(report.IsOnTrack, "a month that cannot cover fixed costs is never on track")
}

func (s *VarianceServiceTestSuite) TestAnalyze_NetVarianceZeroIsStillOnTrack() {
	records := []models.BudgetRecord{
		record("A", 100, 120),
		record("B", 100, 80),
	}

	report := s.analyze(records, 1000, 0, 200)

	s.True(report.NetVariance.IsZero())
	s.True(report.IsOnTrack)
}

func (s *VarianceServiceTestSuite) TestAnalyze_UnplannedOnlyScenario() {
	report := s.analyze([]models.BudgetRecord{record("C", 0, 40)}, 0, 0, 0)

	s.Empty(report.OverBudget)
	s.Empty(report.UnderBudget)
	s.Require().Len(report.Unplanned, 1)
	s.Equal("40", report.Unplanned[0].Spent.String())
	s.Equal("40", report.TotalUnplanned.String())
	s.True(report.TotalOverspend.IsZero())
}

// Negative amounts are accepted as-is; the arithmetic stays consistent
// even when the classification looks odd.
func (s *VarianceServiceTestSuite) TestAnalyze_NegativeAmountsStayArithmeticallyConsistent() {
	records := []models.BudgetRecord{
		record("Refund", 100, -20), // variance -120, under budget
		record("Odd", -50, 10),     // variance +60, over budget (allocated non-zero)
	}

	report := s.analyze(records, 0, 0, 0)

	s.Require().Len(report.UnderBudget, 1)
	s.Equal("120", report.TotalSaved.String())
	s.Require().Len(report.OverBudget, 1)
	s.Equal("60", report.TotalOverspend.String())
	s.True(report.NetVariance.Equal(
		report.TotalOverspend.Add(report.TotalUnplanned).Sub(report.TotalSaved)))
}

func (s *VarianceServiceTestSuite) TestProjectedSavings() {
	got := s.service.ProjectedSavings(decimal.NewFromInt(1500), decimal.NewFromFloat(230.5))
	s.Equal("1730.5", got.String())
}

func (s *VarianceServiceTestSuite) TestProjectedSavings_NegativeRemainingReducesProjection() {
	got := s.service.ProjectedSavings(decimal.NewFromInt(1000), decimal.NewFromInt(-250))
	s.Equal("750", got.String())
}
