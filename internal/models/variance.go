package models

import "github.com/shopspring/decimal"

// BudgetRecord is the analyzer's input: one (allocated, spent) pair per
// category for a month. Labels are display keys only; duplicates are
// legal input and flow through unmerged.
type BudgetRecord struct {
	CategoryLabel   string          `json:"category_label"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
}

// VarianceItem is one classified category in a variance report.
// Variance is spent minus allocated; IsUnplanned holds exactly when the
// category had no allocation but recorded spend.
type VarianceItem struct {
	Label       string          `json:"label"`
	Allocated   decimal.Decimal `json:"allocated"`
	Spent       decimal.Decimal `json:"spent"`
	Variance    decimal.Decimal `json:"variance"`
	IsUnplanned bool            `json:"is_unplanned"`
}

// VarianceReport partitions a month's categories into over-budget,
// unplanned, and under-budget buckets, with aggregate deviations from
// plan. Categories with zero allocation and zero spend appear in no
// bucket and contribute to no sum.
type VarianceReport struct {
	OverBudget  []VarianceItem `json:"over_budget"`
	Unplanned   []VarianceItem `json:"unplanned"`
	UnderBudget []VarianceItem `json:"under_budget"`

	TotalOverspend  decimal.Decimal `json:"total_overspend"`
	TotalUnplanned  decimal.Decimal `json:"total_unplanned"`
	TotalSaved      decimal.Decimal `json:"total_saved"`
	NetVariance     decimal.Decimal `json:"net_variance"`
	IncomeShortfall decimal.Decimal `json:"income_shortfall"`
	IsOnTrack       bool            `json:"is_on_track"`
}
