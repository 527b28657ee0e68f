package models

import "github.com/shopspring/decimal"

// MonthSummary is the full financial picture of one month: the raw
// entries plus the derived totals. It is assembled per request and never
// persisted.
//
// Remaining is income minus fixed costs minus itemized spend; budgeted
// allocations are a plan, not money already gone, so they do not reduce it.
type MonthSummary struct {
	Month         Month              `json:"month"`
	IncomeEntries []IncomeEntry      `json:"income_entries"`
	FixedExpenses []FixedExpense     `json:"fixed_expenses"`
	Budgets       []BudgetLine       `json:"budgets"`
	Items         []ItemWithCategory `json:"items"`

	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalFixed    decimal.Decimal `json:"total_fixed"`
	TotalBudgeted decimal.Decimal `json:"total_budgeted"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	Remaining     decimal.Decimal `json:"remaining"`
}

// BudgetRecords projects the summary's budget lines into the analyzer's
// input shape.
func (ms *MonthSummary) BudgetRecords() []BudgetRecord {
	records := make([]BudgetRecord, 0, len(ms.Budgets))
	for _, line := range ms.Budgets {
		records = append(records, BudgetRecord{
			CategoryLabel:   line.CategoryLabel,
			AllocatedAmount: line.AllocatedAmount,
			SpentAmount:     line.SpentAmount,
		})
	}
	return records
}
