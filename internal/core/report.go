package core

import (
	"sort"
	"time"
)

// Report is the assembled monthly picture: aggregation plus budget status.
// It is derived on demand and never persisted.
type Report struct {
	Period  Period
	Summary Summary
	Budget  *BudgetStatus // nil when no budget is configured for the period
}

// BuildReport filters expenses to the period, aggregates them and evaluates
// the budget when one is present.
//
// The expense slice may span any range; filtering happens here. budget is nil
// when the store has no budget for the period. now pins the single wall-clock
// sample used for the elapsed-day rule, so identical inputs always produce an
// identical Report.
func BuildReport(period Period, expenses []Expense, budget *Budget, now time.Time) (Report, error) {
	inPeriod := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if period.Contains(e.Date) {
			inPeriod = append(inPeriod, e)
		}
	}
	// The store guarantees no ordering; peak tie-breaking needs date then
	// creation order.
	sort.SliceStable(inPeriod, func(i, j int) bool {
		if !inPeriod[i].Date.Equal(inPeriod[j].Date.Time) {
			return inPeriod[i].Date.Before(inPeriod[j].Date.Time)
		}
		return inPeriod[i].ID < inPeriod[j].ID
	})

	summary, err := Aggregate(inPeriod, period, now)
	if err != nil {
		return Report{}, err
	}

	report := Report{Period: period, Summary: summary}
	if budget != nil {
		status := EvaluateBudget(summary.Total, *budget)
		report.Budget = &status
	}
	return report, nil
}

// CategoriesByAmount returns the report's categories sorted by descending
// total, name ascending on equal totals. Consumers must not rely on map
// iteration order for display.
func (r Report) CategoriesByAmount() []CategoryAmount {
	out := make([]CategoryAmount, 0, len(r.Summary.ByCategory))
	for name, amount := range r.Summary.ByCategory {
		out = append(out, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}
