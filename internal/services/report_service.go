package services

import (
	"context"
	"fmt"
	"time"

	"spendtrack/internal/core"
)

// ReportStore is the storage surface the report service needs.
type ReportStore interface {
	QueryExpenses(ctx context.Context, from, to core.Date) ([]core.Expense, error)
	GetBudget(ctx context.Context, period core.Period) (core.Budget, bool, error)
	SetBudget(ctx context.Context, period core.Period, amount core.Money) error
}

// ReportService assembles monthly and ad-hoc date-range reports from a
// single storage snapshot, so the numbers in one report are mutually
// consistent even while writes continue.
type ReportService struct {
	store ReportStore
	now   func() time.Time
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// MonthlyReport reads the period's expenses and budget once, then builds
// the full report against that snapshot.
func (s *ReportService) MonthlyReport(ctx context.Context, period core.Period) (core.Report, error) {
	if err := period.Validate(); err != nil {
		return core.Report{}, err
	}

	expenses, err := s.store.QueryExpenses(ctx, period.Start(), period.End())
	if err != nil {
		return core.Report{}, fmt.Errorf("query expenses: %w", err)
	}

	var budget *core.Budget
	b, found, err := s.store.GetBudget(ctx, period)
	if err != nil {
		return core.Report{}, fmt.Errorf("get budget: %w", err)
	}
	if found {
		budget = &b
	}

	return core.BuildReport(period, expenses, budget, s.now())
}

// RangeBreakdown returns the total and per-category totals for an
// arbitrary inclusive date range.
func (s *ReportService) RangeBreakdown(ctx context.Context, from, to core.Date) (core.Money, map[string]core.Money, error) {
	if to.Before(from.Time) {
		return core.Money{}, nil, fmt.Errorf("range end %s before start %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	expenses, err := s.store.QueryExpenses(ctx, from, to)
	if err != nil {
		return core.Money{}, nil, fmt.Errorf("query expenses: %w", err)
	}

	total := core.Money{}
	byCategory := make(map[string]core.Money)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}
	return total, byCategory, nil
}

// SetBudget validates and stores the budget for a month. Re-setting an
// existing month overwrites it.
func (s *ReportService) SetBudget(ctx context.Context, period core.Period, amount core.Money) error {
	if err := period.Validate(); err != nil {
		return err
	}
	if err := (core.Budget{Amount: amount}).Validate(); err != nil {
		return err
	}
	return s.store.SetBudget(ctx, period, amount)
}

// GetBudget returns the budget for a month, reporting whether one is set.
func (s *ReportService) GetBudget(ctx context.Context, period core.Period) (core.Budget, bool, error) {
	if err := period.Validate(); err != nil {
		return core.Budget{}, false, err
	}
	return s.store.GetBudget(ctx, period)
}
