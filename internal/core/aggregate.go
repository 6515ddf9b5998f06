package core

import "time"

// Summary is the pure aggregation of one month's expenses.
type Summary struct {
	Total        Money
	ByCategory   map[string]Money
	DailyAverage float64  // currency units per elapsed day
	Peak         *Expense // nil when the month has no expenses
	ElapsedDays  int
}

// Aggregate computes the summary for expenses already filtered to period.
//
// The elapsed-day count depends on now: for the current month it runs from
// day 1 through today inclusive, for a past month it is the month's full day
// count. A future period is rejected with ErrInvalidPeriod. An empty expense
// slice is a valid zero-valued result, not an error.
//
// Peak is the expense with the largest amount; ties are broken by earliest
// date, then by creation order. Callers pass expenses sorted by date then ID,
// which makes "first wins" the correct tie rule here.
func Aggregate(expenses []Expense, period Period, now time.Time) (Summary, error) {
	if err := period.Validate(); err != nil {
		return Summary{}, err
	}
	current := PeriodOf(now)
	if period.After(current) {
		return Summary{}, ErrInvalidPeriod
	}

	elapsed := period.Days()
	if period == current {
		elapsed = now.Day()
	}

	s := Summary{
		ByCategory:  make(map[string]Money),
		ElapsedDays: elapsed,
	}

	for i := range expenses {
		e := expenses[i]
		s.Total = s.Total.Add(e.Amount)
		s.ByCategory[e.Category] = s.ByCategory[e.Category].Add(e.Amount)

		switch {
		case s.Peak == nil:
			s.Peak = &expenses[i]
		case e.Amount.Cents > s.Peak.Amount.Cents:
			s.Peak = &expenses[i]
		case e.Amount.Cents == s.Peak.Amount.Cents && e.Date.Before(s.Peak.Date.Time):
			s.Peak = &expenses[i]
		}
	}

	if s.Total.Cents > 0 {
		s.DailyAverage = s.Total.Units() / float64(elapsed)
	}
	return s, nil
}
