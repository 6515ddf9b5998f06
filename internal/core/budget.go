package core

import "math"

// BudgetState classifies spending against the configured monthly budget.
type BudgetState string

const (
	OnTrack       BudgetState = "on_track"
	NearingBudget BudgetState = "nearing_budget"
	OverBudget    BudgetState = "over_budget"
)

// Classification thresholds, applied to the spent/budget ratio. These are
// fixed design constants so the status keeps one meaning everywhere.
const (
	nearingThreshold = 0.75
	overThreshold    = 1.0
)

// BudgetStatus is the result of evaluating a month's spend against its budget.
type BudgetStatus struct {
	State     BudgetState
	Ratio     float64 // spent / budget, +Inf when budget is zero and spend is not
	Budget    Money
	Remaining Money // budget minus spent, negative when over
}

// EvaluateBudget classifies totalSpent against budget.
//
// Callers that have no budget configured for the month must not call this
// with a zero Budget; "no budget" is a distinct absent state owned by the
// caller (a nil *BudgetStatus on the report). A budget of exactly zero with
// nonzero spend is immediately over budget with an infinite ratio.
func EvaluateBudget(totalSpent Money, budget Budget) BudgetStatus {
	var ratio float64
	switch {
	case budget.Amount.Cents > 0:
		ratio = float64(totalSpent.Cents) / float64(budget.Amount.Cents)
	case totalSpent.Cents > 0:
		ratio = math.Inf(1)
	default:
		ratio = 0
	}

	state := OnTrack
	if ratio >= overThreshold {
		state = OverBudget
	} else if ratio >= nearingThreshold {
		state = NearingBudget
	}

	return BudgetStatus{
		State:     state,
		Ratio:     ratio,
		Budget:    budget.Amount,
		Remaining: budget.Amount.Sub(totalSpent),
	}
}
