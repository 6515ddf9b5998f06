package core

import (
	"math"
	"testing"
)

func TestEvaluateBudgetClassification(t *testing.T) {
	cases := []struct {
		spent  int64
		budget int64
		state  BudgetState
	}{
		{74999, 100000, OnTrack},  // ratio 0.74999
		{75000, 100000, NearingBudget},
		{99999, 100000, NearingBudget},
		{100000, 100000, OverBudget}, // ratio exactly 1.0
		{150000, 100000, OverBudget},
		{0, 100000, OnTrack},
		// spec scenarios: spent 200 against budgets 150 / 400 / 250
		{20000, 15000, OverBudget},
		{20000, 40000, OnTrack},
		{20000, 25000, NearingBudget},
	}
	for _, tc := range cases {
		got := EvaluateBudget(Money{Cents: tc.spent}, Budget{Amount: Money{Cents: tc.budget}})
		if got.State != tc.state {
			t.Fatalf("spent=%d budget=%d: expected %s, got %s (ratio %v)",
				tc.spent, tc.budget, tc.state, got.State, got.Ratio)
		}
	}
}

func TestEvaluateBudgetRatioAndRemaining(t *testing.T) {
	got := EvaluateBudget(Money{Cents: 20000}, Budget{Amount: Money{Cents: 15000}})
	if math.Abs(got.Ratio-200.0/150.0) > 1e-9 {
		t.Fatalf("expected ratio 1.333..., got %v", got.Ratio)
	}
	if got.Remaining.Cents != -5000 {
		t.Fatalf("expected remaining -5000, got %d", got.Remaining.Cents)
	}

	got = EvaluateBudget(Money{Cents: 5000}, Budget{Amount: Money{Cents: 20000}})
	if got.Ratio != 0.25 || got.Remaining.Cents != 15000 {
		t.Fatalf("unexpected status %+v", got)
	}
}

func TestEvaluateBudgetZeroBudget(t *testing.T) {
	// Zero budget with spend: infinite ratio, immediately over.
	got := EvaluateBudget(Money{Cents: 1}, Budget{})
	if !math.IsInf(got.Ratio, 1) || got.State != OverBudget {
		t.Fatalf("expected +Inf over budget, got %+v", got)
	}

	// Zero budget, zero spend: nothing spent of nothing, on track.
	got = EvaluateBudget(Money{}, Budget{})
	if got.Ratio != 0 || got.State != OnTrack {
		t.Fatalf("expected zero ratio on track, got %+v", got)
	}
}
