package summary

import (
	"math"
	"strings"
	"testing"
	"time"

	"spendtrack/internal/core"
)

func sampleReport(t *testing.T, budget *core.Budget) core.Report {
	t.Helper()
	expenses := []core.Expense{
		{ID: 1, Date: core.NewDate(2024, time.March, 1), Amount: core.Money{Cents: 5000}, Category: "Food"},
		{ID: 2, Date: core.NewDate(2024, time.March, 2), Amount: core.Money{Cents: 15000}, Category: "Rent", Note: "march rent"},
	}
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	r, err := core.BuildReport(core.Period{Year: 2024, Month: time.March}, expenses, budget, now)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	return r
}

func TestComposeSubject(t *testing.T) {
	msg := Compose(sampleReport(t, nil), "$")
	if msg.Subject != "Your Expense Summary for 2024-03" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
}

func TestComposeBody(t *testing.T) {
	msg := Compose(sampleReport(t, &core.Budget{Amount: core.Money{Cents: 15000}}), "$")

	for _, want := range []string{
		"Total spent: $200.00",
		"Daily average: $6.45 over 31 days",
		"Highest expense: $150.00 on 2024-03-02 (Rent) - march rent",
		"Budget: $150.00 - Over Budget (133% used, $50.00 over)",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.Body)
		}
	}

	// Categories sorted by descending amount.
	rent := strings.Index(msg.Body, "Rent: $150.00")
	food := strings.Index(msg.Body, "Food: $50.00")
	if rent == -1 || food == -1 || rent > food {
		t.Fatalf("expected Rent before Food:\n%s", msg.Body)
	}
}

func TestComposeNoBudget(t *testing.T) {
	msg := Compose(sampleReport(t, nil), "$")
	if !strings.Contains(msg.Body, "No budget configured for this month.") {
		t.Fatalf("expected no-budget line:\n%s", msg.Body)
	}
	if strings.Contains(msg.Body, "% used") {
		t.Fatalf("no ratio should be shown without a budget:\n%s", msg.Body)
	}
}

func TestComposeEmptyPeriod(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	r, err := core.BuildReport(core.Period{Year: 2024, Month: time.March}, nil, nil, now)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	msg := Compose(r, "$")
	if !strings.Contains(msg.Body, "No expenses recorded this period.") {
		t.Fatalf("expected empty-period message:\n%s", msg.Body)
	}
	if msg.Attachment != nil {
		t.Fatalf("compose must not attach anything")
	}
}

func TestComposeZeroBudgetWithSpend(t *testing.T) {
	r := sampleReport(t, &core.Budget{})
	if r.Budget == nil || !math.IsInf(r.Budget.Ratio, 1) {
		t.Fatalf("expected infinite ratio, got %+v", r.Budget)
	}
	msg := Compose(r, "$")
	if !strings.Contains(msg.Body, "Over Budget") {
		t.Fatalf("zero budget with spend must read as over budget:\n%s", msg.Body)
	}
}

func TestComposeCurrencySymbol(t *testing.T) {
	msg := Compose(sampleReport(t, nil), "€")
	if !strings.Contains(msg.Body, "Total spent: €200.00") {
		t.Fatalf("expected configured symbol in body:\n%s", msg.Body)
	}
}
