package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Date:     NewDate(2024, time.March, 1),
		Amount:   Money{Cents: 100},
		Category: "Food",
		Note:     "lunch",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		e    Expense
		want error
	}{
		{"zero amount", Expense{Date: NewDate(2024, time.March, 1), Amount: Money{}, Category: "Food"}, ErrInvalidAmount},
		{"negative amount", Expense{Date: NewDate(2024, time.March, 1), Amount: Money{Cents: -100}, Category: "Food"}, ErrInvalidAmount},
		{"empty category", Expense{Date: NewDate(2024, time.March, 1), Amount: Money{Cents: 100}, Category: "  "}, ErrEmptyCategory},
		{"long note", Expense{Date: NewDate(2024, time.March, 1), Amount: Money{Cents: 100}, Category: "Food", Note: strings.Repeat("x", 201)}, ErrNoteTooLong},
	}
	for _, tc := range cases {
		if err := tc.e.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	noDate := Expense{Amount: Money{Cents: 1}, Category: "Food"}
	if err := noDate.Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}
}

func TestBudgetValidate(t *testing.T) {
	// Zero is a legal budget amount; absence is modeled elsewhere.
	if err := (Budget{}).Validate(); err != nil {
		t.Fatalf("expected ok for zero budget, got %v", err)
	}
	if err := (Budget{Amount: Money{Cents: -1}}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative budget")
	}
}

func TestPeriodDays(t *testing.T) {
	cases := []struct {
		p    Period
		days int
	}{
		{Period{2024, time.March}, 31},
		{Period{2024, time.February}, 29}, // leap year
		{Period{2023, time.February}, 28},
		{Period{2024, time.April}, 30},
		{Period{2024, time.December}, 31},
	}
	for _, tc := range cases {
		if got := tc.p.Days(); got != tc.days {
			t.Fatalf("%s: expected %d days, got %d", tc.p, tc.days, got)
		}
	}
}

func TestPeriodContains(t *testing.T) {
	p := Period{2024, time.March}
	if !p.Contains(NewDate(2024, time.March, 1)) || !p.Contains(NewDate(2024, time.March, 31)) {
		t.Fatalf("boundaries should be inclusive")
	}
	if p.Contains(NewDate(2024, time.February, 29)) || p.Contains(NewDate(2024, time.April, 1)) {
		t.Fatalf("adjacent months should be excluded")
	}
}

func TestPeriodAfter(t *testing.T) {
	cases := []struct {
		a, b  Period
		after bool
	}{
		{Period{2024, time.April}, Period{2024, time.March}, true},
		{Period{2025, time.January}, Period{2024, time.December}, true},
		{Period{2024, time.March}, Period{2024, time.March}, false},
		{Period{2024, time.February}, Period{2024, time.March}, false},
	}
	for _, tc := range cases {
		if got := tc.a.After(tc.b); got != tc.after {
			t.Fatalf("%s after %s: expected %v, got %v", tc.a, tc.b, tc.after, got)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2024-03")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if p.Year != 2024 || p.Month != time.March {
		t.Fatalf("unexpected period %+v", p)
	}
	if p.String() != "2024-03" {
		t.Fatalf("round trip failed: %s", p)
	}

	for _, bad := range []string{"", "2024", "2024-13", "03-2024", "2024-3-1"} {
		if _, err := ParsePeriod(bad); !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("%q: expected ErrInvalidPeriod, got %v", bad, err)
		}
	}
}
