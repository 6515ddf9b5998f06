package memory

import (
	"context"
	"testing"
	"time"

	"spendtrack/internal/core"
)

func TestAppendReportAccumulates(t *testing.T) {
	s := New()
	p := core.Period{Year: 2024, Month: time.March}
	r := core.Report{Period: p}

	if err := s.AppendReport(context.Background(), r); err != nil {
		t.Fatalf("AppendReport: %v", err)
	}
	if err := s.AppendReport(context.Background(), r); err != nil {
		t.Fatalf("AppendReport: %v", err)
	}

	got := s.Reports()
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}
	if got[0].Period != p {
		t.Errorf("period = %v, want %v", got[0].Period, p)
	}
}

func TestReportsReturnsCopy(t *testing.T) {
	s := New()
	_ = s.AppendReport(context.Background(), core.Report{Period: core.Period{Year: 2024, Month: time.January}})

	got := s.Reports()
	got[0].Period.Year = 1999

	if s.Reports()[0].Period.Year != 2024 {
		t.Error("mutating returned slice affected internal state")
	}
}
