// Package summary turns an assembled report into an outbound email payload:
// subject, body text and an optional chart attachment.
package summary

import (
	"fmt"
	"math"
	"strings"

	"spendtrack/internal/core"
)

// Message is a fully-composed outbound summary, ready for a mail sender.
type Message struct {
	Subject    string
	Body       string
	Attachment *Attachment // nil when the period has no chartable data
}

// Attachment is a rendered chart image.
type Attachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Compose renders the textual summary for a report. It never fails: an empty
// period produces a valid "no expenses" message. The chart attachment is
// added separately by the Exporter.
func Compose(report core.Report, symbol string) Message {
	period := report.Period.String()
	var b strings.Builder

	fmt.Fprintf(&b, "Expense summary for %s\n\n", period)

	if report.Summary.Total.IsZero() && len(report.Summary.ByCategory) == 0 {
		fmt.Fprintf(&b, "No expenses recorded this period.\n")
		writeBudgetLine(&b, report.Budget, symbol)
		return Message{
			Subject: subjectFor(period),
			Body:    b.String(),
		}
	}

	fmt.Fprintf(&b, "Total spent: %s\n", report.Summary.Total.Format(symbol))
	fmt.Fprintf(&b, "Daily average: %s%.2f over %d days\n",
		symbol, report.Summary.DailyAverage, report.Summary.ElapsedDays)

	if peak := report.Summary.Peak; peak != nil {
		fmt.Fprintf(&b, "Highest expense: %s on %s (%s)",
			peak.Amount.Format(symbol), peak.Date.Format("2006-01-02"), peak.Category)
		if peak.Note != "" {
			fmt.Fprintf(&b, " - %s", peak.Note)
		}
		b.WriteString("\n")
	}

	writeBudgetLine(&b, report.Budget, symbol)

	b.WriteString("\nBy category:\n")
	for _, ca := range report.CategoriesByAmount() {
		fmt.Fprintf(&b, "  %s: %s\n", ca.Name, ca.Amount.Format(symbol))
	}

	return Message{
		Subject: subjectFor(period),
		Body:    b.String(),
	}
}

func subjectFor(period string) string {
	return fmt.Sprintf("Your Expense Summary for %s", period)
}

func writeBudgetLine(b *strings.Builder, status *core.BudgetStatus, symbol string) {
	if status == nil {
		b.WriteString("No budget configured for this month.\n")
		return
	}

	label := ""
	switch status.State {
	case core.OnTrack:
		label = "On Track"
	case core.NearingBudget:
		label = "Nearing Budget"
	case core.OverBudget:
		label = "Over Budget"
	}

	fmt.Fprintf(b, "Budget: %s - %s", status.Budget.Format(symbol), label)
	if math.IsInf(status.Ratio, 1) {
		fmt.Fprintf(b, " (no budget to spend against)")
	} else {
		fmt.Fprintf(b, " (%.0f%% used", status.Ratio*100)
		if status.Remaining.Cents >= 0 {
			fmt.Fprintf(b, ", %s remaining)", status.Remaining.Format(symbol))
		} else {
			over := core.Money{Cents: -status.Remaining.Cents}
			fmt.Fprintf(b, ", %s over)", over.Format(symbol))
		}
	}
	b.WriteString("\n")
}
