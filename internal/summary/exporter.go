package summary

import (
	"context"
	"fmt"
	"log/slog"

	"spendtrack/internal/core"
)

// Renderer produces a chart image from a category series. Implementations
// must not be called with an empty series; the Exporter skips the chart
// instead.
type Renderer interface {
	Render(ctx context.Context, series []core.CategoryAmount, symbol string) ([]byte, error)
}

// Sender delivers a composed message. A failure is recoverable by the caller
// and is surfaced as an ExportError, never a crash.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ExportError wraps a transport failure so callers can retry or report it.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export summary: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Exporter composes the summary for a report and hands it to the mail
// transport, attaching a rendered chart when the period has data.
type Exporter struct {
	renderer Renderer
	sender   Sender
}

func NewExporter(renderer Renderer, sender Sender) *Exporter {
	return &Exporter{renderer: renderer, sender: sender}
}

// Export builds and sends the summary email for report. An empty period still
// sends a valid "no expenses" message, just without a chart.
func (x *Exporter) Export(ctx context.Context, report core.Report, symbol string) error {
	msg := Compose(report, symbol)

	series := report.CategoriesByAmount()
	if len(series) > 0 && x.renderer != nil {
		png, err := x.renderer.Render(ctx, series, symbol)
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		msg.Attachment = &Attachment{
			Filename: fmt.Sprintf("category_breakdown_%s.png", report.Period),
			MIMEType: "image/png",
			Data:     png,
		}
	} else {
		slog.DebugContext(ctx, "No chart for summary", "period", report.Period.String())
	}

	if err := x.sender.Send(ctx, msg); err != nil {
		return &ExportError{Err: err}
	}

	slog.InfoContext(ctx, "Summary exported",
		"period", report.Period.String(),
		"subject", msg.Subject,
		"has_chart", msg.Attachment != nil)
	return nil
}
