// Package chart renders the category breakdown bar chart attached to
// summary emails.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	chart "github.com/wcharczuk/go-chart/v2"

	"spendtrack/internal/core"
)

// Renderer draws a PNG bar chart of category totals. It implements
// summary.Renderer.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer returns a renderer with the default canvas size.
func NewRenderer() *Renderer {
	return &Renderer{Width: 1024, Height: 576}
}

// Render draws one bar per category, in the order given (callers pass a
// descending-by-amount series). The series must not be empty.
func (r *Renderer) Render(ctx context.Context, series []core.CategoryAmount, symbol string) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("render chart: empty series")
	}

	bars := make([]chart.Value, 0, len(series))
	var maxValue float64
	for _, ca := range series {
		v := ca.Amount.Units()
		if v > maxValue {
			maxValue = v
		}
		bars = append(bars, chart.Value{
			Label: ca.Name,
			Value: v,
		})
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	graph := chart.BarChart{
		Title:    "Expense Breakdown by Category",
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("Total Amount (%s)", symbol),
			// A single bar, or bars that all share one value, collapses
			// the implicit range to min==max and go-chart refuses to
			// render. Pin the range explicitly.
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}

	slog.DebugContext(ctx, "Chart rendered",
		"categories", len(series),
		"bytes", buf.Len())

	return buf.Bytes(), nil
}
