package sheets

import (
	"context"

	"spendtrack/internal/core"
)

// ReportWriter is the outbound port for the optional spreadsheet backup of
// monthly reports. Implementations append rows; they never read back.
type ReportWriter interface {
	AppendReport(ctx context.Context, report core.Report) error
}
