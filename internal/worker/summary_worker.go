package worker

import (
	"context"
	"errors"
	"fmt"

	"spendtrack/internal/amqp"
	"spendtrack/internal/core"
	"spendtrack/internal/log"
	"spendtrack/internal/sheets"
	"spendtrack/internal/storage"
)

// SummaryStore is the storage surface the worker needs.
type SummaryStore interface {
	GetSummaryRequest(ctx context.Context, id int64) (storage.SummaryRequest, error)
	GetPendingSummaryRequests(ctx context.Context, limit int) ([]storage.SummaryRequest, error)
	MarkSummarySent(ctx context.Context, id int64) error
	MarkSummaryError(ctx context.Context, id int64, cause error) error
	CurrencySymbol(ctx context.Context) string
}

// ReportBuilder produces the monthly report for a period.
type ReportBuilder interface {
	MonthlyReport(ctx context.Context, period core.Period) (core.Report, error)
}

// Exporter turns a report into an email and sends it.
type Exporter interface {
	Export(ctx context.Context, report core.Report, symbol string) error
}

// SummaryWorker processes summary requests: build the report, export it
// by email, record the outcome on the durable request row. Failures are
// recorded rather than requeued, so a poison request cannot loop.
type SummaryWorker struct {
	store     SummaryStore
	reports   ReportBuilder
	exporter  Exporter
	backup    sheets.ReportWriter
	logger    *log.Logger
	batchSize int
}

func NewSummaryWorker(store SummaryStore, reports ReportBuilder, exporter Exporter, backup sheets.ReportWriter, logger *log.Logger, batchSize int) *SummaryWorker {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &SummaryWorker{
		store:     store,
		reports:   reports,
		exporter:  exporter,
		backup:    backup,
		logger:    logger.WithComponent(log.ComponentWorker),
		batchSize: batchSize,
	}
}

// HandleSummaryRequest processes a single queue message. The durable row
// is the source of truth; the message only carries the row ID.
func (w *SummaryWorker) HandleSummaryRequest(ctx context.Context, msg *amqp.SummaryRequestMessage) error {
	req, err := w.store.GetSummaryRequest(ctx, msg.RequestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			w.logger.WarnContext(ctx, "Summary request row not found, dropping message",
				log.FieldRequestID, msg.RequestID)
			return nil
		}
		return fmt.Errorf("get summary request %d: %w", msg.RequestID, err)
	}

	w.process(ctx, req)
	return nil
}

// ProcessPendingRequests sweeps pending rows whose queue message was
// lost. Safe to run concurrently with message consumption: a row that
// was already handled is no longer pending and gets skipped.
func (w *SummaryWorker) ProcessPendingRequests(ctx context.Context) error {
	pending, err := w.store.GetPendingSummaryRequests(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending summary requests: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	w.logger.InfoContext(ctx, "Processing pending summary requests", "count", len(pending))
	for _, req := range pending {
		w.process(ctx, req)
	}
	return nil
}

func (w *SummaryWorker) process(ctx context.Context, req storage.SummaryRequest) {
	if req.Status != storage.SummaryPending {
		w.logger.DebugContext(ctx, "Summary request already handled",
			log.FieldRequestID, req.ID, "status", req.Status)
		return
	}

	report, err := w.reports.MonthlyReport(ctx, req.Period)
	if err != nil {
		w.fail(ctx, req.ID, fmt.Errorf("build report: %w", err))
		return
	}

	symbol := w.store.CurrencySymbol(ctx)
	if err := w.exporter.Export(ctx, report, symbol); err != nil {
		w.fail(ctx, req.ID, err)
		return
	}

	if err := w.store.MarkSummarySent(ctx, req.ID); err != nil {
		// The email went out; only the bookkeeping failed.
		w.logger.ErrorContext(ctx, "Failed to mark summary sent",
			log.FieldRequestID, req.ID, log.FieldError, err)
	}

	w.logger.InfoContext(ctx, "Summary sent",
		log.FieldRequestID, req.ID, log.FieldPeriod, req.Period.String())

	if w.backup != nil {
		if err := w.backup.AppendReport(ctx, report); err != nil {
			w.logger.WarnContext(ctx, "Failed to back up report to spreadsheet",
				log.FieldRequestID, req.ID, log.FieldError, err)
		}
	}
}

func (w *SummaryWorker) fail(ctx context.Context, id int64, cause error) {
	w.logger.ErrorContext(ctx, "Summary request failed",
		log.FieldRequestID, id, log.FieldError, cause)
	if err := w.store.MarkSummaryError(ctx, id, cause); err != nil {
		w.logger.ErrorContext(ctx, "Failed to mark summary error",
			log.FieldRequestID, id, log.FieldError, err)
	}
}
