package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spendtrack/internal/core"
)

// Summary request lifecycle states.
const (
	SummaryPending = "pending"
	SummarySent    = "sent"
	SummaryError   = "error"
)

// SummaryRequest is a queued ask for an emailed monthly summary. The row is
// the durable side of the queue message: the worker re-reads it by ID and the
// periodic sweep picks up rows whose message got lost.
type SummaryRequest struct {
	ID          int64
	Period      core.Period
	Recipient   string
	Status      string
	RequestedAt time.Time
}

// CreateSummaryRequest records a pending summary request and returns its ID.
func (r *SQLiteRepository) CreateSummaryRequest(ctx context.Context, period core.Period, recipient string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO summary_requests (month, recipient, status) VALUES (?, ?, ?)`,
		period.String(), recipient, SummaryPending)
	if err != nil {
		return 0, fmt.Errorf("create summary request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Summary request recorded",
		"id", id, "period", period.String(), "recipient", recipient)
	return id, nil
}

// GetSummaryRequest loads one request by ID.
func (r *SQLiteRepository) GetSummaryRequest(ctx context.Context, id int64) (SummaryRequest, error) {
	var (
		req      SummaryRequest
		monthStr string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, month, recipient, status, requested_at FROM summary_requests WHERE id = ?`, id).
		Scan(&req.ID, &monthStr, &req.Recipient, &req.Status, &req.RequestedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SummaryRequest{}, ErrNotFound
	}
	if err != nil {
		return SummaryRequest{}, fmt.Errorf("get summary request: %w", err)
	}

	req.Period, err = core.ParsePeriod(monthStr)
	if err != nil {
		return SummaryRequest{}, fmt.Errorf("parse request period %q: %w", monthStr, err)
	}
	return req, nil
}

// GetPendingSummaryRequests returns up to limit requests still awaiting
// delivery, oldest first. This backs the sweep that recovers lost messages.
func (r *SQLiteRepository) GetPendingSummaryRequests(ctx context.Context, limit int) ([]SummaryRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, month, recipient, status, requested_at FROM summary_requests
		 WHERE status = ? ORDER BY requested_at LIMIT ?`,
		SummaryPending, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending summary requests: %w", err)
	}
	defer rows.Close()

	var requests []SummaryRequest
	for rows.Next() {
		var (
			req      SummaryRequest
			monthStr string
		)
		if err := rows.Scan(&req.ID, &monthStr, &req.Recipient, &req.Status, &req.RequestedAt); err != nil {
			return nil, fmt.Errorf("scan summary request: %w", err)
		}
		req.Period, err = core.ParsePeriod(monthStr)
		if err != nil {
			return nil, fmt.Errorf("parse request period %q: %w", monthStr, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary requests: %w", err)
	}
	return requests, nil
}

// MarkSummarySent marks a request as delivered.
func (r *SQLiteRepository) MarkSummarySent(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE summary_requests SET status = ?, error = '', completed_at = CURRENT_TIMESTAMP WHERE id = ?`,
		SummarySent, id)
	if err != nil {
		return fmt.Errorf("mark summary sent: %w", err)
	}

	slog.InfoContext(ctx, "Summary request marked sent", "id", id)
	return nil
}

// MarkSummaryError records a delivery failure. The row stays out of the
// pending sweep; retries are driven by the queue's redelivery.
func (r *SQLiteRepository) MarkSummaryError(ctx context.Context, id int64, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE summary_requests SET status = ?, error = ? WHERE id = ?`,
		SummaryError, msg, id)
	if err != nil {
		return fmt.Errorf("mark summary error: %w", err)
	}

	slog.WarnContext(ctx, "Summary request marked failed", "id", id, "error", msg)
	return nil
}
