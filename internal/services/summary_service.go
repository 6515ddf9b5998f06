package services

import (
	"context"
	"fmt"
	"time"

	"spendtrack/internal/core"
	"spendtrack/internal/log"
)

// SummaryStore records summary requests durably before any message is
// published, so a lost message can be recovered by the worker sweep.
type SummaryStore interface {
	CreateSummaryRequest(ctx context.Context, period core.Period, recipient string) (int64, error)
}

// Publisher hands a recorded request to the background worker.
type Publisher interface {
	PublishSummaryRequest(ctx context.Context, requestID int64, period string) error
}

// SummaryService accepts email-summary requests: durable row first, then
// a queue message. A publish failure is not an error for the caller; the
// pending row is picked up by the worker sweep instead.
type SummaryService struct {
	store     SummaryStore
	publisher Publisher
	logger    *log.Logger
	now       func() time.Time
}

func NewSummaryService(store SummaryStore, publisher Publisher, logger *log.Logger) *SummaryService {
	return &SummaryService{
		store:     store,
		publisher: publisher,
		logger:    logger.WithComponent(log.ComponentSummary),
		now:       time.Now,
	}
}

// RequestSummary records a summary request for the period and notifies
// the worker. Future periods are rejected.
func (s *SummaryService) RequestSummary(ctx context.Context, period core.Period, recipient string) (int64, error) {
	if err := period.Validate(); err != nil {
		return 0, err
	}
	if period.After(core.PeriodOf(s.now())) {
		return 0, fmt.Errorf("%w: %s is in the future", core.ErrInvalidPeriod, period)
	}

	id, err := s.store.CreateSummaryRequest(ctx, period, recipient)
	if err != nil {
		return 0, fmt.Errorf("record summary request: %w", err)
	}

	if s.publisher == nil {
		s.logger.WarnContext(ctx, "No publisher configured, request left for sweep",
			log.FieldRequestID, id)
		return id, nil
	}
	if err := s.publisher.PublishSummaryRequest(ctx, id, period.String()); err != nil {
		// The durable row survives; the sweep will retry it.
		s.logger.WarnContext(ctx, "Failed to publish summary request",
			log.FieldRequestID, id, log.FieldError, err)
	}
	return id, nil
}
