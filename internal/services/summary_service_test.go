package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"spendtrack/internal/core"
	"spendtrack/internal/log"
)

type fakeSummaryStore struct {
	requests  []string
	createErr error
}

func (f *fakeSummaryStore) CreateSummaryRequest(_ context.Context, period core.Period, recipient string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.requests = append(f.requests, period.String())
	return int64(len(f.requests)), nil
}

type fakePublisher struct {
	published []int64
	err       error
}

func (f *fakePublisher) PublishSummaryRequest(_ context.Context, requestID int64, period string) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, requestID)
	return nil
}

func testLogger() *log.Logger {
	return log.New(log.DefaultConfig())
}

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func TestRequestSummary(t *testing.T) {
	store := &fakeSummaryStore{}
	pub := &fakePublisher{}
	svc := NewSummaryService(store, pub, testLogger())
	svc.now = fixedNow

	id, err := svc.RequestSummary(context.Background(), core.Period{Year: 2024, Month: time.March}, "me@example.com")
	if err != nil {
		t.Fatalf("RequestSummary: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	if len(pub.published) != 1 || pub.published[0] != 1 {
		t.Errorf("published = %v, want [1]", pub.published)
	}
}

func TestRequestSummaryRejectsFuturePeriod(t *testing.T) {
	svc := NewSummaryService(&fakeSummaryStore{}, &fakePublisher{}, testLogger())
	svc.now = fixedNow

	_, err := svc.RequestSummary(context.Background(), core.Period{Year: 2024, Month: time.July}, "me@example.com")
	if !errors.Is(err, core.ErrInvalidPeriod) {
		t.Errorf("error = %v, want ErrInvalidPeriod", err)
	}
}

func TestRequestSummaryPublishFailureIsNotFatal(t *testing.T) {
	store := &fakeSummaryStore{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewSummaryService(store, pub, testLogger())
	svc.now = fixedNow

	id, err := svc.RequestSummary(context.Background(), core.Period{Year: 2024, Month: time.May}, "me@example.com")
	if err != nil {
		t.Fatalf("publish failure should not surface: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	if len(store.requests) != 1 {
		t.Error("request row should still be recorded for the sweep")
	}
}

func TestRequestSummaryStoreFailure(t *testing.T) {
	store := &fakeSummaryStore{createErr: errors.New("locked")}
	svc := NewSummaryService(store, &fakePublisher{}, testLogger())
	svc.now = fixedNow

	if _, err := svc.RequestSummary(context.Background(), core.Period{Year: 2024, Month: time.May}, "me@example.com"); err == nil {
		t.Error("store failure should surface")
	}
}
