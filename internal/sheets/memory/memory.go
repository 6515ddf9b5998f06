package memory

import (
	"context"
	"sync"

	"spendtrack/internal/core"
	ports "spendtrack/internal/sheets"
)

// Store is an in-memory ReportWriter used in tests and when no
// spreadsheet is configured.
type Store struct {
	mu      sync.Mutex
	reports []core.Report
}

var _ ports.ReportWriter = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) AppendReport(_ context.Context, report core.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
	return nil
}

// Reports returns a copy of everything appended so far.
func (s *Store) Reports() []core.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Report, len(s.reports))
	copy(out, s.reports)
	return out
}
