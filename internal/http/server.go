package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"spendtrack/internal/log"
	"spendtrack/internal/middleware/trace"
	"spendtrack/internal/services"
)

// SettingsStore is the storage surface for instance-wide settings.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	CurrencySymbol(ctx context.Context) string
}

// Server wires the JSON API over the service layer.
type Server struct {
	http.Server

	expenses  *services.ExpenseService
	reports   *services.ReportService
	summaries *services.SummaryService
	settings  SettingsStore
	logger    *log.Logger

	limiter      *rateLimiter
	shutdownOnce sync.Once
}

func NewServer(addr string, expenses *services.ExpenseService, reports *services.ReportService, summaries *services.SummaryService, settings SettingsStore, logger *log.Logger) *Server {
	s := &Server{
		expenses:  expenses,
		reports:   reports,
		summaries: summaries,
		settings:  settings,
		logger:    logger.WithComponent(log.ComponentHTTP),
		limiter:   newRateLimiter(60, time.Minute),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleAddCategory)
	mux.HandleFunc("DELETE /api/categories/{name}", s.handleDeleteCategory)

	mux.HandleFunc("GET /api/budgets/{period}", s.handleGetBudget)
	mux.HandleFunc("PUT /api/budgets/{period}", s.handleSetBudget)

	mux.HandleFunc("GET /api/reports/{period}", s.handleMonthlyReport)
	mux.HandleFunc("GET /api/reports", s.handleRangeBreakdown)

	mux.HandleFunc("POST /api/summaries", s.handleRequestSummary)

	mux.HandleFunc("GET /api/settings/currency", s.handleGetCurrency)
	mux.HandleFunc("PUT /api/settings/currency", s.handleSetCurrency)

	traced := trace.NewMiddleware(logger).Handler(s.withRateLimit(mux))

	s.Server = http.Server{
		Addr:              addr,
		Handler:           traced,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Shutdown stops the limiter's cleanup goroutine and drains the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.limiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
