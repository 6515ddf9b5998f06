package trace

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spendtrack/internal/log"
)

func TestHandlerInjectsTraceID(t *testing.T) {
	m := NewMiddleware(log.New(log.DefaultConfig()))

	var seen string
	h := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/expenses", nil))

	if seen == "" {
		t.Fatal("handler should see a trace ID in the context")
	}
	if !strings.HasPrefix(seen, "req_") {
		t.Errorf("trace ID %q should carry the req_ prefix", seen)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestNewTraceIDUnique(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	if a == b {
		t.Errorf("two IDs should differ, both were %q", a)
	}
}

func TestTraceIDMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := TraceID(r.Context()); got != "" {
		t.Errorf("TraceID on plain context = %q, want empty", got)
	}
}
