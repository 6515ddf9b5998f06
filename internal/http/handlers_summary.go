package http

import (
	"encoding/json"
	"net/http"

	"spendtrack/internal/core"
)

type summaryRequestBody struct {
	Period    string `json:"period"`
	Recipient string `json:"recipient"`
}

// handleRequestSummary accepts an email-summary request and returns 202:
// the report is built and sent by the background worker.
func (s *Server) handleRequestSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	period, err := core.ParsePeriod(req.Period)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := s.summaries.RequestSummary(r.Context(), period, req.Recipient)
	if err != nil {
		s.logError(r, "Summary request failed", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"request_id": id,
		"period":     period.String(),
		"status":     "pending",
	})
}
