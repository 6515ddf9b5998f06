package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spendtrack/internal/core"
)

type categoryAmountResponse struct {
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amount_cents"`
}

type budgetStatusResponse struct {
	State          string `json:"state"`
	Ratio          string `json:"ratio"`
	BudgetCents    int64  `json:"budget_cents"`
	RemainingCents int64  `json:"remaining_cents"`
}

type reportResponse struct {
	Period       string                   `json:"period"`
	Total        string                   `json:"total"`
	TotalCents   int64                    `json:"total_cents"`
	ByCategory   []categoryAmountResponse `json:"by_category"`
	DailyAverage float64                  `json:"daily_average"`
	ElapsedDays  int                      `json:"elapsed_days"`
	Peak         *expenseResponse         `json:"peak,omitempty"`
	Budget       *budgetStatusResponse    `json:"budget,omitempty"`
}

func toReportResponse(r core.Report) reportResponse {
	out := reportResponse{
		Period:       r.Period.String(),
		Total:        fmt.Sprintf("%.2f", r.Summary.Total.Units()),
		TotalCents:   r.Summary.Total.Cents,
		ByCategory:   make([]categoryAmountResponse, 0, len(r.Summary.ByCategory)),
		DailyAverage: r.Summary.DailyAverage,
		ElapsedDays:  r.Summary.ElapsedDays,
	}
	for _, ca := range r.CategoriesByAmount() {
		out.ByCategory = append(out.ByCategory, categoryAmountResponse{
			Category:    ca.Name,
			Amount:      fmt.Sprintf("%.2f", ca.Amount.Units()),
			AmountCents: ca.Amount.Cents,
		})
	}
	if r.Summary.Peak != nil {
		peak := toExpenseResponse(*r.Summary.Peak)
		out.Peak = &peak
	}
	if r.Budget != nil {
		out.Budget = &budgetStatusResponse{
			State:          string(r.Budget.State),
			Ratio:          formatRatio(r.Budget.Ratio),
			BudgetCents:    r.Budget.Budget.Cents,
			RemainingCents: r.Budget.Remaining.Cents,
		}
	}
	return out
}

// formatRatio keeps the response valid JSON even for the zero-budget
// case, where the ratio is +Inf.
func formatRatio(ratio float64) string {
	if math.IsInf(ratio, 1) {
		return "inf"
	}
	return strconv.FormatFloat(ratio, 'f', 4, 64)
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	period, err := core.ParsePeriod(r.PathValue("period"))
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := s.reports.MonthlyReport(r.Context(), period)
	if err != nil {
		s.logError(r, "Monthly report failed", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (s *Server) handleRangeBreakdown(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		badRequest(w, "from must be YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		badRequest(w, "to must be YYYY-MM-DD")
		return
	}

	total, byCategory, err := s.reports.RangeBreakdown(r.Context(), core.DateOf(from), core.DateOf(to))
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	categories := make(map[string]int64, len(byCategory))
	for name, amount := range byCategory {
		categories[name] = amount.Cents
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from":              r.URL.Query().Get("from"),
		"to":                r.URL.Query().Get("to"),
		"total_cents":       total.Cents,
		"by_category_cents": categories,
	})
}

type budgetRequest struct {
	Amount string `json:"amount"`
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	period, err := core.ParsePeriod(r.PathValue("period"))
	if err != nil {
		writeError(w, err)
		return
	}

	budget, found, err := s.reports.GetBudget(r.Context(), period)
	if err != nil {
		s.logError(r, "Get budget failed", err)
		writeError(w, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no budget set for " + period.String()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"period":       period.String(),
		"amount":       fmt.Sprintf("%.2f", budget.Amount.Units()),
		"amount_cents": budget.Amount.Cents,
	})
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	period, err := core.ParsePeriod(r.PathValue("period"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	cents, err := parseBudgetCents(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.reports.SetBudget(r.Context(), period, core.Money{Cents: cents}); err != nil {
		s.logError(r, "Set budget failed", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"period":       period.String(),
		"amount_cents": cents,
	})
}

// parseBudgetCents accepts the same decimal formats as expense amounts
// but also allows an explicit zero budget.
func parseBudgetCents(s string) (int64, error) {
	cents, err := core.ParseDecimalToCents(s)
	if err == nil {
		return cents, nil
	}
	t := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if f, ferr := strconv.ParseFloat(t, 64); ferr == nil && f == 0 && !strings.HasPrefix(t, "-") {
		return 0, nil
	}
	return 0, err
}
