package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"spendtrack/internal/core"
	"spendtrack/internal/log"
)

type createExpenseRequest struct {
	Date     string `json:"date"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

type expenseResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amount_cents"`
	Category    string `json:"category"`
	Note        string `json:"note,omitempty"`
}

func toExpenseResponse(e core.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Amount:      fmt.Sprintf("%.2f", e.Amount.Units()),
		AmountCents: e.Amount.Cents,
		Category:    e.Category,
		Note:        e.Note,
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		badRequest(w, "date must be YYYY-MM-DD")
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	expense := core.Expense{
		Date:     core.DateOf(date),
		Amount:   core.Money{Cents: cents},
		Category: req.Category,
		Note:     req.Note,
	}

	id, err := s.expenses.CreateExpense(r.Context(), expense)
	if err != nil {
		s.logError(r, "Create expense failed", err)
		writeError(w, err)
		return
	}

	expense.ID = id
	writeJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.ListExpenses(r.Context())
	if err != nil {
		s.logError(r, "List expenses failed", err)
		writeError(w, err)
		return
	}

	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		badRequest(w, "id must be an integer")
		return
	}

	if err := s.expenses.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) logError(r *http.Request, msg string, err error) {
	s.logger.ErrorContext(r.Context(), msg,
		log.FieldPath, r.URL.Path, log.FieldError, err)
}
