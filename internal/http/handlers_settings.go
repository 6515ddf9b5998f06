package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

const currencySettingKey = "currency_symbol"

type currencyBody struct {
	Symbol string `json:"symbol"`
}

func (s *Server) handleGetCurrency(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currencyBody{Symbol: s.settings.CurrencySymbol(r.Context())})
}

func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	var req currencyBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		badRequest(w, "symbol must not be empty")
		return
	}

	if err := s.settings.SetSetting(r.Context(), currencySettingKey, symbol); err != nil {
		s.logError(r, "Set currency failed", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currencyBody{Symbol: symbol})
}
