package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListCountries returns the country reference data.
func (h *Handler) handleListCountries(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.countries.All())
}

// handleCountryCurrency returns the currency of one country, 404 when the
// code is unknown.
func (h *Handler) handleCountryCurrency(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.countries.Get(chi.URLParam(r, "code"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "country not found", Code: "not_found"})
		return
	}
	h.writeJSON(w, http.StatusOK, currencyResponse{
		CurrencyCode: rec.CurrencyCode,
		CurrencyName: rec.CurrencyName,
	})
}
