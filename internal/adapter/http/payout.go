package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListPayouts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	payouts, err := h.payouts.GetCampaignPayouts(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toPayoutResponses(payouts))
}

func (h *Handler) handleGetCountryPayout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	p, err := h.payouts.GetCountryPayout(r.Context(), id, chi.URLParam(r, "country"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toPayoutResponse(*p))
}

// handleCreatePayout adds a payout to a campaign and answers 201.
func (h *Handler) handleCreatePayout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	var req payoutRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}
	p, err := h.payouts.CreatePayout(r.Context(), id, req.Country, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toPayoutResponse(*p))
}

// handleUpdatePayout changes country and/or amount of a payout.
func (h *Handler) handleUpdatePayout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "payoutID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	var req updatePayoutRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}
	p, err := h.payouts.UpdatePayout(r.Context(), id, req.patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toPayoutResponse(*p))
}

// handleDeletePayout deletes a payout and answers 204. Deleting the last
// payout of a campaign is rejected with 400.
func (h *Handler) handleDeletePayout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "payoutID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	if err = h.payouts.DeletePayout(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
