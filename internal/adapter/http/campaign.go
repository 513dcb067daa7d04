package httpadapter

import (
	"net/http"
)

// handleCreateCampaign creates a campaign with its payouts. It answers 201
// with the stored campaign, 400 on invalid input.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListCampaigns lists campaigns. It accepts optional offset, limit,
// title, landing_url, is_running and country query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseListQuery(r)
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	campaigns, err := h.campaigns.ListCampaigns(r.Context(), q.filter())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleUpdateCampaign applies a partial update. A "payouts" array in the
// body replaces the whole payout set.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	var req updateCampaignRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}
	c, err := h.campaigns.UpdateCampaign(r.Context(), id, req.patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleToggleCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	c, err := h.campaigns.ToggleCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleDeleteCampaign deletes a campaign and its payouts and answers 204.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	if err = h.campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
