package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-payouts/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errorCodes = map[domain.Kind]string{
	domain.KindMissingField:           "missing_field",
	domain.KindInvalidCountryCode:     "invalid_country_code",
	domain.KindInvalidAmount:          "invalid_amount",
	domain.KindEmptyPayoutSet:         "empty_payout_set",
	domain.KindDuplicatePayoutCountry: "duplicate_payout_country",
	domain.KindLastPayoutProtected:    "last_payout_protected",
	domain.KindNotFound:               "not_found",
}

// writeJSON encodes v with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; headers are already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeBadRequest answers 400 for malformed input rejected before it
// reaches a use case.
func (h *Handler) writeBadRequest(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"})
}

// writeError maps a use case error onto a response. Not found conditions
// become 404 and invariant violations 400 with the descriptive message.
// Anything else is logged and answered with a generic 500 so storage
// details do not leak.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		if code, ok := errorCodes[derr.Kind]; ok {
			status := http.StatusBadRequest
			if derr.Kind == domain.KindNotFound {
				status = http.StatusNotFound
			}
			h.writeJSON(w, status, errorResponse{Error: derr.Error(), Code: code})
			return
		}
	}
	h.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "internal"})
}
