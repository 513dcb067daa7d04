package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"campaign-payouts/internal/core/domain"
	"campaign-payouts/internal/core/port"
)

// payoutRequest is one {country, amount} entry of a request body. Amount
// accepts both JSON numbers and numeric strings.
type payoutRequest struct {
	Country string          `json:"country"`
	Amount  decimal.Decimal `json:"amount"`
}

type createCampaignRequest struct {
	Title      string          `json:"title"`
	LandingURL string          `json:"landing_url"`
	IsRunning  bool            `json:"is_running"`
	Country    string          `json:"country"`
	Payouts    []payoutRequest `json:"payouts"`
}

func (req createCampaignRequest) input() domain.CampaignInput {
	return domain.CampaignInput{
		Title:      req.Title,
		LandingURL: req.LandingURL,
		IsRunning:  req.IsRunning,
		Country:    req.Country,
		Payouts:    payoutInputs(req.Payouts),
	}
}

// updateCampaignRequest is a partial update. An absent or null "payouts"
// leaves the payouts alone, while an array replaces them.
type updateCampaignRequest struct {
	Title      *string         `json:"title"`
	LandingURL *string         `json:"landing_url"`
	IsRunning  *bool           `json:"is_running"`
	Country    *string         `json:"country"`
	Payouts    []payoutRequest `json:"payouts"`
}

func (req updateCampaignRequest) patch() domain.CampaignPatch {
	return domain.CampaignPatch{
		Title:      req.Title,
		LandingURL: req.LandingURL,
		IsRunning:  req.IsRunning,
		Country:    req.Country,
		Payouts:    payoutInputs(req.Payouts),
	}
}

type updatePayoutRequest struct {
	Country *string          `json:"country"`
	Amount  *decimal.Decimal `json:"amount"`
}

func (req updatePayoutRequest) patch() domain.PayoutPatch {
	return domain.PayoutPatch{Country: req.Country, Amount: req.Amount}
}

// payoutInputs keeps the distinction between a nil and an empty slice.
func payoutInputs(reqs []payoutRequest) []domain.PayoutInput {
	if reqs == nil {
		return nil
	}
	out := make([]domain.PayoutInput, 0, len(reqs))
	for _, p := range reqs {
		out = append(out, domain.PayoutInput{Country: p.Country, Amount: p.Amount})
	}
	return out
}

// listQuery holds the query parameters of the campaign listing.
type listQuery struct {
	Offset     int     `validate:"gte=0"`
	Limit      int     `validate:"gte=0,lte=1000"`
	Title      *string `validate:"omitempty,max=255"`
	LandingURL *string `validate:"omitempty,max=2048"`
	IsRunning  *bool
	Country    *string `validate:"omitempty,alphanum,max=8"`
}

func (q listQuery) filter() port.CampaignFilter {
	return port.CampaignFilter{
		Offset:     q.Offset,
		Limit:      q.Limit,
		Title:      q.Title,
		LandingURL: q.LandingURL,
		IsRunning:  q.IsRunning,
		Country:    q.Country,
	}
}

// parseListQuery reads offset, limit, title, landing_url, is_running and
// country. Empty parameters are treated as absent.
func (h *Handler) parseListQuery(r *http.Request) (listQuery, error) {
	var (
		q   listQuery
		err error
		v   = r.URL.Query()
	)
	if s := v.Get("offset"); s != "" {
		if q.Offset, err = strconv.Atoi(s); err != nil {
			return q, errors.New("invalid 'offset'")
		}
	}
	if s := v.Get("limit"); s != "" {
		if q.Limit, err = strconv.Atoi(s); err != nil {
			return q, errors.New("invalid 'limit'")
		}
	}
	if s := v.Get("is_running"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return q, errors.New("invalid 'is_running'")
		}
		q.IsRunning = &b
	}
	q.Title = optional(v.Get("title"))
	q.LandingURL = optional(v.Get("landing_url"))
	q.Country = optional(v.Get("country"))

	if err = h.validate.Struct(q); err != nil {
		return q, fmt.Errorf("invalid query: %w", err)
	}
	return q, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid JSON")
	}
	return nil
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

type payoutResponse struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	Country    string    `json:"country"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type campaignResponse struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	LandingURL string           `json:"landing_url"`
	IsRunning  bool             `json:"is_running"`
	Country    string           `json:"country"`
	Payouts    []payoutResponse `json:"payouts"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func toPayoutResponse(p domain.Payout) payoutResponse {
	return payoutResponse{
		ID:         p.ID,
		CampaignID: p.CampaignID,
		Country:    p.Country,
		Amount:     p.Amount.InexactFloat64(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toPayoutResponses(payouts []domain.Payout) []payoutResponse {
	out := make([]payoutResponse, 0, len(payouts))
	for _, p := range payouts {
		out = append(out, toPayoutResponse(p))
	}
	return out
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:         c.ID,
		Title:      c.Title,
		LandingURL: c.LandingURL,
		IsRunning:  c.IsRunning,
		Country:    c.Country,
		Payouts:    toPayoutResponses(c.Payouts),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type currencyResponse struct {
	CurrencyCode string `json:"currency_code"`
	CurrencyName string `json:"currency_name"`
}
