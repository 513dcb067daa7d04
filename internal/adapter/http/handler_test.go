package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-payouts/internal/adapter/countries"
	"campaign-payouts/internal/adapter/memory"
	"campaign-payouts/internal/adapter/usecase"
	"campaign-payouts/internal/core/port"
	"campaign-payouts/internal/core/port/mocks"
)

const launchBody = `{"title":"Launch","landing_url":"https://x.com","country":"US","payouts":[{"country":"US","amount":100.0}]}`

func newTestHandler(t *testing.T, repo port.CampaignRepository) http.Handler {
	t.Helper()
	catalog, err := countries.Default()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(
		usecase.NewCampaignUseCase(repo, catalog),
		usecase.NewPayoutUseCase(repo, catalog),
		catalog,
		logger,
	)
	return h.Router()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createLaunch(t *testing.T, h http.Handler) campaignResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/campaigns", launchBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[campaignResponse](t, rec)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())
	rec := do(t, h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	assert.Equal(t, "healthy", decode[map[string]string](t, rec)["status"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Header().Get(requestIDHeader))
}

func TestCreateCampaign(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())

	c := createLaunch(t, h)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "Launch", c.Title)
	assert.False(t, c.IsRunning)
	require.Len(t, c.Payouts, 1)
	assert.Equal(t, "US", c.Payouts[0].Country)
	assert.Equal(t, 100.0, c.Payouts[0].Amount)
	assert.Equal(t, c.ID, c.Payouts[0].CampaignID)
}

func TestCreateCampaignRejectsInvalidInput(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"title":`, "bad_request"},
		{"missing title", `{"landing_url":"https://x.com","country":"US","payouts":[{"country":"US","amount":1}]}`, "missing_field"},
		{"unknown country", `{"title":"a","landing_url":"https://x.com","country":"ZZ","payouts":[{"country":"US","amount":1}]}`, "invalid_country_code"},
		{"duplicate payout", `{"title":"a","landing_url":"https://x.com","country":"US","payouts":[{"country":"US","amount":50},{"country":"US","amount":60}]}`, "duplicate_payout_country"},
		{"no payouts", `{"title":"a","landing_url":"https://x.com","country":"US","payouts":[]}`, "empty_payout_set"},
		{"zero amount", `{"title":"a","landing_url":"https://x.com","country":"US","payouts":[{"country":"US","amount":0}]}`, "invalid_amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/campaigns", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode[errorResponse](t, rec)
			assert.Equal(t, tt.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}

	rec := do(t, h, http.MethodGet, "/api/campaigns", "")
	assert.Empty(t, decode[[]campaignResponse](t, rec))
}

func TestCampaignLifecycle(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())
	c := createLaunch(t, h)
	base := "/api/campaigns/" + itoa(c.ID)

	rec := do(t, h, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, c.ID, decode[campaignResponse](t, rec).ID)

	rec = do(t, h, http.MethodPatch, base+"/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[campaignResponse](t, rec).IsRunning)

	rec = do(t, h, http.MethodPatch, base, `{"title":"Relaunch","payouts":[{"country":"DE","amount":"2.50"},{"country":"FR","amount":3}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[campaignResponse](t, rec)
	assert.Equal(t, "Relaunch", updated.Title)
	assert.Equal(t, "https://x.com", updated.LandingURL)
	assert.True(t, updated.IsRunning)
	require.Len(t, updated.Payouts, 2)
	assert.Equal(t, 2.5, updated.Payouts[0].Amount)

	rec = do(t, h, http.MethodPatch, base, `{"payouts":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "empty_payout_set", decode[errorResponse](t, rec).Code)

	rec = do(t, h, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	for _, target := range []string{base, base + "/payouts", base + "/payouts/DE"} {
		rec = do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "not_found", decode[errorResponse](t, rec).Code)
	}
	rec = do(t, h, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayoutEndpoints(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())
	c := createLaunch(t, h)
	base := "/api/campaigns/" + itoa(c.ID)

	rec := do(t, h, http.MethodPost, base+"/payouts", `{"country":"US","amount":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "duplicate_payout_country", decode[errorResponse](t, rec).Code)

	rec = do(t, h, http.MethodPost, base+"/payouts", `{"country":"UK","amount":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	uk := decode[payoutResponse](t, rec)

	rec = do(t, h, http.MethodGet, base+"/payouts/UK", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uk.ID, decode[payoutResponse](t, rec).ID)

	rec = do(t, h, http.MethodGet, base+"/payouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]payoutResponse](t, rec), 2)

	rec = do(t, h, http.MethodPatch, "/api/payouts/"+itoa(uk.ID), `{"amount":"7.25"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 7.25, decode[payoutResponse](t, rec).Amount)

	rec = do(t, h, http.MethodPatch, "/api/payouts/"+itoa(uk.ID), `{"amount":1.234}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1.234, decode[payoutResponse](t, rec).Amount)

	rec = do(t, h, http.MethodPatch, "/api/payouts/"+itoa(uk.ID), `{"country":"US"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/payouts/"+itoa(uk.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/payouts/"+itoa(c.Payouts[0].ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "last_payout_protected", decode[errorResponse](t, rec).Code)

	rec = do(t, h, http.MethodDelete, "/api/payouts/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCampaignsQuery(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())
	createLaunch(t, h)
	do(t, h, http.MethodPost, "/api/campaigns",
		`{"title":"Berlin","landing_url":"https://y.com","country":"DE","is_running":true,"payouts":[{"country":"DE","amount":1}]}`)

	tests := []struct {
		query  string
		status int
		count  int
	}{
		{"", http.StatusOK, 2},
		{"?limit=1", http.StatusOK, 1},
		{"?offset=1", http.StatusOK, 1},
		{"?is_running=true", http.StatusOK, 1},
		{"?title=LAUN", http.StatusOK, 1},
		{"?country=DE&landing_url=x.com", http.StatusOK, 0},
		{"?limit=abc", http.StatusBadRequest, 0},
		{"?offset=-1", http.StatusBadRequest, 0},
		{"?limit=5000", http.StatusBadRequest, 0},
		{"?is_running=maybe", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/campaigns"+tt.query, "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusOK {
				assert.Len(t, decode[[]campaignResponse](t, rec), tt.count)
			}
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())

	for _, target := range []string{"/api/campaigns/abc", "/api/campaigns/0", "/api/campaigns/-3/payouts"} {
		rec := do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestCountries(t *testing.T) {
	h := newTestHandler(t, memory.NewCampaignRepository())

	for _, prefix := range []string{"/api/countries", "/api/campaigns/countries"} {
		t.Run(prefix, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, prefix, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, decode[[]map[string]string](t, rec))

			rec = do(t, h, http.MethodGet, prefix+"/UK/currency", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "GBP", decode[currencyResponse](t, rec).CurrencyCode)

			rec = do(t, h, http.MethodGet, prefix+"/ZZ/currency", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestStorageFailureIsHidden(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, errors.New("dial tcp 10.0.0.5:5432: refused"))
	h := newTestHandler(t, repo)

	rec := do(t, h, http.MethodGet, "/api/campaigns/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode[errorResponse](t, rec)
	assert.Equal(t, "internal", resp.Code)
	assert.NotContains(t, resp.Error, "10.0.0.5")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
