package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"campaign-payouts/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign and payout use cases, the country catalog and a
// logger for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	campaigns port.CampaignUseCase
	payouts   port.PayoutUseCase
	countries port.CountryCatalog
	logger    *slog.Logger
	validate  *validator.Validate
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	payouts port.PayoutUseCase,
	countries port.CountryCatalog,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		campaigns: campaigns,
		payouts:   payouts,
		countries: countries,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
	r := chi.NewRouter()
	r.Use(h.requestLogger, middleware.Recoverer)

	r.Get("/", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			// older clients read the catalog below /api/campaigns
			r.Get("/countries", h.handleListCountries)
			r.Get("/countries/{code}/currency", h.handleCountryCurrency)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Patch("/toggle", h.handleToggleCampaign)
				r.Get("/payouts", h.handleListPayouts)
				r.Post("/payouts", h.handleCreatePayout)
				r.Get("/payouts/{country}", h.handleGetCountryPayout)
			})
		})
		r.Route("/payouts/{payoutID}", func(r chi.Router) {
			r.Patch("/", h.handleUpdatePayout)
			r.Delete("/", h.handleDeletePayout)
		})
		r.Get("/countries", h.handleListCountries)
		r.Get("/countries/{code}/currency", h.handleCountryCurrency)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth reports that the service is up.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Campaign Management API",
	})
}
