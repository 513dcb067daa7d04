package port

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-payouts/internal/core/domain"
)

// CampaignUseCase defines the campaign operations exposed by the
// application. This interface represents the primary port into the domain.
// Every error it returns is a *domain.Error.
type CampaignUseCase interface {
	// CreateCampaign validates in and stores the campaign with its payouts
	// as one unit of work. Nothing is written when validation fails.
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error)
	// ListCampaigns returns a page of campaigns matching the filter.
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// UpdateCampaign applies the present fields of patch. Payouts, when
	// present, replace the whole payout set.
	UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
	// ToggleCampaign flips the running flag of a campaign.
	ToggleCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// DeleteCampaign removes a campaign and all of its payouts.
	DeleteCampaign(ctx context.Context, id int64) error
}

// PayoutUseCase defines the payout operations exposed by the application.
type PayoutUseCase interface {
	GetCampaignPayouts(ctx context.Context, campaignID int64) ([]domain.Payout, error)
	GetCountryPayout(ctx context.Context, campaignID int64, country string) (*domain.Payout, error)
	CreatePayout(ctx context.Context, campaignID int64, country string, amount decimal.Decimal) (*domain.Payout, error)
	UpdatePayout(ctx context.Context, payoutID int64, patch domain.PayoutPatch) (*domain.Payout, error)
	// DeletePayout removes a payout unless it is the last one of its
	// campaign.
	DeletePayout(ctx context.Context, payoutID int64) error
}

// CountryCatalog is the read-only country reference data.
type CountryCatalog interface {
	domain.CountryLookup
	// All returns every record ordered by code.
	All() []domain.CountryRecord
}
