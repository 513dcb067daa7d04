package port

import (
	"context"

	"campaign-payouts/internal/core/domain"
)

// CampaignRepository is the storage gateway for campaigns and payouts. It is
// an outbound port in hexagonal architecture. Read methods return (nil, nil)
// when the requested record does not exist.
type CampaignRepository interface {
	// InTx runs fn inside a single unit of work. The work is committed
	// when fn returns nil and rolled back otherwise. The error returned by
	// fn is passed through unchanged.
	InTx(ctx context.Context, fn func(ctx context.Context, tx CampaignTx) error) error

	// ListCampaigns returns campaigns, with their payouts, that match all
	// filters in f, ordered by id.
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// GetCampaign returns a campaign and its payouts by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetPayout returns a payout by id.
	GetPayout(ctx context.Context, id int64) (*domain.Payout, error)
}

// CampaignTx exposes the reads and writes available inside a unit of work.
type CampaignTx interface {
	// LockCampaign loads a campaign with its payouts and holds it against
	// concurrent writers until the unit of work ends.
	LockCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// InsertCampaign stores c and its payouts, assigning ids and timestamps
	// on c in place.
	InsertCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign stores the scalar fields of c. Payouts are untouched.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign removes a campaign and all of its payouts.
	DeleteCampaign(ctx context.Context, id int64) error

	// InsertPayout stores p, assigning its id and timestamps in place.
	InsertPayout(ctx context.Context, p *domain.Payout) error
	// UpdatePayout stores country and amount of p.
	UpdatePayout(ctx context.Context, p *domain.Payout) error
	// DeletePayout removes one payout.
	DeletePayout(ctx context.Context, id int64) error
	// ReplacePayouts removes every payout of the campaign and stores
	// payouts in their place, assigning ids in place.
	ReplacePayouts(ctx context.Context, campaignID int64, payouts []domain.Payout) error
}

// CampaignFilter selects campaigns for listing. Nil filters impose no
// constraint. Title and LandingURL match case-insensitive substrings.
type CampaignFilter struct {
	Offset     int
	Limit      int
	Title      *string
	LandingURL *string
	IsRunning  *bool
	Country    *string
}
