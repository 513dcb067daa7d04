package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-payouts/internal/core/domain"
	"campaign-payouts/internal/core/port"
)

// PayoutUseCase manages individual payouts of a campaign. Uniqueness and
// last payout checks run against the campaign as locked inside the unit
// of work.
type PayoutUseCase struct {
	repo      port.CampaignRepository
	countries domain.CountryValidator
}

// NewPayoutUseCase creates a usecase over repo, validating country codes
// against lookup.
func NewPayoutUseCase(repo port.CampaignRepository, lookup domain.CountryLookup) *PayoutUseCase {
	return &PayoutUseCase{repo: repo, countries: domain.NewCountryValidator(lookup)}
}

// GetCampaignPayouts returns every payout of a campaign.
func (u *PayoutUseCase) GetCampaignPayouts(ctx context.Context, campaignID int64) ([]domain.Payout, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	if c == nil {
		return nil, domain.NotFound("campaign", campaignID)
	}
	return c.Payouts, nil
}

// GetCountryPayout returns the payout a campaign pays for country.
func (u *PayoutUseCase) GetCountryPayout(ctx context.Context, campaignID int64, country string) (*domain.Payout, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	if c == nil {
		return nil, domain.NotFound("campaign", campaignID)
	}
	p, ok := c.PayoutFor(country)
	if !ok {
		return nil, domain.NotFound("payout", country)
	}
	return &p, nil
}

// CreatePayout adds a payout for country to a campaign.
func (u *PayoutUseCase) CreatePayout(ctx context.Context, campaignID int64, country string, amount decimal.Decimal) (*domain.Payout, error) {
	var created domain.Payout
	err := u.repo.InTx(ctx, func(ctx context.Context, tx port.CampaignTx) error {
		c, err := lockCampaign(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		if created, err = c.AddPayout(u.countries, country, amount); err != nil {
			return err
		}
		return tx.InsertPayout(ctx, &created)
	})
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return &created, nil
}

// UpdatePayout changes country and/or amount of a payout. Fields absent
// from patch keep their stored values.
func (u *PayoutUseCase) UpdatePayout(ctx context.Context, payoutID int64, patch domain.PayoutPatch) (*domain.Payout, error) {
	var updated domain.Payout
	err := u.withPayoutCampaign(ctx, payoutID, func(ctx context.Context, tx port.CampaignTx, c *domain.Campaign, current domain.Payout) error {
		country, amount := current.Country, current.Amount
		if patch.Country != nil {
			country = *patch.Country
		}
		if patch.Amount != nil {
			amount = *patch.Amount
		}
		var err error
		if updated, err = c.UpdatePayout(u.countries, payoutID, country, amount); err != nil {
			return err
		}
		return tx.UpdatePayout(ctx, &updated)
	})
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return &updated, nil
}

// DeletePayout removes a payout. The last payout of a campaign is
// protected.
func (u *PayoutUseCase) DeletePayout(ctx context.Context, payoutID int64) error {
	err := u.withPayoutCampaign(ctx, payoutID, func(ctx context.Context, tx port.CampaignTx, c *domain.Campaign, _ domain.Payout) error {
		if _, err := c.RemovePayout(payoutID); err != nil {
			return err
		}
		return tx.DeletePayout(ctx, payoutID)
	})
	return domain.Persistence(err)
}

// withPayoutCampaign resolves the owning campaign of a payout, locks it and
// runs fn in the same unit of work. The payout is re-read from the locked
// campaign so that fn sees the state as of the lock.
func (u *PayoutUseCase) withPayoutCampaign(
	ctx context.Context,
	payoutID int64,
	fn func(ctx context.Context, tx port.CampaignTx, c *domain.Campaign, p domain.Payout) error,
) error {
	p, err := u.repo.GetPayout(ctx, payoutID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.NotFound("payout", payoutID)
	}
	return u.repo.InTx(ctx, func(ctx context.Context, tx port.CampaignTx) error {
		c, err := tx.LockCampaign(ctx, p.CampaignID)
		if err != nil {
			return err
		}
		// the payout may have gone away together with its campaign
		if c == nil {
			return domain.NotFound("payout", payoutID)
		}
		current, ok := c.Payout(payoutID)
		if !ok {
			return domain.NotFound("payout", payoutID)
		}
		return fn(ctx, tx, c, current)
	})
}
