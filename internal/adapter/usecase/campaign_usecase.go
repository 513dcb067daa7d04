package usecase

import (
	"context"

	"campaign-payouts/internal/core/domain"
	"campaign-payouts/internal/core/port"
)

const (
	// DefaultLimit is the page size used when a listing does not set one.
	DefaultLimit = 100
	// MaxLimit caps the page size of a listing.
	MaxLimit = 1000
)

// CampaignUseCase provides the campaign operations. It validates input
// through the domain aggregate and persists through the repository,
// implementing port.CampaignUseCase.
type CampaignUseCase struct {
	repo      port.CampaignRepository
	countries domain.CountryValidator
}

// NewCampaignUseCase creates a usecase over repo, validating country codes
// against lookup.
func NewCampaignUseCase(repo port.CampaignRepository, lookup domain.CountryLookup) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, countries: domain.NewCountryValidator(lookup)}
}

// CreateCampaign validates in before touching storage, then inserts the
// campaign and all of its payouts in one unit of work.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error) {
	c, err := domain.NewCampaign(u.countries, in)
	if err != nil {
		return nil, err
	}
	err = u.repo.InTx(ctx, func(ctx context.Context, tx port.CampaignTx) error {
		return tx.InsertCampaign(ctx, c)
	})
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return c, nil
}

// ListCampaigns returns a page of campaigns. A non-positive limit selects
// DefaultLimit, and limits above MaxLimit are clamped.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	if f.Offset < 0 {
		f.Offset = 0
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultLimit
	case f.Limit > MaxLimit:
		f.Limit = MaxLimit
	}
	campaigns, err := u.repo.ListCampaigns(ctx, f)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign with its payouts.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	if c == nil {
		return nil, domain.NotFound("campaign", id)
	}
	return c, nil
}

// UpdateCampaign applies patch to the stored campaign. When patch carries
// payouts the stored payout set is replaced, not merged.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	var updated *domain.Campaign
	err := u.repo.InTx(ctx, func(ctx context.Context, tx port.CampaignTx) error {
		c, err := lockCampaign(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = c.Apply(u.countries, patch); err != nil {
			return err
		}
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		if patch.Payouts != nil {
			if err = tx.ReplacePayouts(ctx, c.ID, c.Payouts); err != nil {
				return err
			}
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return updated, nil
}

// ToggleCampaign flips the running flag of a campaign.
func (u *CampaignUseCase) ToggleCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var toggled *domain.Campaign
	err := u.repo.InTx(ctx, func(ctx context.Context, tx port.CampaignTx) error {
		c, err := lockCampaign(ctx, tx, id)
		if err != nil {
			return err
		}
		c.Toggle()
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		toggled = c
		return nil
	})
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return toggled, nil
}

// DeleteCampaign removes a campaign together with its payouts.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	err := u.repo.InTx(ctx, func(ctx context.Context, tx port.CampaignTx) error {
		if _, err := lockCampaign(ctx, tx, id); err != nil {
			return err
		}
		return tx.DeleteCampaign(ctx, id)
	})
	return domain.Persistence(err)
}

// lockCampaign loads a campaign for update, turning a missing row into a
// not found error.
func lockCampaign(ctx context.Context, tx port.CampaignTx, id int64) (*domain.Campaign, error) {
	c, err := tx.LockCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("campaign", id)
	}
	return c, nil
}
