package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"campaign-payouts/internal/core/domain"
	"campaign-payouts/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository in memory. A unit
// of work holds the repository lock for its whole duration, so units of
// work are serialized, and a failed one is undone by restoring a snapshot.
type CampaignRepository struct {
	mu             sync.Mutex
	campaigns      map[int64]*domain.Campaign
	nextCampaignID int64
	nextPayoutID   int64
	now            func() time.Time
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		campaigns: make(map[int64]*domain.Campaign),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type snapshot struct {
	campaigns      map[int64]*domain.Campaign
	nextCampaignID int64
	nextPayoutID   int64
}

func (r *CampaignRepository) snapshot() snapshot {
	s := snapshot{
		campaigns:      make(map[int64]*domain.Campaign, len(r.campaigns)),
		nextCampaignID: r.nextCampaignID,
		nextPayoutID:   r.nextPayoutID,
	}
	for id, c := range r.campaigns {
		s.campaigns[id] = c.Clone()
	}
	return s
}

func (r *CampaignRepository) restore(s snapshot) {
	r.campaigns = s.campaigns
	r.nextCampaignID = s.nextCampaignID
	r.nextPayoutID = s.nextPayoutID
}

// InTx runs fn against the repository while holding its lock.
func (r *CampaignRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx port.CampaignTx) error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.snapshot()
	defer func() {
		if p := recover(); p != nil {
			r.restore(snap)
			panic(p)
		}
		if err != nil {
			r.restore(snap)
		}
	}()
	return fn(ctx, &tx{r: r})
}

// ListCampaigns returns copies of the campaigns matching f, ordered by id.
func (r *CampaignRepository) ListCampaigns(_ context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := slices.Sorted(maps.Keys(r.campaigns))
	out := make([]domain.Campaign, 0)
	skipped := 0
	for _, id := range ids {
		c := r.campaigns[id]
		if !matches(c, f) {
			continue
		}
		if skipped < f.Offset {
			skipped++
			continue
		}
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
		out = append(out, *c.Clone())
	}
	return out, nil
}

// GetCampaign returns a copy of the campaign with id.
func (r *CampaignRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// GetPayout returns a copy of the payout with id.
func (r *CampaignRepository) GetPayout(_ context.Context, id int64) (*domain.Payout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, i := r.findPayout(id); c != nil {
		p := c.Payouts[i]
		return &p, nil
	}
	return nil, nil
}

func (r *CampaignRepository) findPayout(id int64) (*domain.Campaign, int) {
	for _, c := range r.campaigns {
		for i := range c.Payouts {
			if c.Payouts[i].ID == id {
				return c, i
			}
		}
	}
	return nil, -1
}

func matches(c *domain.Campaign, f port.CampaignFilter) bool {
	if f.Title != nil && !containsFold(c.Title, *f.Title) {
		return false
	}
	if f.LandingURL != nil && !containsFold(c.LandingURL, *f.LandingURL) {
		return false
	}
	if f.IsRunning != nil && c.IsRunning != *f.IsRunning {
		return false
	}
	if f.Country != nil && c.Country != *f.Country {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// tx operates on the repository state directly; the enclosing InTx holds
// the lock.
type tx struct {
	r *CampaignRepository
}

func (t *tx) LockCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	c, ok := t.r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

func (t *tx) InsertCampaign(_ context.Context, c *domain.Campaign) error {
	if err := uniqueCountries(c.Payouts); err != nil {
		return err
	}
	now := t.r.now()
	t.r.nextCampaignID++
	c.ID = t.r.nextCampaignID
	c.CreatedAt, c.UpdatedAt = now, now
	t.assignPayouts(c.ID, c.Payouts, now)
	t.r.campaigns[c.ID] = c.Clone()
	return nil
}

func (t *tx) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	stored, ok := t.r.campaigns[c.ID]
	if !ok {
		return fmt.Errorf("campaign %d does not exist", c.ID)
	}
	c.UpdatedAt = t.r.now()
	stored.Title = c.Title
	stored.LandingURL = c.LandingURL
	stored.IsRunning = c.IsRunning
	stored.Country = c.Country
	stored.UpdatedAt = c.UpdatedAt
	return nil
}

func (t *tx) DeleteCampaign(_ context.Context, id int64) error {
	delete(t.r.campaigns, id)
	return nil
}

func (t *tx) InsertPayout(_ context.Context, p *domain.Payout) error {
	c, ok := t.r.campaigns[p.CampaignID]
	if !ok {
		return fmt.Errorf("campaign %d does not exist", p.CampaignID)
	}
	if _, taken := c.PayoutFor(p.Country); taken {
		return domain.DuplicateCountry(p.Country)
	}
	now := t.r.now()
	t.r.nextPayoutID++
	p.ID = t.r.nextPayoutID
	p.CreatedAt, p.UpdatedAt = now, now
	c.Payouts = append(c.Payouts, *p)
	return nil
}

func (t *tx) UpdatePayout(_ context.Context, p *domain.Payout) error {
	c, i := t.r.findPayout(p.ID)
	if c == nil {
		return fmt.Errorf("payout %d does not exist", p.ID)
	}
	if other, taken := c.PayoutFor(p.Country); taken && other.ID != p.ID {
		return domain.DuplicateCountry(p.Country)
	}
	p.UpdatedAt = t.r.now()
	c.Payouts[i].Country = p.Country
	c.Payouts[i].Amount = p.Amount
	c.Payouts[i].UpdatedAt = p.UpdatedAt
	return nil
}

func (t *tx) DeletePayout(_ context.Context, id int64) error {
	c, i := t.r.findPayout(id)
	if c == nil {
		return nil
	}
	c.Payouts = slices.Delete(c.Payouts, i, i+1)
	return nil
}

func (t *tx) ReplacePayouts(_ context.Context, campaignID int64, payouts []domain.Payout) error {
	c, ok := t.r.campaigns[campaignID]
	if !ok {
		return fmt.Errorf("campaign %d does not exist", campaignID)
	}
	if err := uniqueCountries(payouts); err != nil {
		return err
	}
	t.assignPayouts(campaignID, payouts, t.r.now())
	c.Payouts = slices.Clone(payouts)
	return nil
}

func (t *tx) assignPayouts(campaignID int64, payouts []domain.Payout, now time.Time) {
	for i := range payouts {
		t.r.nextPayoutID++
		payouts[i].ID = t.r.nextPayoutID
		payouts[i].CampaignID = campaignID
		payouts[i].CreatedAt, payouts[i].UpdatedAt = now, now
	}
}

// uniqueCountries mirrors the (campaign_id, country) unique constraint of
// the SQL schema.
func uniqueCountries(payouts []domain.Payout) error {
	seen := make(map[string]struct{}, len(payouts))
	for _, p := range payouts {
		if _, dup := seen[p.Country]; dup {
			return domain.DuplicateCountry(p.Country)
		}
		seen[p.Country] = struct{}{}
	}
	return nil
}
