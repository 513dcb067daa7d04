package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents an advertising campaign and the payouts it owns.
// A persisted campaign always has at least one payout and no two of its
// payouts share a country.
type Campaign struct {
	ID         int64
	Title      string
	LandingURL string
	IsRunning  bool
	Country    string
	Payouts    []Payout
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Payout is the amount paid for traffic from one country within one
// campaign.
type Payout struct {
	ID         int64
	CampaignID int64
	Country    string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PayoutInput is a (country, amount) pair supplied by a caller.
type PayoutInput struct {
	Country string
	Amount  decimal.Decimal
}

// CampaignInput carries the fields needed to create a campaign.
type CampaignInput struct {
	Title      string
	LandingURL string
	IsRunning  bool
	Country    string
	Payouts    []PayoutInput
}

// CampaignPatch is a partial campaign update. Nil fields are left
// untouched. A non-nil Payouts replaces the whole payout set.
type CampaignPatch struct {
	Title      *string
	LandingURL *string
	IsRunning  *bool
	Country    *string
	Payouts    []PayoutInput
}

// PayoutPatch is a partial payout update. Nil fields keep their value.
type PayoutPatch struct {
	Country *string
	Amount  *decimal.Decimal
}

// NewCampaign validates in and builds an unsaved campaign from it.
func NewCampaign(v CountryValidator, in CampaignInput) (*Campaign, error) {
	c := &Campaign{IsRunning: in.IsRunning}
	if err := c.setTitle(in.Title); err != nil {
		return nil, err
	}
	if err := c.setLandingURL(in.LandingURL); err != nil {
		return nil, err
	}
	if err := c.setCountry(v, in.Country); err != nil {
		return nil, err
	}
	payouts, err := buildPayouts(v, 0, in.Payouts)
	if err != nil {
		return nil, err
	}
	c.Payouts = payouts
	return c, nil
}

// Apply validates patch as a whole and only then mutates c, so a failed
// patch leaves the campaign unchanged.
func (c *Campaign) Apply(v CountryValidator, patch CampaignPatch) error {
	next := c.Clone()
	if patch.Title != nil {
		if err := next.setTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.LandingURL != nil {
		if err := next.setLandingURL(*patch.LandingURL); err != nil {
			return err
		}
	}
	if patch.Country != nil {
		if err := next.setCountry(v, *patch.Country); err != nil {
			return err
		}
	}
	if patch.IsRunning != nil {
		next.IsRunning = *patch.IsRunning
	}
	if patch.Payouts != nil {
		if err := next.ReplacePayouts(v, patch.Payouts); err != nil {
			return err
		}
	}
	*c = *next
	return nil
}

// ReplacePayouts swaps the entire payout set for one built from inputs,
// validated exactly as on creation.
func (c *Campaign) ReplacePayouts(v CountryValidator, inputs []PayoutInput) error {
	payouts, err := buildPayouts(v, c.ID, inputs)
	if err != nil {
		return err
	}
	c.Payouts = payouts
	return nil
}

// Toggle flips the running flag.
func (c *Campaign) Toggle() {
	c.IsRunning = !c.IsRunning
}

// AddPayout appends a payout for country. The country must be valid and
// not yet paid out by this campaign, and amount must be positive.
func (c *Campaign) AddPayout(v CountryValidator, country string, amount decimal.Decimal) (Payout, error) {
	rec, err := v.validate("country", country)
	if err != nil {
		return Payout{}, err
	}
	if _, ok := c.PayoutFor(rec.Code); ok {
		return Payout{}, DuplicateCountry(rec.Code)
	}
	if !validAmount(amount) {
		return Payout{}, invalidAmount("amount", amount.String())
	}
	p := Payout{CampaignID: c.ID, Country: rec.Code, Amount: amount}
	c.Payouts = append(c.Payouts, p)
	return p, nil
}

// RemovePayout deletes the payout with id. The last remaining payout of a
// campaign cannot be removed.
func (c *Campaign) RemovePayout(id int64) (Payout, error) {
	i := c.payoutIndex(id)
	if i < 0 {
		return Payout{}, NotFound("payout", id)
	}
	if len(c.Payouts) == 1 {
		return Payout{}, &Error{Kind: KindLastPayoutProtected, Field: "payout", Value: strconv.FormatInt(id, 10)}
	}
	removed := c.Payouts[i]
	c.Payouts = slices.Delete(c.Payouts, i, i+1)
	return removed, nil
}

// UpdatePayout changes country and amount of the payout with id. Moving a
// payout to a country another payout of the campaign already uses fails.
func (c *Campaign) UpdatePayout(v CountryValidator, id int64, country string, amount decimal.Decimal) (Payout, error) {
	i := c.payoutIndex(id)
	if i < 0 {
		return Payout{}, NotFound("payout", id)
	}
	rec, err := v.validate("country", country)
	if err != nil {
		return Payout{}, err
	}
	if rec.Code != c.Payouts[i].Country {
		if _, taken := c.PayoutFor(rec.Code); taken {
			return Payout{}, DuplicateCountry(rec.Code)
		}
	}
	if !validAmount(amount) {
		return Payout{}, invalidAmount("amount", amount.String())
	}
	c.Payouts[i].Country = rec.Code
	c.Payouts[i].Amount = amount
	return c.Payouts[i], nil
}

// Payout returns the payout with id.
func (c *Campaign) Payout(id int64) (Payout, bool) {
	if i := c.payoutIndex(id); i >= 0 {
		return c.Payouts[i], true
	}
	return Payout{}, false
}

// PayoutFor returns the payout for country.
func (c *Campaign) PayoutFor(country string) (Payout, bool) {
	for _, p := range c.Payouts {
		if p.Country == country {
			return p, true
		}
	}
	return Payout{}, false
}

// Clone returns a deep copy of c.
func (c *Campaign) Clone() *Campaign {
	cp := *c
	cp.Payouts = slices.Clone(c.Payouts)
	return &cp
}

func (c *Campaign) payoutIndex(id int64) int {
	return slices.IndexFunc(c.Payouts, func(p Payout) bool { return p.ID == id })
}

func (c *Campaign) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return missingField("title")
	}
	c.Title = title
	return nil
}

func (c *Campaign) setLandingURL(landingURL string) error {
	if strings.TrimSpace(landingURL) == "" {
		return missingField("landing_url")
	}
	c.LandingURL = landingURL
	return nil
}

func (c *Campaign) setCountry(v CountryValidator, country string) error {
	rec, err := v.validate("country", country)
	if err != nil {
		return err
	}
	c.Country = rec.Code
	return nil
}

func validAmount(a decimal.Decimal) bool {
	return a.IsPositive()
}

func buildPayouts(v CountryValidator, campaignID int64, inputs []PayoutInput) ([]Payout, error) {
	if len(inputs) == 0 {
		return nil, &Error{Kind: KindEmptyPayoutSet, Field: "payouts"}
	}
	seen := make(map[string]struct{}, len(inputs))
	payouts := make([]Payout, 0, len(inputs))
	for i, in := range inputs {
		field := fmt.Sprintf("payouts[%d]", i)
		rec, err := v.validate(field+".country", in.Country)
		if err != nil {
			return nil, err
		}
		if !validAmount(in.Amount) {
			return nil, invalidAmount(field+".amount", in.Amount.String())
		}
		if _, dup := seen[rec.Code]; dup {
			return nil, DuplicateCountry(rec.Code)
		}
		seen[rec.Code] = struct{}{}
		payouts = append(payouts, Payout{CampaignID: campaignID, Country: rec.Code, Amount: in.Amount})
	}
	return payouts, nil
}
