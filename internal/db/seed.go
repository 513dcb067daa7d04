package db

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"campaign-payouts/internal/core/domain"
	"campaign-payouts/internal/core/port"
)

// demoCampaigns is the demo data inserted by Seed.
var demoCampaigns = []domain.CampaignInput{
	{
		Title:      "Spring Launch",
		LandingURL: "https://example.com/landing/spring",
		IsRunning:  true,
		Country:    "US",
		Payouts: []domain.PayoutInput{
			{Country: "US", Amount: decimal.RequireFromString("12.50")},
			{Country: "CA", Amount: decimal.RequireFromString("9.75")},
		},
	},
	{
		Title:      "EU Retargeting",
		LandingURL: "https://example.com/landing/eu",
		Country:    "DE",
		Payouts: []domain.PayoutInput{
			{Country: "DE", Amount: decimal.RequireFromString("8")},
			{Country: "FR", Amount: decimal.RequireFromString("7.20")},
			{Country: "UK", Amount: decimal.RequireFromString("10")},
		},
	},
	{
		Title:      "APAC Installs",
		LandingURL: "https://example.com/landing/apac",
		Country:    "JP",
		Payouts: []domain.PayoutInput{
			{Country: "JP", Amount: decimal.RequireFromString("15")},
			{Country: "SG", Amount: decimal.RequireFromString("11.40")},
		},
	},
}

// Seed inserts demo campaigns through svc so that they pass the same
// validation as API input. It does nothing when campaigns already exist.
func Seed(ctx context.Context, svc port.CampaignUseCase) error {
	existing, err := svc.ListCampaigns(ctx, port.CampaignFilter{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, in := range demoCampaigns {
		if _, err = svc.CreateCampaign(ctx, in); err != nil {
			return fmt.Errorf("seed campaign %q: %w", in.Title, err)
		}
	}
	return nil
}
