package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-payouts/internal/core/domain"
	"campaign-payouts/internal/core/port/mocks"
)

func TestCreatePayoutScenarios(t *testing.T) {
	ctx := context.Background()
	campaigns, payouts := newMemoryUseCases(t)

	c, err := campaigns.CreateCampaign(ctx, launch())
	require.NoError(t, err)

	t.Run("duplicate country", func(t *testing.T) {
		_, err := payouts.CreatePayout(ctx, c.ID, "US", amount("5"))
		assert.ErrorIs(t, err, domain.ErrDuplicatePayoutCountry)
	})
	t.Run("unknown country", func(t *testing.T) {
		_, err := payouts.CreatePayout(ctx, c.ID, "ZZ", amount("5"))
		assert.ErrorIs(t, err, domain.ErrInvalidCountryCode)
	})
	t.Run("non positive amount", func(t *testing.T) {
		_, err := payouts.CreatePayout(ctx, c.ID, "DE", amount("0"))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
	t.Run("unknown campaign", func(t *testing.T) {
		_, err := payouts.CreatePayout(ctx, c.ID+100, "DE", amount("5"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
	t.Run("new country", func(t *testing.T) {
		p, err := payouts.CreatePayout(ctx, c.ID, "UK", amount("12.5"))
		require.NoError(t, err)
		assert.Equal(t, c.ID, p.CampaignID)
		assert.NotZero(t, p.ID)

		got, err := payouts.GetCountryPayout(ctx, c.ID, "UK")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.True(t, got.Amount.Equal(amount("12.50")))
	})

	// failed attempts above must not have left anything behind
	all, err := payouts.GetCampaignPayouts(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetCountryPayoutNotFound(t *testing.T) {
	ctx := context.Background()
	campaigns, payouts := newMemoryUseCases(t)

	c, err := campaigns.CreateCampaign(ctx, launch())
	require.NoError(t, err)

	_, err = payouts.GetCountryPayout(ctx, c.ID, "DE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = payouts.GetCountryPayout(ctx, c.ID+1, "US")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePayoutProtectsLastPayout(t *testing.T) {
	ctx := context.Background()
	campaigns, payouts := newMemoryUseCases(t)

	c, err := campaigns.CreateCampaign(ctx, launch())
	require.NoError(t, err)
	only := c.Payouts[0].ID

	err = payouts.DeletePayout(ctx, only)
	assert.ErrorIs(t, err, domain.ErrLastPayoutProtected)

	extra, err := payouts.CreatePayout(ctx, c.ID, "DE", amount("3"))
	require.NoError(t, err)
	require.NoError(t, payouts.DeletePayout(ctx, only))

	left, err := payouts.GetCampaignPayouts(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, extra.ID, left[0].ID)

	assert.ErrorIs(t, payouts.DeletePayout(ctx, only), domain.ErrNotFound)
}

func TestUpdatePayout(t *testing.T) {
	ctx := context.Background()
	campaigns, payouts := newMemoryUseCases(t)

	in := launch()
	in.Payouts = append(in.Payouts, domain.PayoutInput{Country: "UK", Amount: amount("10")})
	c, err := campaigns.CreateCampaign(ctx, in)
	require.NoError(t, err)
	us, uk := c.Payouts[0], c.Payouts[1]

	t.Run("amount only keeps country", func(t *testing.T) {
		a := amount("42.10")
		p, err := payouts.UpdatePayout(ctx, us.ID, domain.PayoutPatch{Amount: &a})
		require.NoError(t, err)
		assert.Equal(t, "US", p.Country)
		assert.True(t, p.Amount.Equal(a))
	})
	t.Run("country taken by sibling", func(t *testing.T) {
		country := "UK"
		_, err := payouts.UpdatePayout(ctx, us.ID, domain.PayoutPatch{Country: &country})
		assert.ErrorIs(t, err, domain.ErrDuplicatePayoutCountry)
	})
	t.Run("same country is not a duplicate", func(t *testing.T) {
		country := "UK"
		_, err := payouts.UpdatePayout(ctx, uk.ID, domain.PayoutPatch{Country: &country})
		assert.NoError(t, err)
	})
	t.Run("unknown payout", func(t *testing.T) {
		country := "DE"
		_, err := payouts.UpdatePayout(ctx, 999, domain.PayoutPatch{Country: &country})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
	t.Run("invalid amount", func(t *testing.T) {
		a := amount("-1")
		_, err := payouts.UpdatePayout(ctx, uk.ID, domain.PayoutPatch{Amount: &a})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestDeletePayoutPersistenceError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	tx := mocks.NewMockCampaignTx(t)
	cause := errors.New("timeout")
	stored := &domain.Campaign{
		ID: 1,
		Payouts: []domain.Payout{
			{ID: 1, CampaignID: 1, Country: "US", Amount: amount("1")},
			{ID: 2, CampaignID: 1, Country: "UK", Amount: amount("2")},
		},
	}

	repo.EXPECT().GetPayout(mock.Anything, int64(2)).Return(&stored.Payouts[1], nil)
	repo.EXPECT().InTx(mock.Anything, mock.Anything).RunAndReturn(runTx(tx))
	tx.EXPECT().LockCampaign(mock.Anything, int64(1)).Return(stored, nil)
	tx.EXPECT().DeletePayout(mock.Anything, int64(2)).Return(cause)

	svc := NewPayoutUseCase(repo, testCatalog(t))
	err := svc.DeletePayout(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, cause)
}

func TestDeletePayoutCampaignGoneWhileLocking(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	tx := mocks.NewMockCampaignTx(t)

	repo.EXPECT().GetPayout(mock.Anything, int64(5)).
		Return(&domain.Payout{ID: 5, CampaignID: 9, Country: "US"}, nil)
	repo.EXPECT().InTx(mock.Anything, mock.Anything).RunAndReturn(runTx(tx))
	tx.EXPECT().LockCampaign(mock.Anything, int64(9)).Return(nil, nil)

	svc := NewPayoutUseCase(repo, testCatalog(t))
	err := svc.DeletePayout(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCampaignPayoutsPersistenceError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, errors.New("closed pool"))

	svc := NewPayoutUseCase(repo, testCatalog(t))
	_, err := svc.GetCampaignPayouts(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

// TestConcurrentDeletesKeepOnePayout races deletions of both payouts of a
// campaign. Exactly one may win.
func TestConcurrentDeletesKeepOnePayout(t *testing.T) {
	ctx := context.Background()
	campaigns, payouts := newMemoryUseCases(t)

	in := launch()
	in.Payouts = append(in.Payouts, domain.PayoutInput{Country: "UK", Amount: amount("10")})
	c, err := campaigns.CreateCampaign(ctx, in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, len(c.Payouts))
	for i, p := range c.Payouts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = payouts.DeletePayout(ctx, p.ID)
		}()
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrLastPayoutProtected)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	left, err := payouts.GetCampaignPayouts(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

// TestConcurrentCreatesKeepCountriesUnique races two payouts for the same
// country.
func TestConcurrentCreatesKeepCountriesUnique(t *testing.T) {
	ctx := context.Background()
	campaigns, payouts := newMemoryUseCases(t)

	c, err := campaigns.CreateCampaign(ctx, launch())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = payouts.CreatePayout(ctx, c.ID, "UK", amount("1"))
		}()
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrDuplicatePayoutCountry):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)
}
