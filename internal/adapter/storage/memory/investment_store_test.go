package memory

import (
	"context"
	"testing"
	"time"

	"custodial-payment-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestmentStore_CreateGetList(t *testing.T) {
	s := NewInvestmentStore()
	ctx := context.Background()
	oppID := uuid.New()

	first := &domain.Investment{
		ID:              uuid.New(),
		OpportunityID:   oppID,
		InvestorOwnerID: "investor-a",
		Amount:          300,
		ExpectedReturn:  315,
		Status:          domain.InvestmentStatusCompleted,
		CreatedAt:       time.Now().UTC(),
	}
	second := &domain.Investment{
		ID:              uuid.New(),
		OpportunityID:   oppID,
		InvestorOwnerID: "investor-b",
		Amount:          200,
		ExpectedReturn:  210,
		Status:          domain.InvestmentStatusCompleted,
		CreatedAt:       time.Now().UTC().Add(time.Millisecond),
	}
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	got, err := s.Get(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(300), got.Amount)

	list, err := s.ListByOpportunity(ctx, oppID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID, "listing is ordered by creation time")
}

func TestInvestmentStore_UpdateStatus_CAS(t *testing.T) {
	s := NewInvestmentStore()
	ctx := context.Background()

	inv := &domain.Investment{
		ID:     uuid.New(),
		Status: domain.InvestmentStatusCompleted,
	}
	require.NoError(t, s.Create(ctx, inv))

	ok, err := s.UpdateStatus(ctx, inv.ID, domain.InvestmentStatusCompleted, domain.InvestmentStatusReturned)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.UpdateStatus(ctx, inv.ID, domain.InvestmentStatusCompleted, domain.InvestmentStatusReturned)
	require.NoError(t, err)
	assert.False(t, ok, "investment already returned")
}

func TestPortfolioStore_ApplyInvestment(t *testing.T) {
	s := NewPortfolioStore()
	ctx := context.Background()

	empty, err := s.Get(ctx, "investor-a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.TotalInvested)

	first := &domain.Investment{ID: uuid.New(), InvestorOwnerID: "investor-a", Amount: 300, ExpectedReturn: 315}
	second := &domain.Investment{ID: uuid.New(), InvestorOwnerID: "investor-a", Amount: 200, ExpectedReturn: 210}
	require.NoError(t, s.ApplyInvestment(ctx, first))
	require.NoError(t, s.ApplyInvestment(ctx, second))

	p, err := s.Get(ctx, "investor-a")
	require.NoError(t, err)
	assert.Equal(t, int64(500), p.TotalInvested)
	assert.Equal(t, int64(525), p.TotalExpectedReturn)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, p.InvestmentIDs)
}

func TestInvoiceStore_PutAndGet(t *testing.T) {
	s := NewInvoiceStore()
	ctx := context.Background()

	inv := &domain.Invoice{
		ID:              uuid.New(),
		MerchantOwnerID: "merchant-1",
		Amount:          1000,
		Status:          domain.InvoiceStatusActive,
	}
	require.NoError(t, s.Put(ctx, inv))

	got, err := s.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsActive())

	missing, err := s.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
