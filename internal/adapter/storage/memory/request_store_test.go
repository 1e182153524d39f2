package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(nonce string, ttl time.Duration) *domain.PaymentRequest {
	now := time.Now().UTC()
	amount := int64(100)
	return &domain.PaymentRequest{
		Nonce:           nonce,
		MerchantOwnerID: "merchant-1",
		Amount:          &amount,
		TokenKind:       domain.DefaultTokenKind,
		Status:          domain.RequestStatusPending,
		CreatedAt:       now,
		ExpiresAt:       now.Add(ttl),
	}
}

func TestRequestStore_CreateAndGet(t *testing.T) {
	s := NewRequestStore()
	ctx := context.Background()

	req := newPendingRequest("aaaabbbbccccddddeeeeffff00001111", 15*time.Minute)
	require.NoError(t, s.Create(ctx, req))

	got, err := s.Get(ctx, req.Nonce)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, req.Nonce, got.Nonce)
	assert.Equal(t, domain.RequestStatusPending, got.Status)

	// Stored record must not alias the caller's value.
	*got.Amount = 999
	again, err := s.Get(ctx, req.Nonce)
	require.NoError(t, err)
	assert.Equal(t, int64(100), *again.Amount)
}

func TestRequestStore_Create_NonceCollision(t *testing.T) {
	s := NewRequestStore()
	ctx := context.Background()

	req := newPendingRequest("aaaabbbbccccddddeeeeffff00001111", 15*time.Minute)
	require.NoError(t, s.Create(ctx, req))

	err := s.Create(ctx, newPendingRequest(req.Nonce, 15*time.Minute))
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REQ_004", appErr.Code)
}

func TestRequestStore_Get_Unknown(t *testing.T) {
	s := NewRequestStore()
	got, err := s.Get(context.Background(), "ffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRequestStore_TransitionStatus(t *testing.T) {
	s := NewRequestStore()
	ctx := context.Background()
	req := newPendingRequest("aaaabbbbccccddddeeeeffff00001111", 15*time.Minute)
	require.NoError(t, s.Create(ctx, req))

	ok, err := s.TransitionStatus(ctx, req.Nonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second CAS from pending must lose.
	ok, err = s.TransitionStatus(ctx, req.Nonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.Get(ctx, req.Nonce)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusProcessing, got.Status)
}

func TestRequestStore_TransitionStatus_UnknownNonce(t *testing.T) {
	s := NewRequestStore()
	_, err := s.TransitionStatus(context.Background(), "ffffffffffffffffffffffffffffffff",
		domain.RequestStatusPending, domain.RequestStatusProcessing)
	require.Error(t, err)
}

func TestRequestStore_TransitionStatus_ConcurrentSingleWinner(t *testing.T) {
	s := NewRequestStore()
	ctx := context.Background()
	req := newPendingRequest("aaaabbbbccccddddeeeeffff00001111", 15*time.Minute)
	require.NoError(t, s.Create(ctx, req))

	const goroutines = 50
	var wg sync.WaitGroup
	var winners atomic.Int64

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.TransitionStatus(ctx, req.Nonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
			if err == nil && ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), winners.Load(), "exactly one caller may win the pending->processing transition")
}

func TestRequestStore_RecordSettlement_GuardedOnProcessing(t *testing.T) {
	s := NewRequestStore()
	ctx := context.Background()
	req := newPendingRequest("aaaabbbbccccddddeeeeffff00001111", 15*time.Minute)
	require.NoError(t, s.Create(ctx, req))

	settlement := &domain.SettlementRecord{
		PayerOwnerID:  "payer-1",
		Amount:        100,
		TransactionID: "tx-1",
		SettledAt:     time.Now().UTC(),
	}

	// Not processing yet — rejected.
	ok, err := s.RecordSettlement(ctx, req.Nonce, settlement, domain.RequestStatusCompleted)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.TransitionStatus(ctx, req.Nonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	require.NoError(t, err)

	ok, err = s.RecordSettlement(ctx, req.Nonce, settlement, domain.RequestStatusCompleted)
	require.NoError(t, err)
	assert.True(t, ok)

	// A duplicate terminal write must be rejected.
	ok, err = s.RecordSettlement(ctx, req.Nonce, settlement, domain.RequestStatusFailed)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.Get(ctx, req.Nonce)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCompleted, got.Status)
	require.NotNil(t, got.Settlement)
	assert.Equal(t, "tx-1", got.Settlement.TransactionID)
}

func TestRequestStore_ListPendingExpired(t *testing.T) {
	s := NewRequestStore()
	ctx := context.Background()

	expired := newPendingRequest("aaaabbbbccccddddeeeeffff00001111", -time.Minute)
	live := newPendingRequest("aaaabbbbccccddddeeeeffff00002222", time.Hour)
	require.NoError(t, s.Create(ctx, expired))
	require.NoError(t, s.Create(ctx, live))

	nonces, err := s.ListPendingExpired(ctx, time.Now().UTC(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{expired.Nonce}, nonces)
}
