package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNonce = "0123456789abcdef0123456789abcdef"

func newTestStore(t *testing.T) *RequestStore {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewRequestStore(client)
}

func newRequest(nonce string) *domain.PaymentRequest {
	amount := int64(10)
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.PaymentRequest{
		Nonce:           nonce,
		MerchantOwnerID: "merchant-1",
		Amount:          &amount,
		TokenKind:       domain.DefaultTokenKind,
		Status:          domain.RequestStatusPending,
		CreatedAt:       now,
		ExpiresAt:       now.Add(15 * time.Minute),
	}
}

func TestRequestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newRequest(testNonce)))

	got, err := store.Get(ctx, testNonce)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testNonce, got.Nonce)
	assert.Equal(t, "merchant-1", got.MerchantOwnerID)
	assert.Equal(t, domain.RequestStatusPending, got.Status)
	require.NotNil(t, got.Amount)
	assert.Equal(t, int64(10), *got.Amount)
	assert.Nil(t, got.Settlement)
}

func TestRequestStore_Create_NonceCollision(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newRequest(testNonce)))

	err := store.Create(ctx, newRequest(testNonce))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REQ_004", appErr.Code)
}

func TestRequestStore_Get_Unknown(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(context.Background(), testNonce)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRequestStore_TransitionStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newRequest(testNonce)))

	ok, err := store.TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second attempt from pending fails: the store holds processing now.
	ok, err = store.TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.Get(ctx, testNonce)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusProcessing, got.Status)
}

func TestRequestStore_TransitionStatus_UnknownNonce(t *testing.T) {
	store := newTestStore(t)

	_, err := store.TransitionStatus(context.Background(), testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REQ_001", appErr.Code)
}

func TestRequestStore_TransitionStatus_SingleWinner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newRequest(testNonce)))

	var winners int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
			assert.NoError(t, err)
			if ok {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners, "exactly one claimant must win the CAS")
}

func TestRequestStore_RecordSettlement_GuardedOnProcessing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newRequest(testNonce)))

	settlement := &domain.SettlementRecord{
		PayerOwnerID:  "payer-1",
		Amount:        10,
		TransactionID: "sim-tx-1",
		SettledAt:     time.Now().UTC(),
	}

	// Rejected while still pending.
	ok, err := store.RecordSettlement(ctx, testNonce, settlement, domain.RequestStatusCompleted)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	require.NoError(t, err)

	ok, err = store.RecordSettlement(ctx, testNonce, settlement, domain.RequestStatusCompleted)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second terminal write is rejected.
	ok, err = store.RecordSettlement(ctx, testNonce, settlement, domain.RequestStatusFailed)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.Get(ctx, testNonce)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCompleted, got.Status)
	require.NotNil(t, got.Settlement)
	assert.Equal(t, "sim-tx-1", got.Settlement.TransactionID)
	assert.Equal(t, int64(10), got.Settlement.Amount)
}

func TestRequestStore_ListPendingExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	expired := newRequest("aaaa6789abcdef0123456789abcdef00")
	expired.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	live := newRequest("bbbb6789abcdef0123456789abcdef00")

	require.NoError(t, store.Create(ctx, expired))
	require.NoError(t, store.Create(ctx, live))

	nonces, err := store.ListPendingExpired(ctx, time.Now().UTC(), 100)
	require.NoError(t, err)
	assert.Equal(t, []string{expired.Nonce}, nonces)

	// Transitioned requests leave the pending index.
	_, err = store.TransitionStatus(ctx, expired.Nonce, domain.RequestStatusPending, domain.RequestStatusExpired)
	require.NoError(t, err)

	nonces, err = store.ListPendingExpired(ctx, time.Now().UTC(), 100)
	require.NoError(t, err)
	assert.Empty(t, nonces)
}
