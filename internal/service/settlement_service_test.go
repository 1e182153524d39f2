package service

import (
	"context"
	"testing"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/internal/core/ports/mocks"
	"custodial-payment-platform/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settlementTestDeps struct {
	svc      *SettlementServiceImpl
	store    *mocks.MockPaymentRequestStore
	registry *mocks.MockRegistryService
	ctrl     *gomock.Controller
}

func setupSettlementService(t *testing.T) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	d := &settlementTestDeps{
		store:    mocks.NewMockPaymentRequestStore(ctrl),
		registry: mocks.NewMockRegistryService(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewSettlementService(d.store, d.registry,
		func() time.Time { return testNow }, zerolog.Nop())
	return d
}

func merchantAccount() *domain.CustodialAccount {
	return &domain.CustodialAccount{OwnerID: "merchant-1", AccountID: "0.0.1001"}
}

func payerAccount() *domain.CustodialAccount {
	return &domain.CustodialAccount{OwnerID: "payer-1", AccountID: "0.0.1002"}
}

func TestSettlementService_Settle_Success(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, testNonce).Return(pendingRequest(10), nil)
	d.store.EXPECT().
		TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing).
		Return(true, nil)
	d.registry.EXPECT().Get(ctx, "merchant-1").Return(merchantAccount(), nil)
	d.registry.EXPECT().Get(ctx, "payer-1").Return(payerAccount(), nil)
	d.registry.EXPECT().GetBalance(ctx, "payer-1").Return(int64(50), nil)
	d.registry.EXPECT().
		Transfer(ctx, "payer-1", "merchant-1", int64(10), domain.DefaultTokenKind).
		Return("sim-tx-1", nil)
	d.store.EXPECT().
		RecordSettlement(ctx, testNonce, gomock.Any(), domain.RequestStatusCompleted).
		DoAndReturn(func(_ context.Context, _ string, s *domain.SettlementRecord, _ domain.RequestStatus) (bool, error) {
			assert.Equal(t, "payer-1", s.PayerOwnerID)
			assert.Equal(t, int64(10), s.Amount)
			assert.Equal(t, "sim-tx-1", s.TransactionID)
			assert.Empty(t, s.Error)
			return true, nil
		})

	got, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCompleted, got.Status)
	require.NotNil(t, got.Settlement)
	assert.Equal(t, "sim-tx-1", got.Settlement.TransactionID)
}

func TestSettlementService_Settle_AmountOverride(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()
	override := int64(25)

	request := pendingRequest(10)
	request.Amount = nil // open-amount request, payer decides

	d.store.EXPECT().Get(ctx, testNonce).Return(request, nil)
	d.store.EXPECT().
		TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing).
		Return(true, nil)
	d.registry.EXPECT().Get(ctx, "merchant-1").Return(merchantAccount(), nil)
	d.registry.EXPECT().Get(ctx, "payer-1").Return(payerAccount(), nil)
	d.registry.EXPECT().GetBalance(ctx, "payer-1").Return(int64(50), nil)
	d.registry.EXPECT().
		Transfer(ctx, "payer-1", "merchant-1", int64(25), domain.DefaultTokenKind).
		Return("sim-tx-2", nil)
	d.store.EXPECT().
		RecordSettlement(ctx, testNonce, gomock.Any(), domain.RequestStatusCompleted).
		Return(true, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{
		Nonce:          testNonce,
		PayerOwnerID:   "payer-1",
		AmountOverride: &override,
	})
	require.NoError(t, err)
}

func TestSettlementService_Settle_NotFound(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, testNonce).Return(nil, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	assertAppError(t, err, "REQ_001")
}

func TestSettlementService_Settle_Expired(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	request := pendingRequest(10)
	request.ExpiresAt = testNow.Add(-time.Second)
	d.store.EXPECT().Get(ctx, testNonce).Return(request, nil)

	// No CAS attempt for a derived-expired request.
	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	assertAppError(t, err, "REQ_002")
}

func TestSettlementService_Settle_AlreadyCompleted(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	request := pendingRequest(10)
	request.Status = domain.RequestStatusCompleted
	d.store.EXPECT().Get(ctx, testNonce).Return(request, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	assertAppError(t, err, "REQ_002")
}

func TestSettlementService_Settle_LosesClaimRace(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	completed := pendingRequest(10)
	completed.Status = domain.RequestStatusCompleted

	d.store.EXPECT().Get(ctx, testNonce).Return(pendingRequest(10), nil)
	d.store.EXPECT().
		TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing).
		Return(false, nil)
	d.store.EXPECT().Get(ctx, testNonce).Return(completed, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	assertAppError(t, err, "REQ_002")
	// No transfer and no terminal write: the winner owns the nonce.
}

func TestSettlementService_Settle_InsufficientFunds_RecordsFailed(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, testNonce).Return(pendingRequest(10), nil)
	d.store.EXPECT().
		TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing).
		Return(true, nil)
	d.registry.EXPECT().Get(ctx, "merchant-1").Return(merchantAccount(), nil)
	d.registry.EXPECT().Get(ctx, "payer-1").Return(payerAccount(), nil)
	d.registry.EXPECT().GetBalance(ctx, "payer-1").Return(int64(5), nil)
	d.store.EXPECT().
		RecordSettlement(ctx, testNonce, gomock.Any(), domain.RequestStatusFailed).
		DoAndReturn(func(_ context.Context, _ string, s *domain.SettlementRecord, _ domain.RequestStatus) (bool, error) {
			assert.NotEmpty(t, s.Error)
			assert.Empty(t, s.TransactionID)
			return true, nil
		})

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	assertAppError(t, err, "REQ_003")
}

func TestSettlementService_Settle_TransferFailure_RecordsFailed(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, testNonce).Return(pendingRequest(10), nil)
	d.store.EXPECT().
		TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing).
		Return(true, nil)
	d.registry.EXPECT().Get(ctx, "merchant-1").Return(merchantAccount(), nil)
	d.registry.EXPECT().Get(ctx, "payer-1").Return(payerAccount(), nil)
	d.registry.EXPECT().GetBalance(ctx, "payer-1").Return(int64(50), nil)
	d.registry.EXPECT().
		Transfer(ctx, "payer-1", "merchant-1", int64(10), domain.DefaultTokenKind).
		Return("", apperror.ErrTransferFailed(assert.AnError))
	d.store.EXPECT().
		RecordSettlement(ctx, testNonce, gomock.Any(), domain.RequestStatusFailed).
		Return(true, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	assertAppError(t, err, "NET_001")
}

func TestSettlementService_Settle_UnknownPayer_RecordsFailed(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, testNonce).Return(pendingRequest(10), nil)
	d.store.EXPECT().
		TransitionStatus(ctx, testNonce, domain.RequestStatusPending, domain.RequestStatusProcessing).
		Return(true, nil)
	d.registry.EXPECT().Get(ctx, "merchant-1").Return(merchantAccount(), nil)
	d.registry.EXPECT().Get(ctx, "payer-1").Return(nil, apperror.ErrAccountNotFound("payer-1"))
	d.store.EXPECT().
		RecordSettlement(ctx, testNonce, gomock.Any(), domain.RequestStatusFailed).
		Return(true, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce, PayerOwnerID: "payer-1"})
	assertAppError(t, err, "ACC_002")
}

func TestSettlementService_Settle_InputValidation(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Nonce: "bad", PayerOwnerID: "payer-1"})
	assertAppError(t, err, "VAL_003")

	_, err = d.svc.Settle(ctx, ports.SettleRequest{Nonce: testNonce})
	assertAppError(t, err, "VAL_001")

	negative := int64(-1)
	_, err = d.svc.Settle(ctx, ports.SettleRequest{
		Nonce:          testNonce,
		PayerOwnerID:   "payer-1",
		AmountOverride: &negative,
	})
	assertAppError(t, err, "VAL_002")
}
