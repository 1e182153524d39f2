package service

import (
	"context"
	"fmt"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"

	"github.com/rs/zerolog"
)

// SettlementServiceImpl implements ports.SettlementService.
//
// The exactly-once guard is the store-level compare-and-set from
// pending_payment to processing: the first caller to win it owns the nonce,
// and every later attempt fails with an invalid-state error. While the
// external transfer is in flight the request is already in processing, so no
// concurrent caller can pass the same guard.
type SettlementServiceImpl struct {
	requests ports.PaymentRequestStore
	registry ports.RegistryService
	now      func() time.Time
	log      zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl. now is the clock
// used for expiry derivation; pass nil for wall-clock time.
func NewSettlementService(
	requests ports.PaymentRequestStore,
	registry ports.RegistryService,
	now func() time.Time,
	log zerolog.Logger,
) *SettlementServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &SettlementServiceImpl{
		requests: requests,
		registry: registry,
		now:      now,
		log:      log,
	}
}

// Settle executes the fund transfer for a payment request and records the
// terminal outcome. A request that leaves pending_payment here always
// reaches completed or failed before Settle returns.
func (s *SettlementServiceImpl) Settle(ctx context.Context, req ports.SettleRequest) (*domain.PaymentRequest, error) {
	if !domain.IsValidNonce(req.Nonce) {
		return nil, apperror.ErrInvalidNonce()
	}
	if req.PayerOwnerID == "" {
		return nil, apperror.Validation("payer owner id is required")
	}
	if req.AmountOverride != nil && *req.AmountOverride <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	stored, err := s.requests.Get(ctx, req.Nonce)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup payment request: %w", err))
	}
	if stored == nil {
		return nil, apperror.ErrRequestNotFound()
	}
	if effective := stored.EffectiveStatus(s.now()); effective != domain.RequestStatusPending {
		return nil, apperror.ErrInvalidRequestState(string(effective))
	}

	// The CAS is the race arbiter; the derived-status check above only gives
	// a friendlier error for expired or already-terminal requests.
	won, err := s.requests.TransitionStatus(ctx, req.Nonce, domain.RequestStatusPending, domain.RequestStatusProcessing)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("claim payment request: %w", err))
	}
	if !won {
		current, err := s.requests.Get(ctx, req.Nonce)
		if err != nil || current == nil {
			return nil, apperror.ErrInvalidRequestState(string(domain.RequestStatusProcessing))
		}
		return nil, apperror.ErrInvalidRequestState(string(current.EffectiveStatus(s.now())))
	}

	// From here on the request is provisionally ours: every failure must be
	// recorded as the terminal failed outcome before returning.
	merchant := stored.MerchantOwnerID

	if _, err := s.registry.Get(ctx, merchant); err != nil {
		return nil, s.fail(ctx, req, 0, err)
	}
	if _, err := s.registry.Get(ctx, req.PayerOwnerID); err != nil {
		return nil, s.fail(ctx, req, 0, err)
	}

	amount := int64(0)
	switch {
	case req.AmountOverride != nil:
		amount = *req.AmountOverride
	case stored.Amount != nil:
		amount = *stored.Amount
	}
	if amount <= 0 {
		return nil, s.fail(ctx, req, amount, apperror.ErrInvalidAmount())
	}

	// Best-effort pre-check; the ledger remains the authority.
	balance, err := s.registry.GetBalance(ctx, req.PayerOwnerID)
	if err != nil {
		return nil, s.fail(ctx, req, amount, err)
	}
	if balance < amount {
		return nil, s.fail(ctx, req, amount, apperror.ErrInsufficientFunds())
	}

	txID, err := s.registry.Transfer(ctx, req.PayerOwnerID, merchant, amount, stored.TokenKind)
	if err != nil {
		return nil, s.fail(ctx, req, amount, err)
	}

	settlement := &domain.SettlementRecord{
		PayerOwnerID:  req.PayerOwnerID,
		Amount:        amount,
		TransactionID: txID,
		SettledAt:     s.now().UTC(),
	}
	ok, err := s.requests.RecordSettlement(ctx, req.Nonce, settlement, domain.RequestStatusCompleted)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record settlement: %w", err))
	}
	if !ok {
		// Only reachable if a stale thread stole the terminal write.
		return nil, apperror.ErrInvalidRequestState(string(domain.RequestStatusProcessing))
	}

	s.log.Info().
		Str("nonce", req.Nonce).
		Str("payer_owner", req.PayerOwnerID).
		Str("merchant_owner", merchant).
		Int64("amount", amount).
		Str("transaction_id", txID).
		Msg("payment request settled")

	stored.Status = domain.RequestStatusCompleted
	stored.Settlement = settlement
	return stored, nil
}

// fail records the terminal failed outcome for a claimed request and returns
// the causing error. The guard on processing makes duplicate terminal writes
// impossible.
func (s *SettlementServiceImpl) fail(ctx context.Context, req ports.SettleRequest, amount int64, cause error) error {
	settlement := &domain.SettlementRecord{
		PayerOwnerID: req.PayerOwnerID,
		Amount:       amount,
		Error:        cause.Error(),
		SettledAt:    s.now().UTC(),
	}
	if _, err := s.requests.RecordSettlement(ctx, req.Nonce, settlement, domain.RequestStatusFailed); err != nil {
		s.log.Error().Err(err).Str("nonce", req.Nonce).Msg("failed to record settlement failure")
	}

	s.log.Warn().
		Err(cause).
		Str("nonce", req.Nonce).
		Str("payer_owner", req.PayerOwnerID).
		Msg("settlement attempt failed")

	return cause
}
