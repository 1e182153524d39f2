package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"

	"github.com/rs/zerolog"
)

// nonceIssueAttempts bounds the re-roll loop on nonce collision. With
// 128-bit nonces a second collision in a row means the RNG is broken.
const nonceIssueAttempts = 5

// RequestServiceImpl implements ports.RequestService: the broker that issues
// and tracks nonce-keyed payment intents with a TTL.
type RequestServiceImpl struct {
	requests    ports.PaymentRequestStore
	ttl         time.Duration
	defaultKind domain.TokenKind
	now         func() time.Time
	log         zerolog.Logger
}

// NewRequestService creates a new RequestServiceImpl. now is the clock used
// for expiry derivation; pass nil for wall-clock time.
func NewRequestService(
	requests ports.PaymentRequestStore,
	ttl time.Duration,
	defaultKind domain.TokenKind,
	now func() time.Time,
	log zerolog.Logger,
) *RequestServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &RequestServiceImpl{
		requests:    requests,
		ttl:         ttl,
		defaultKind: defaultKind,
		now:         now,
		log:         log,
	}
}

// Issue creates a payment request with a collision-free nonce. The merchant
// account does not need to exist yet; that check is deferred to settlement.
func (s *RequestServiceImpl) Issue(ctx context.Context, req ports.IssueRequest) (*domain.PaymentRequest, error) {
	if req.MerchantOwnerID == "" {
		return nil, apperror.Validation("merchant owner id is required")
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	kind := req.TokenKind
	if kind == "" {
		kind = s.defaultKind
	}

	now := s.now().UTC()
	for attempt := 0; attempt < nonceIssueAttempts; attempt++ {
		nonce, err := newNonce()
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("generate nonce: %w", err))
		}

		request := &domain.PaymentRequest{
			Nonce:           nonce,
			MerchantOwnerID: req.MerchantOwnerID,
			Amount:          req.Amount,
			TokenKind:       kind,
			Status:          domain.RequestStatusPending,
			CreatedAt:       now,
			ExpiresAt:       now.Add(s.ttl),
		}

		err = s.requests.Create(ctx, request)
		if err == nil {
			s.log.Info().
				Str("nonce", nonce).
				Str("merchant_owner", req.MerchantOwnerID).
				Time("expires_at", request.ExpiresAt).
				Msg("payment request issued")
			return request, nil
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.ErrNonceCollision().Code {
			// Collision within the active set: re-roll.
			continue
		}
		return nil, apperror.InternalError(fmt.Errorf("store payment request: %w", err))
	}
	return nil, apperror.InternalError(fmt.Errorf("nonce collision persisted after %d attempts", nonceIssueAttempts))
}

// Lookup returns the stored record without status derivation.
func (s *RequestServiceImpl) Lookup(ctx context.Context, nonce string) (*domain.PaymentRequest, error) {
	if !domain.IsValidNonce(nonce) {
		return nil, apperror.ErrInvalidNonce()
	}
	request, err := s.requests.Get(ctx, nonce)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup payment request: %w", err))
	}
	if request == nil {
		return nil, apperror.ErrRequestNotFound()
	}
	return request, nil
}

// Status returns the record with the status coerced to expired at read time
// when the deadline has passed. The stored record is never mutated here.
func (s *RequestServiceImpl) Status(ctx context.Context, nonce string) (*domain.PaymentRequest, error) {
	request, err := s.Lookup(ctx, nonce)
	if err != nil {
		return nil, err
	}
	request.Status = request.EffectiveStatus(s.now())
	return request, nil
}

// Cancel transitions a pending request to cancelled. Any other lifecycle
// state, including derived expiry, is rejected.
func (s *RequestServiceImpl) Cancel(ctx context.Context, nonce string) (*domain.PaymentRequest, error) {
	request, err := s.Lookup(ctx, nonce)
	if err != nil {
		return nil, err
	}
	if effective := request.EffectiveStatus(s.now()); effective != domain.RequestStatusPending {
		return nil, apperror.ErrInvalidRequestState(string(effective))
	}

	ok, err := s.requests.TransitionStatus(ctx, nonce, domain.RequestStatusPending, domain.RequestStatusCancelled)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("cancel payment request: %w", err))
	}
	if !ok {
		// Lost the race against a settlement attempt or another cancel.
		return nil, apperror.ErrInvalidRequestState(string(domain.RequestStatusProcessing))
	}

	s.log.Info().Str("nonce", nonce).Msg("payment request cancelled")

	request.Status = domain.RequestStatusCancelled
	return request, nil
}

// newNonce returns 32 lowercase hex characters (128 bits of randomness).
func newNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
