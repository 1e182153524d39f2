package memory

import (
	"context"
	"sync"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"
)

// RequestStore is the in-memory PaymentRequestStore. Every status mutation
// happens under the store lock, so the compare-and-set transitions are
// atomic with respect to concurrent settlement attempts.
type RequestStore struct {
	mu       sync.RWMutex
	requests map[string]*domain.PaymentRequest
}

// NewRequestStore creates an empty in-memory payment request store.
func NewRequestStore() *RequestStore {
	return &RequestStore{requests: make(map[string]*domain.PaymentRequest)}
}

func (s *RequestStore) Create(_ context.Context, request *domain.PaymentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[request.Nonce]; ok {
		return apperror.ErrNonceCollision()
	}
	s.requests[request.Nonce] = cloneRequest(request)
	return nil
}

func (s *RequestStore) Get(_ context.Context, nonce string) (*domain.PaymentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[nonce]
	if !ok {
		return nil, nil
	}
	return cloneRequest(r), nil
}

func (s *RequestStore) TransitionStatus(_ context.Context, nonce string, from, to domain.RequestStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[nonce]
	if !ok {
		return false, apperror.ErrRequestNotFound()
	}
	if r.Status != from {
		return false, nil
	}
	r.Status = to
	return true, nil
}

func (s *RequestStore) RecordSettlement(_ context.Context, nonce string, settlement *domain.SettlementRecord, to domain.RequestStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[nonce]
	if !ok {
		return false, apperror.ErrRequestNotFound()
	}
	// Terminal writes are only accepted from processing, guarding against a
	// stale or duplicate settlement thread.
	if r.Status != domain.RequestStatusProcessing {
		return false, nil
	}
	cp := *settlement
	r.Settlement = &cp
	r.Status = to
	return true, nil
}

// ListPendingExpired implements ports.RequestSweepSource.
func (s *RequestStore) ListPendingExpired(_ context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var nonces []string
	for nonce, r := range s.requests {
		if r.Status == domain.RequestStatusPending && now.After(r.ExpiresAt) {
			nonces = append(nonces, nonce)
			if limit > 0 && len(nonces) >= limit {
				break
			}
		}
	}
	return nonces, nil
}

func cloneRequest(r *domain.PaymentRequest) *domain.PaymentRequest {
	cp := *r
	if r.Amount != nil {
		amount := *r.Amount
		cp.Amount = &amount
	}
	if r.Settlement != nil {
		settlement := *r.Settlement
		cp.Settlement = &settlement
	}
	return &cp
}
