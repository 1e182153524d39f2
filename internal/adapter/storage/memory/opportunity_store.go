package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"

	"github.com/google/uuid"
)

// OpportunityStore is the in-memory OpportunityStore. The store lock makes
// Reserve's check-and-decrement a single atomic step: concurrent investors
// can never both pass the remaining-amount test against a stale value.
type OpportunityStore struct {
	mu            sync.RWMutex
	opportunities map[uuid.UUID]*domain.InvestmentOpportunity
}

// NewOpportunityStore creates an empty in-memory opportunity store.
func NewOpportunityStore() *OpportunityStore {
	return &OpportunityStore{opportunities: make(map[uuid.UUID]*domain.InvestmentOpportunity)}
}

func (s *OpportunityStore) Create(_ context.Context, opportunity *domain.InvestmentOpportunity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.opportunities[opportunity.ID]; ok {
		return apperror.ErrStorage(nil)
	}
	s.opportunities[opportunity.ID] = cloneOpportunity(opportunity)
	return nil
}

func (s *OpportunityStore) Get(_ context.Context, id uuid.UUID) (*domain.InvestmentOpportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.opportunities[id]
	if !ok {
		return nil, nil
	}
	return cloneOpportunity(o), nil
}

func (s *OpportunityStore) List(_ context.Context, filter ports.OpportunityFilter) ([]domain.InvestmentOpportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.InvestmentOpportunity
	for _, o := range s.opportunities {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.InvoiceID != nil && o.InvoiceID != *filter.InvoiceID {
			continue
		}
		out = append(out, *cloneOpportunity(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *OpportunityStore) Reserve(_ context.Context, id uuid.UUID, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.opportunities[id]
	if !ok {
		return 0, apperror.ErrOpportunityNotFound()
	}
	switch o.Status {
	case domain.OpportunityStatusFunded:
		return 0, apperror.ErrFullyFunded()
	case domain.OpportunityStatusExpired:
		return 0, apperror.ErrOpportunityExpired()
	}
	if amount > o.RemainingAmount {
		return 0, apperror.ErrExceedsRemaining(o.RemainingAmount)
	}
	o.RemainingAmount -= amount
	o.InvestorCount++
	return o.RemainingAmount, nil
}

func (s *OpportunityStore) Release(_ context.Context, id uuid.UUID, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.opportunities[id]
	if !ok {
		return apperror.ErrOpportunityNotFound()
	}
	o.RemainingAmount += amount
	o.InvestorCount--
	return nil
}

func (s *OpportunityStore) CommitInvestment(_ context.Context, id uuid.UUID, investmentID uuid.UUID, markFunded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.opportunities[id]
	if !ok {
		return apperror.ErrOpportunityNotFound()
	}
	o.InvestmentIDs = append(o.InvestmentIDs, investmentID)
	if markFunded && o.RemainingAmount == 0 && o.Status == domain.OpportunityStatusActive {
		o.Status = domain.OpportunityStatusFunded
	}
	return nil
}

func (s *OpportunityStore) SetStatus(_ context.Context, id uuid.UUID, from, to domain.OpportunityStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.opportunities[id]
	if !ok {
		return false, apperror.ErrOpportunityNotFound()
	}
	if o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

// ListActiveExpired implements ports.OpportunitySweepSource.
func (s *OpportunityStore) ListActiveExpired(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []uuid.UUID
	for id, o := range s.opportunities {
		if o.Status == domain.OpportunityStatusActive && now.After(o.ExpiresAt) {
			ids = append(ids, id)
			if limit > 0 && len(ids) >= limit {
				break
			}
		}
	}
	return ids, nil
}

func cloneOpportunity(o *domain.InvestmentOpportunity) *domain.InvestmentOpportunity {
	cp := *o
	cp.InvestmentIDs = append([]uuid.UUID(nil), o.InvestmentIDs...)
	return &cp
}
