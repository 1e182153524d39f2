package memory

import (
	"context"
	"sort"
	"sync"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"

	"github.com/google/uuid"
)

// InvestmentStore is the in-memory InvestmentStore.
type InvestmentStore struct {
	mu          sync.RWMutex
	investments map[uuid.UUID]*domain.Investment
}

// NewInvestmentStore creates an empty in-memory investment store.
func NewInvestmentStore() *InvestmentStore {
	return &InvestmentStore{investments: make(map[uuid.UUID]*domain.Investment)}
}

func (s *InvestmentStore) Create(_ context.Context, investment *domain.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.investments[investment.ID]; ok {
		return apperror.ErrStorage(nil)
	}
	cp := *investment
	s.investments[investment.ID] = &cp
	return nil
}

func (s *InvestmentStore) Get(_ context.Context, id uuid.UUID) (*domain.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.investments[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (s *InvestmentStore) ListByOpportunity(_ context.Context, opportunityID uuid.UUID) ([]domain.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Investment
	for _, inv := range s.investments {
		if inv.OpportunityID == opportunityID {
			out = append(out, *inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InvestmentStore) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.InvestmentStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.investments[id]
	if !ok {
		return false, apperror.ErrInvestmentNotFound()
	}
	if inv.Status != from {
		return false, nil
	}
	inv.Status = to
	return true, nil
}
