package memory

import (
	"context"
	"sync"

	"custodial-payment-platform/internal/core/domain"

	"github.com/google/uuid"
)

// PortfolioStore maintains the in-memory per-investor aggregate.
type PortfolioStore struct {
	mu         sync.RWMutex
	portfolios map[string]*domain.InvestorPortfolio
}

// NewPortfolioStore creates an empty in-memory portfolio store.
func NewPortfolioStore() *PortfolioStore {
	return &PortfolioStore{portfolios: make(map[string]*domain.InvestorPortfolio)}
}

// Get returns an empty portfolio for investors with no completed investments.
func (s *PortfolioStore) Get(_ context.Context, ownerID string) (*domain.InvestorPortfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.portfolios[ownerID]
	if !ok {
		return &domain.InvestorPortfolio{OwnerID: ownerID}, nil
	}
	cp := *p
	cp.InvestmentIDs = append([]uuid.UUID(nil), p.InvestmentIDs...)
	return &cp, nil
}

func (s *PortfolioStore) ApplyInvestment(_ context.Context, investment *domain.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.portfolios[investment.InvestorOwnerID]
	if !ok {
		p = &domain.InvestorPortfolio{OwnerID: investment.InvestorOwnerID}
		s.portfolios[investment.InvestorOwnerID] = p
	}
	p.TotalInvested += investment.Amount
	p.TotalExpectedReturn += investment.ExpectedReturn
	p.InvestmentIDs = append(p.InvestmentIDs, investment.ID)
	return nil
}
