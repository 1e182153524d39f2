package memory

import (
	"context"
	"sync"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"
)

// AccountStore is the in-memory AccountRepository. State is process-lifetime
// only; durability is a collaborator concern.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.CustodialAccount
}

// NewAccountStore creates an empty in-memory account repository.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*domain.CustodialAccount)}
}

func (s *AccountStore) Create(_ context.Context, account *domain.CustodialAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.OwnerID]; ok {
		return apperror.ErrAccountExists(account.OwnerID)
	}
	cp := *account
	s.accounts[account.OwnerID] = &cp
	return nil
}

func (s *AccountStore) GetByOwner(_ context.Context, ownerID string) (*domain.CustodialAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
