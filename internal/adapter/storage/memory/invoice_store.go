package memory

import (
	"context"
	"sync"

	"custodial-payment-platform/internal/core/domain"

	"github.com/google/uuid"
)

// InvoiceStore is an in-memory stand-in for the external invoice
// collaborator. Put exists so demos and tests can seed invoices; the core
// only ever reads through ports.InvoiceStore.
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices map[uuid.UUID]*domain.Invoice
}

// NewInvoiceStore creates an empty in-memory invoice store.
func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{invoices: make(map[uuid.UUID]*domain.Invoice)}
}

func (s *InvoiceStore) Get(_ context.Context, id uuid.UUID) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

// Put stores or replaces an invoice.
func (s *InvoiceStore) Put(_ context.Context, invoice *domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *invoice
	s.invoices[invoice.ID] = &cp
	return nil
}
