package domain

import "github.com/google/uuid"

// InvoiceStatus is the external lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusActive InvoiceStatus = "active"
	InvoiceStatusClosed InvoiceStatus = "closed"
)

// Invoice is the read model consumed from the external invoice store.
// Only active invoices can back a funding opportunity.
type Invoice struct {
	ID              uuid.UUID     `json:"id"`
	MerchantOwnerID string        `json:"merchant_owner_id"`
	Amount          int64         `json:"amount"`
	Status          InvoiceStatus `json:"status"`
}

// IsActive returns true if the invoice can back a new opportunity.
func (i *Invoice) IsActive() bool {
	return i.Status == InvoiceStatusActive
}
