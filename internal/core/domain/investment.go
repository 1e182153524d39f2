package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentStatus represents the lifecycle state of a single investment.
type InvestmentStatus string

const (
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusReturned  InvestmentStatus = "returned"
)

// Investment is one investor's funded share of an opportunity. It is created
// only after the pool reservation and ledger transfer both succeeded, so a
// stored investment is always at least completed.
type Investment struct {
	ID              uuid.UUID        `json:"id"`
	OpportunityID   uuid.UUID        `json:"opportunity_id"`
	InvestorOwnerID string           `json:"investor_owner_id"`
	Amount          int64            `json:"amount"`
	ExpectedReturn  int64            `json:"expected_return"`
	Status          InvestmentStatus `json:"status"`
	TransactionID   string           `json:"transaction_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}
