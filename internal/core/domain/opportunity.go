package domain

import (
	"time"

	"github.com/google/uuid"
)

// OpportunityStatus represents the lifecycle state of a funding pool.
type OpportunityStatus string

const (
	OpportunityStatusActive  OpportunityStatus = "active"
	OpportunityStatusFunded  OpportunityStatus = "funded"
	OpportunityStatusExpired OpportunityStatus = "expired"
)

// InvestmentOpportunity is a finite-capacity pool representing the fundable
// fraction of an invoice. RemainingAmount is the invariant-bearing counter:
// it always equals TotalInvestmentAmount minus the sum of completed
// investment amounts, and never goes negative.
type InvestmentOpportunity struct {
	ID                    uuid.UUID         `json:"id"`
	InvoiceID             uuid.UUID         `json:"invoice_id"`
	MerchantOwnerID       string            `json:"merchant_owner_id"`
	TotalInvestmentAmount int64             `json:"total_investment_amount"`
	MinimumInvestment     int64             `json:"minimum_investment"`
	RemainingAmount       int64             `json:"remaining_amount"`
	InvestorCount         int               `json:"investor_count"`
	InvestmentIDs         []uuid.UUID       `json:"investment_ids"`
	Status                OpportunityStatus `json:"status"`
	CreatedAt             time.Time         `json:"created_at"`
	ExpiresAt             time.Time         `json:"expires_at"`
}

// EffectiveStatus derives the read-time status: an active opportunity past
// its deadline reads as expired.
func (o *InvestmentOpportunity) EffectiveStatus(now time.Time) OpportunityStatus {
	if o.Status == OpportunityStatusActive && now.After(o.ExpiresAt) {
		return OpportunityStatusExpired
	}
	return o.Status
}
