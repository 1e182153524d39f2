package domain

import "github.com/google/uuid"

// InvestorPortfolio is the per-investor aggregate over completed investments.
// It is updated incrementally whenever an investment completes.
type InvestorPortfolio struct {
	OwnerID             string      `json:"owner_id"`
	TotalInvested       int64       `json:"total_invested"`
	TotalExpectedReturn int64       `json:"total_expected_return"`
	InvestmentIDs       []uuid.UUID `json:"investment_ids"`
}
