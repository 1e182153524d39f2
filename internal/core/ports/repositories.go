package ports

import (
	"context"
	"time"

	"custodial-payment-platform/internal/core/domain"

	"github.com/google/uuid"
)

// AccountRepository defines persistence operations for custodial accounts.
type AccountRepository interface {
	// Create stores a new account. Returns apperror.ErrAccountExists if the
	// owner already has one.
	Create(ctx context.Context, account *domain.CustodialAccount) error
	// GetByOwner returns (nil, nil) when the owner has no account.
	GetByOwner(ctx context.Context, ownerID string) (*domain.CustodialAccount, error)
}

// PaymentRequestStore defines persistence for nonce-keyed payment requests.
// The status-mutating methods are compare-and-set primitives: the store, not
// the caller, owns the atomicity of each transition, so two concurrent
// settlement attempts on the same nonce can never both pass the guard.
type PaymentRequestStore interface {
	// Create stores a new request. Returns apperror.ErrNonceCollision if the
	// nonce is already present.
	Create(ctx context.Context, request *domain.PaymentRequest) error
	// Get returns (nil, nil) when the nonce is unknown.
	Get(ctx context.Context, nonce string) (*domain.PaymentRequest, error)
	// TransitionStatus atomically moves the request from one status to
	// another. Returns false (with no mutation) if the stored status differs
	// from `from`, or an error if the nonce is unknown.
	TransitionStatus(ctx context.Context, nonce string, from, to domain.RequestStatus) (bool, error)
	// RecordSettlement atomically writes the terminal outcome, accepted only
	// while the stored status is processing. Returns false if the guard fails.
	RecordSettlement(ctx context.Context, nonce string, settlement *domain.SettlementRecord, to domain.RequestStatus) (bool, error)
}

// OpportunityFilter narrows ListOpportunities results. Nil fields match all.
type OpportunityFilter struct {
	Status    *domain.OpportunityStatus
	InvoiceID *uuid.UUID
}

// OpportunityStore defines persistence for investment opportunities.
//
// Reserve and Release form the reservation protocol: Reserve performs the
// check-and-decrement of the remaining pool amount (and the investor count
// increment) as one atomic step; Release is the compensating re-increment
// when a later step of the investment fails.
type OpportunityStore interface {
	Create(ctx context.Context, opportunity *domain.InvestmentOpportunity) error
	// Get returns (nil, nil) when the id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*domain.InvestmentOpportunity, error)
	List(ctx context.Context, filter OpportunityFilter) ([]domain.InvestmentOpportunity, error)
	// Reserve atomically checks amount <= remaining and, if so, decrements
	// the remaining amount and increments the investor count, returning the
	// remaining amount after the decrement. Fails with
	// apperror.ErrExceedsRemaining when the pool cannot hold the amount, or
	// with a state error when the opportunity is not active.
	Reserve(ctx context.Context, id uuid.UUID, amount int64) (int64, error)
	// Release undoes a reservation made by Reserve.
	Release(ctx context.Context, id uuid.UUID, amount int64) error
	// CommitInvestment appends the investment id and, when markFunded is set
	// and the remaining amount is zero, transitions the opportunity to funded.
	CommitInvestment(ctx context.Context, id uuid.UUID, investmentID uuid.UUID, markFunded bool) error
	// SetStatus atomically moves the opportunity between statuses. Returns
	// false if the stored status differs from `from`.
	SetStatus(ctx context.Context, id uuid.UUID, from, to domain.OpportunityStatus) (bool, error)
}

// InvestmentStore defines persistence for individual investments.
type InvestmentStore interface {
	Create(ctx context.Context, investment *domain.Investment) error
	// Get returns (nil, nil) when the id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
	ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]domain.Investment, error)
	// UpdateStatus atomically moves the investment between statuses. Returns
	// false if the stored status differs from `from`.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.InvestmentStatus) (bool, error)
}

// PortfolioStore maintains the per-investor aggregate.
type PortfolioStore interface {
	// Get returns an empty portfolio (zero totals) for unknown investors.
	Get(ctx context.Context, ownerID string) (*domain.InvestorPortfolio, error)
	// ApplyInvestment folds a completed investment into the aggregate.
	ApplyInvestment(ctx context.Context, investment *domain.Investment) error
}

// RequestSweepSource lists pending payment requests whose deadline has
// passed. Implemented by stores that can enumerate requests; the expiry
// sweeper is optional and statuses stay correct without it.
type RequestSweepSource interface {
	ListPendingExpired(ctx context.Context, now time.Time, limit int) ([]string, error)
}

// OpportunitySweepSource lists active opportunities whose deadline has passed.
type OpportunitySweepSource interface {
	ListActiveExpired(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}
