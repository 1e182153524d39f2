package ports

import (
	"context"

	"custodial-payment-platform/internal/core/domain"

	"github.com/google/uuid"
)

// --- Collaborator Ports (external capabilities) ---

// AccountIdentity is the ledger-side identity allocated for a new account.
type AccountIdentity struct {
	AccountID           string
	AuthorizationSecret string
}

// LedgerNetwork is the opaque external ledger capability. All calls may fail
// with a network error; this core never retries them.
type LedgerNetwork interface {
	CreateAccount(ctx context.Context) (*AccountIdentity, error)
	GetBalance(ctx context.Context, accountID string) (int64, error)
	// Transfer moves amount between ledger accounts and returns the ledger
	// transaction id.
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount int64, kind domain.TokenKind) (string, error)
}

// InvoiceStore is the external invoice collaborator.
type InvoiceStore interface {
	// Get returns (nil, nil) when the invoice is unknown.
	Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
}

// --- Service Ports (Business Logic) ---

// RegistryService maps owners to custodial accounts and carries the transfer
// capability consumed by settlement and investment.
type RegistryService interface {
	CreateAccount(ctx context.Context, ownerID string) (*domain.CustodialAccount, error)
	Get(ctx context.Context, ownerID string) (*domain.CustodialAccount, error)
	GetBalance(ctx context.Context, ownerID string) (int64, error)
	// Transfer resolves both owners and delegates to the ledger network.
	Transfer(ctx context.Context, fromOwnerID, toOwnerID string, amount int64, kind domain.TokenKind) (string, error)
}

// IssueRequest holds validated input for issuing a payment request.
type IssueRequest struct {
	MerchantOwnerID string
	Amount          *int64 // nil = payer decides at settlement
	TokenKind       domain.TokenKind
}

// RequestService issues and tracks nonce-keyed payment intents.
type RequestService interface {
	Issue(ctx context.Context, req IssueRequest) (*domain.PaymentRequest, error)
	Lookup(ctx context.Context, nonce string) (*domain.PaymentRequest, error)
	Cancel(ctx context.Context, nonce string) (*domain.PaymentRequest, error)
	// Status returns the stored record with the status coerced to expired at
	// read time when the deadline has passed.
	Status(ctx context.Context, nonce string) (*domain.PaymentRequest, error)
}

// SettleRequest holds validated input for a settlement attempt.
type SettleRequest struct {
	Nonce          string
	PayerOwnerID   string
	AmountOverride *int64 // nil = use the amount on the request
}

// SettlementService executes the fund transfer for a payment request and
// records its terminal outcome exactly once.
type SettlementService interface {
	Settle(ctx context.Context, req SettleRequest) (*domain.PaymentRequest, error)
}

// CreateOpportunityRequest holds validated input for opening a funding pool.
type CreateOpportunityRequest struct {
	InvoiceID            uuid.UUID
	InvestmentPercentage float64 // share of the invoice opened for funding, in percent
	MinimumInvestment    int64
}

// InvestRequest holds validated input for one investment attempt.
type InvestRequest struct {
	OpportunityID   uuid.UUID
	InvestorOwnerID string
	Amount          int64
}

// InvestmentService runs the investment funding engine.
type InvestmentService interface {
	CreateOpportunity(ctx context.Context, req CreateOpportunityRequest) (*domain.InvestmentOpportunity, error)
	Invest(ctx context.Context, req InvestRequest) (*domain.Investment, error)
	GetOpportunity(ctx context.Context, id uuid.UUID) (*domain.InvestmentOpportunity, error)
	ListOpportunities(ctx context.Context, filter OpportunityFilter) ([]domain.InvestmentOpportunity, error)
	GetInvestment(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
	GetPortfolio(ctx context.Context, investorOwnerID string) (*domain.InvestorPortfolio, error)
	// DistributeReturns settles the expected return of a completed investment
	// back to the investor and marks it returned.
	DistributeReturns(ctx context.Context, investmentID uuid.UUID) (*domain.Investment, error)
}
