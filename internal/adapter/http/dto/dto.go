package dto

// CreateAccountRequest is the request body for custodial account creation.
type CreateAccountRequest struct {
	OwnerID string `json:"owner_id" binding:"required,min=1,max=100"`
}

// AccountResponse is the response body for account queries. The
// authorization secret never leaves the registry.
type AccountResponse struct {
	OwnerID   string `json:"owner_id"`
	AccountID string `json:"account_id"`
	CreatedAt string `json:"created_at"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	OwnerID string `json:"owner_id"`
	Balance int64  `json:"balance"`
}

// CreditRequest is the request body for the simulated-ledger faucet.
type CreditRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// IssuePaymentRequest is the request body for issuing a payment request.
type IssuePaymentRequest struct {
	MerchantOwnerID string `json:"merchant_owner_id" binding:"required,min=1,max=100"`
	Amount          *int64 `json:"amount,omitempty"`
	TokenKind       string `json:"token_kind,omitempty"`
}

// SettlePaymentRequest is the request body for settling a payment request.
type SettlePaymentRequest struct {
	PayerOwnerID string `json:"payer_owner_id" binding:"required,min=1,max=100"`
	Amount       *int64 `json:"amount,omitempty"`
}

// SettlementResponse is the terminal outcome attached to a settled request.
type SettlementResponse struct {
	PayerOwnerID  string `json:"payer_owner_id"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transaction_id,omitempty"`
	Error         string `json:"error,omitempty"`
	SettledAt     string `json:"settled_at"`
}

// PaymentRequestResponse is the response body for payment request queries.
type PaymentRequestResponse struct {
	Nonce           string              `json:"nonce"`
	MerchantOwnerID string              `json:"merchant_owner_id"`
	Amount          *int64              `json:"amount,omitempty"`
	TokenKind       string              `json:"token_kind"`
	Status          string              `json:"status"`
	PaymentURL      string              `json:"payment_url"`
	CreatedAt       string              `json:"created_at"`
	ExpiresAt       string              `json:"expires_at"`
	Settlement      *SettlementResponse `json:"settlement,omitempty"`
}

// SeedInvoiceRequest is the request body for seeding a demo invoice.
type SeedInvoiceRequest struct {
	MerchantOwnerID string `json:"merchant_owner_id" binding:"required,min=1,max=100"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
}

// InvoiceResponse is the response body for invoice queries.
type InvoiceResponse struct {
	ID              string `json:"id"`
	MerchantOwnerID string `json:"merchant_owner_id"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
}

// CreateOpportunityRequest is the request body for opening a funding pool.
type CreateOpportunityRequest struct {
	InvoiceID            string  `json:"invoice_id" binding:"required,uuid"`
	InvestmentPercentage float64 `json:"investment_percentage" binding:"required,gt=0,lte=100"`
	MinimumInvestment    int64   `json:"minimum_investment" binding:"required,gt=0"`
}

// OpportunityResponse is the response body for opportunity queries.
type OpportunityResponse struct {
	ID                    string   `json:"id"`
	InvoiceID             string   `json:"invoice_id"`
	MerchantOwnerID       string   `json:"merchant_owner_id"`
	TotalInvestmentAmount int64    `json:"total_investment_amount"`
	MinimumInvestment     int64    `json:"minimum_investment"`
	RemainingAmount       int64    `json:"remaining_amount"`
	InvestorCount         int      `json:"investor_count"`
	InvestmentIDs         []string `json:"investment_ids"`
	Status                string   `json:"status"`
	CreatedAt             string   `json:"created_at"`
	ExpiresAt             string   `json:"expires_at"`
}

// InvestRequest is the request body for one investment attempt.
type InvestRequest struct {
	InvestorOwnerID string `json:"investor_owner_id" binding:"required,min=1,max=100"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
}

// InvestmentResponse is the response body for investment queries.
type InvestmentResponse struct {
	ID              string `json:"id"`
	OpportunityID   string `json:"opportunity_id"`
	InvestorOwnerID string `json:"investor_owner_id"`
	Amount          int64  `json:"amount"`
	ExpectedReturn  int64  `json:"expected_return"`
	Status          string `json:"status"`
	TransactionID   string `json:"transaction_id,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// PortfolioResponse is the response body for portfolio queries.
type PortfolioResponse struct {
	OwnerID             string   `json:"owner_id"`
	TotalInvested       int64    `json:"total_invested"`
	TotalExpectedReturn int64    `json:"total_expected_return"`
	InvestmentIDs       []string `json:"investment_ids"`
}
