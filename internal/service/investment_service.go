package service

import (
	"context"
	"fmt"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// InvestmentServiceImpl implements ports.InvestmentService.
//
// The funding invariant lives in OpportunityStore.Reserve: the pool check and
// decrement happen as one atomic step, so concurrent investors can never
// over-fund the pool. Every failure after a successful reservation releases
// it before returning.
type InvestmentServiceImpl struct {
	opportunities  ports.OpportunityStore
	investments    ports.InvestmentStore
	portfolios     ports.PortfolioStore
	invoices       ports.InvoiceStore
	registry       ports.RegistryService
	opportunityTTL time.Duration
	returnRate     decimal.Decimal
	now            func() time.Time
	log            zerolog.Logger
}

// NewInvestmentService creates a new InvestmentServiceImpl. returnRate is the
// fractional yield applied on top of the principal (0.05 = 5%). now is the
// clock used for expiry derivation; pass nil for wall-clock time.
func NewInvestmentService(
	opportunities ports.OpportunityStore,
	investments ports.InvestmentStore,
	portfolios ports.PortfolioStore,
	invoices ports.InvoiceStore,
	registry ports.RegistryService,
	opportunityTTL time.Duration,
	returnRate float64,
	now func() time.Time,
	log zerolog.Logger,
) *InvestmentServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &InvestmentServiceImpl{
		opportunities:  opportunities,
		investments:    investments,
		portfolios:     portfolios,
		invoices:       invoices,
		registry:       registry,
		opportunityTTL: opportunityTTL,
		returnRate:     decimal.NewFromFloat(returnRate),
		now:            now,
		log:            log,
	}
}

// CreateOpportunity opens a funding pool against an active invoice. The pool
// size is the requested percentage of the invoice amount, rounded down to a
// whole token unit.
func (s *InvestmentServiceImpl) CreateOpportunity(ctx context.Context, req ports.CreateOpportunityRequest) (*domain.InvestmentOpportunity, error) {
	if req.InvestmentPercentage <= 0 || req.InvestmentPercentage > 100 {
		return nil, apperror.Validation("investment percentage must be in (0, 100]")
	}
	if req.MinimumInvestment <= 0 {
		return nil, apperror.Validation("minimum investment must be a positive integer")
	}

	invoice, err := s.invoices.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrInvoiceNotFound()
	}
	if !invoice.IsActive() {
		return nil, apperror.ErrInvoiceNotActive()
	}

	total := decimal.NewFromInt(invoice.Amount).
		Mul(decimal.NewFromFloat(req.InvestmentPercentage)).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart()
	if total <= 0 {
		return nil, apperror.Validation("investment pool rounds down to zero")
	}
	if req.MinimumInvestment > total {
		return nil, apperror.Validation("minimum investment exceeds the pool size")
	}

	now := s.now().UTC()
	opportunity := &domain.InvestmentOpportunity{
		ID:                    uuid.New(),
		InvoiceID:             invoice.ID,
		MerchantOwnerID:       invoice.MerchantOwnerID,
		TotalInvestmentAmount: total,
		MinimumInvestment:     req.MinimumInvestment,
		RemainingAmount:       total,
		InvestmentIDs:         []uuid.UUID{},
		Status:                domain.OpportunityStatusActive,
		CreatedAt:             now,
		ExpiresAt:             now.Add(s.opportunityTTL),
	}
	if err := s.opportunities.Create(ctx, opportunity); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store opportunity: %w", err))
	}

	s.log.Info().
		Str("opportunity_id", opportunity.ID.String()).
		Str("invoice_id", invoice.ID.String()).
		Int64("total", total).
		Msg("investment opportunity created")

	return opportunity, nil
}

// Invest reserves pool capacity, transfers the principal to the merchant and
// records the investment. The reservation is released on every failure after
// Reserve succeeds.
func (s *InvestmentServiceImpl) Invest(ctx context.Context, req ports.InvestRequest) (*domain.Investment, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.InvestorOwnerID == "" {
		return nil, apperror.Validation("investor owner id is required")
	}

	opportunity, err := s.opportunities.Get(ctx, req.OpportunityID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup opportunity: %w", err))
	}
	if opportunity == nil {
		return nil, apperror.ErrOpportunityNotFound()
	}

	switch opportunity.EffectiveStatus(s.now()) {
	case domain.OpportunityStatusFunded:
		return nil, apperror.ErrFullyFunded()
	case domain.OpportunityStatusExpired:
		// Persist the derived expiry so the store rejects later reservations
		// without re-deriving. Losing the CAS just means someone else did it.
		if opportunity.Status == domain.OpportunityStatusActive {
			if _, err := s.opportunities.SetStatus(ctx, opportunity.ID, domain.OpportunityStatusActive, domain.OpportunityStatusExpired); err != nil {
				s.log.Error().Err(err).Str("opportunity_id", opportunity.ID.String()).Msg("failed to persist opportunity expiry")
			}
		}
		return nil, apperror.ErrOpportunityExpired()
	}

	if req.Amount < opportunity.MinimumInvestment {
		return nil, apperror.ErrBelowMinimum(opportunity.MinimumInvestment)
	}

	remaining, err := s.opportunities.Reserve(ctx, opportunity.ID, req.Amount)
	if err != nil {
		return nil, err
	}

	// From here the reservation is held; every exit path below either commits
	// the investment or releases it.
	if _, err := s.registry.Get(ctx, req.InvestorOwnerID); err != nil {
		return nil, s.release(ctx, opportunity.ID, req.Amount, err)
	}
	if _, err := s.registry.Get(ctx, opportunity.MerchantOwnerID); err != nil {
		return nil, s.release(ctx, opportunity.ID, req.Amount, err)
	}

	balance, err := s.registry.GetBalance(ctx, req.InvestorOwnerID)
	if err != nil {
		return nil, s.release(ctx, opportunity.ID, req.Amount, err)
	}
	if balance < req.Amount {
		return nil, s.release(ctx, opportunity.ID, req.Amount, apperror.ErrInsufficientFunds())
	}

	txID, err := s.registry.Transfer(ctx, req.InvestorOwnerID, opportunity.MerchantOwnerID, req.Amount, domain.DefaultTokenKind)
	if err != nil {
		return nil, s.release(ctx, opportunity.ID, req.Amount, err)
	}

	investment := &domain.Investment{
		ID:              uuid.New(),
		OpportunityID:   opportunity.ID,
		InvestorOwnerID: req.InvestorOwnerID,
		Amount:          req.Amount,
		ExpectedReturn:  s.expectedReturn(req.Amount),
		Status:          domain.InvestmentStatusCompleted,
		TransactionID:   txID,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.investments.Create(ctx, investment); err != nil {
		// The transfer already happened; surface the storage failure rather
		// than attempting a ledger reversal here.
		return nil, apperror.ErrStorage(fmt.Errorf("store investment: %w", err))
	}

	if err := s.opportunities.CommitInvestment(ctx, opportunity.ID, investment.ID, remaining == 0); err != nil {
		s.log.Error().Err(err).Str("opportunity_id", opportunity.ID.String()).Msg("failed to commit investment to opportunity")
	}
	if err := s.portfolios.ApplyInvestment(ctx, investment); err != nil {
		s.log.Error().Err(err).Str("investor_owner", req.InvestorOwnerID).Msg("failed to update investor portfolio")
	}

	s.log.Info().
		Str("investment_id", investment.ID.String()).
		Str("opportunity_id", opportunity.ID.String()).
		Str("investor_owner", req.InvestorOwnerID).
		Int64("amount", req.Amount).
		Int64("remaining", remaining).
		Msg("investment completed")

	return investment, nil
}

// GetOpportunity returns the opportunity with its status derived at read time.
func (s *InvestmentServiceImpl) GetOpportunity(ctx context.Context, id uuid.UUID) (*domain.InvestmentOpportunity, error) {
	opportunity, err := s.opportunities.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup opportunity: %w", err))
	}
	if opportunity == nil {
		return nil, apperror.ErrOpportunityNotFound()
	}
	opportunity.Status = opportunity.EffectiveStatus(s.now())
	return opportunity, nil
}

// ListOpportunities returns opportunities matching the filter, statuses
// derived at read time.
func (s *InvestmentServiceImpl) ListOpportunities(ctx context.Context, filter ports.OpportunityFilter) ([]domain.InvestmentOpportunity, error) {
	opportunities, err := s.opportunities.List(ctx, filter)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list opportunities: %w", err))
	}
	now := s.now()
	for i := range opportunities {
		opportunities[i].Status = opportunities[i].EffectiveStatus(now)
	}
	return opportunities, nil
}

func (s *InvestmentServiceImpl) GetInvestment(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	investment, err := s.investments.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup investment: %w", err))
	}
	if investment == nil {
		return nil, apperror.ErrInvestmentNotFound()
	}
	return investment, nil
}

func (s *InvestmentServiceImpl) GetPortfolio(ctx context.Context, investorOwnerID string) (*domain.InvestorPortfolio, error) {
	if investorOwnerID == "" {
		return nil, apperror.Validation("investor owner id is required")
	}
	portfolio, err := s.portfolios.Get(ctx, investorOwnerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup portfolio: %w", err))
	}
	return portfolio, nil
}

// DistributeReturns pays the expected return back to the investor and marks
// the investment returned. The completed->returned CAS makes the payout
// single-shot.
func (s *InvestmentServiceImpl) DistributeReturns(ctx context.Context, investmentID uuid.UUID) (*domain.Investment, error) {
	investment, err := s.investments.Get(ctx, investmentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup investment: %w", err))
	}
	if investment == nil {
		return nil, apperror.ErrInvestmentNotFound()
	}
	if investment.Status != domain.InvestmentStatusCompleted {
		return nil, apperror.ErrInvestmentNotCompleted()
	}

	opportunity, err := s.opportunities.Get(ctx, investment.OpportunityID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup opportunity: %w", err))
	}
	if opportunity == nil {
		return nil, apperror.ErrOpportunityNotFound()
	}

	ok, err := s.investments.UpdateStatus(ctx, investment.ID, domain.InvestmentStatusCompleted, domain.InvestmentStatusReturned)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark investment returned: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInvestmentNotCompleted()
	}

	if _, err := s.registry.Transfer(ctx, opportunity.MerchantOwnerID, investment.InvestorOwnerID, investment.ExpectedReturn, domain.DefaultTokenKind); err != nil {
		// Put the investment back so the payout can be retried.
		if _, revertErr := s.investments.UpdateStatus(ctx, investment.ID, domain.InvestmentStatusReturned, domain.InvestmentStatusCompleted); revertErr != nil {
			s.log.Error().Err(revertErr).Str("investment_id", investment.ID.String()).Msg("failed to revert investment status after payout failure")
		}
		return nil, err
	}

	investment.Status = domain.InvestmentStatusReturned

	s.log.Info().
		Str("investment_id", investment.ID.String()).
		Str("investor_owner", investment.InvestorOwnerID).
		Int64("expected_return", investment.ExpectedReturn).
		Msg("investment return distributed")

	return investment, nil
}

// expectedReturn computes principal * (1 + rate), rounded to a whole token
// unit.
func (s *InvestmentServiceImpl) expectedReturn(amount int64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(1).Add(s.returnRate)).
		Round(0).
		IntPart()
}

// release undoes a pool reservation and returns the causing error.
func (s *InvestmentServiceImpl) release(ctx context.Context, id uuid.UUID, amount int64, cause error) error {
	if err := s.opportunities.Release(ctx, id, amount); err != nil {
		s.log.Error().Err(err).Str("opportunity_id", id.String()).Int64("amount", amount).Msg("failed to release pool reservation")
	}

	s.log.Warn().
		Err(cause).
		Str("opportunity_id", id.String()).
		Int64("amount", amount).
		Msg("investment attempt failed after reservation")

	return cause
}
