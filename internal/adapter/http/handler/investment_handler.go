package handler

import (
	"context"
	"time"

	"custodial-payment-platform/internal/adapter/http/dto"
	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"
	"custodial-payment-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceSeeder stores an invoice. Only the in-memory demo invoice store
// implements it; against a real invoice system the seed route is absent.
type InvoiceSeeder interface {
	Put(ctx context.Context, invoice *domain.Invoice) error
}

// InvestmentHandler handles funding engine endpoints.
type InvestmentHandler struct {
	investmentSvc ports.InvestmentService
	invoices      ports.InvoiceStore
	seeder        InvoiceSeeder // nil = invoice seeding disabled
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentSvc ports.InvestmentService, invoices ports.InvoiceStore, seeder InvoiceSeeder) *InvestmentHandler {
	return &InvestmentHandler{
		investmentSvc: investmentSvc,
		invoices:      invoices,
		seeder:        seeder,
	}
}

// SeedInvoice handles POST /api/v1/invoices (demo invoice store only).
func (h *InvestmentHandler) SeedInvoice(c *gin.Context) {
	var req dto.SeedInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	invoice := &domain.Invoice{
		ID:              uuid.New(),
		MerchantOwnerID: req.MerchantOwnerID,
		Amount:          req.Amount,
		Status:          domain.InvoiceStatusActive,
	}
	if err := h.seeder.Put(c.Request.Context(), invoice); err != nil {
		response.Error(c, apperror.ErrStorage(err))
		return
	}
	response.Created(c, toInvoiceResponse(invoice))
}

// GetInvoice handles GET /api/v1/invoices/:id.
func (h *InvestmentHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice id"))
		return
	}
	invoice, err := h.invoices.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if invoice == nil {
		response.Error(c, apperror.ErrInvoiceNotFound())
		return
	}
	response.OK(c, toInvoiceResponse(invoice))
}

// CreateOpportunity handles POST /api/v1/opportunities.
func (h *InvestmentHandler) CreateOpportunity(c *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice id"))
		return
	}

	opportunity, err := h.investmentSvc.CreateOpportunity(c.Request.Context(), ports.CreateOpportunityRequest{
		InvoiceID:            invoiceID,
		InvestmentPercentage: req.InvestmentPercentage,
		MinimumInvestment:    req.MinimumInvestment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toOpportunityResponse(opportunity))
}

// ListOpportunities handles GET /api/v1/opportunities.
func (h *InvestmentHandler) ListOpportunities(c *gin.Context) {
	var filter ports.OpportunityFilter
	if s := c.Query("status"); s != "" {
		status := domain.OpportunityStatus(s)
		filter.Status = &status
	}
	if s := c.Query("invoice_id"); s != "" {
		invoiceID, err := uuid.Parse(s)
		if err != nil {
			response.Error(c, apperror.Validation("invalid invoice id"))
			return
		}
		filter.InvoiceID = &invoiceID
	}

	opportunities, err := h.investmentSvc.ListOpportunities(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		out = append(out, toOpportunityResponse(&opportunities[i]))
	}
	response.OK(c, out)
}

// GetOpportunity handles GET /api/v1/opportunities/:id.
func (h *InvestmentHandler) GetOpportunity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid opportunity id"))
		return
	}
	opportunity, err := h.investmentSvc.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toOpportunityResponse(opportunity))
}

// Invest handles POST /api/v1/opportunities/:id/invest.
func (h *InvestmentHandler) Invest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid opportunity id"))
		return
	}
	var req dto.InvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	investment, err := h.investmentSvc.Invest(c.Request.Context(), ports.InvestRequest{
		OpportunityID:   id,
		InvestorOwnerID: req.InvestorOwnerID,
		Amount:          req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toInvestmentResponse(investment))
}

// GetInvestment handles GET /api/v1/investments/:id.
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid investment id"))
		return
	}
	investment, err := h.investmentSvc.GetInvestment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toInvestmentResponse(investment))
}

// DistributeReturns handles POST /api/v1/investments/:id/distribute.
func (h *InvestmentHandler) DistributeReturns(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid investment id"))
		return
	}
	investment, err := h.investmentSvc.DistributeReturns(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toInvestmentResponse(investment))
}

// GetPortfolio handles GET /api/v1/portfolios/:owner_id.
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	portfolio, err := h.investmentSvc.GetPortfolio(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	ids := make([]string, 0, len(portfolio.InvestmentIDs))
	for _, id := range portfolio.InvestmentIDs {
		ids = append(ids, id.String())
	}
	response.OK(c, dto.PortfolioResponse{
		OwnerID:             portfolio.OwnerID,
		TotalInvested:       portfolio.TotalInvested,
		TotalExpectedReturn: portfolio.TotalExpectedReturn,
		InvestmentIDs:       ids,
	})
}

func toInvoiceResponse(i *domain.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:              i.ID.String(),
		MerchantOwnerID: i.MerchantOwnerID,
		Amount:          i.Amount,
		Status:          string(i.Status),
	}
}

func toOpportunityResponse(o *domain.InvestmentOpportunity) dto.OpportunityResponse {
	ids := make([]string, 0, len(o.InvestmentIDs))
	for _, id := range o.InvestmentIDs {
		ids = append(ids, id.String())
	}
	return dto.OpportunityResponse{
		ID:                    o.ID.String(),
		InvoiceID:             o.InvoiceID.String(),
		MerchantOwnerID:       o.MerchantOwnerID,
		TotalInvestmentAmount: o.TotalInvestmentAmount,
		MinimumInvestment:     o.MinimumInvestment,
		RemainingAmount:       o.RemainingAmount,
		InvestorCount:         o.InvestorCount,
		InvestmentIDs:         ids,
		Status:                string(o.Status),
		CreatedAt:             o.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:             o.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func toInvestmentResponse(i *domain.Investment) dto.InvestmentResponse {
	return dto.InvestmentResponse{
		ID:              i.ID.String(),
		OpportunityID:   i.OpportunityID.String(),
		InvestorOwnerID: i.InvestorOwnerID,
		Amount:          i.Amount,
		ExpectedReturn:  i.ExpectedReturn,
		Status:          string(i.Status),
		TransactionID:   i.TransactionID,
		CreatedAt:       i.CreatedAt.UTC().Format(time.RFC3339),
	}
}
