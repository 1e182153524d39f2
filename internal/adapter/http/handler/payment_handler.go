package handler

import (
	"time"

	"custodial-payment-platform/internal/adapter/http/dto"
	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"
	"custodial-payment-platform/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment request lifecycle endpoints.
type PaymentHandler struct {
	requestSvc    ports.RequestService
	settlementSvc ports.SettlementService
	baseURL       string
}

// NewPaymentHandler creates a new PaymentHandler. baseURL is the public base
// encoded into payment URLs.
func NewPaymentHandler(requestSvc ports.RequestService, settlementSvc ports.SettlementService, baseURL string) *PaymentHandler {
	return &PaymentHandler{
		requestSvc:    requestSvc,
		settlementSvc: settlementSvc,
		baseURL:       baseURL,
	}
}

// Issue handles POST /api/v1/payment-requests.
func (h *PaymentHandler) Issue(c *gin.Context) {
	var req dto.IssuePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	request, err := h.requestSvc.Issue(c.Request.Context(), ports.IssueRequest{
		MerchantOwnerID: req.MerchantOwnerID,
		Amount:          req.Amount,
		TokenKind:       domain.TokenKind(req.TokenKind),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.toRequestResponse(request))
}

// Status handles GET /api/v1/payment-requests/:nonce.
func (h *PaymentHandler) Status(c *gin.Context) {
	request, err := h.requestSvc.Status(c.Request.Context(), c.Param("nonce"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.toRequestResponse(request))
}

// Pay handles GET /pay — the landing endpoint behind the QR code. It returns
// the same view as Status, keyed by query parameter.
func (h *PaymentHandler) Pay(c *gin.Context) {
	request, err := h.requestSvc.Status(c.Request.Context(), c.Query("nonce"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.toRequestResponse(request))
}

// Cancel handles POST /api/v1/payment-requests/:nonce/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	request, err := h.requestSvc.Cancel(c.Request.Context(), c.Param("nonce"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.toRequestResponse(request))
}

// Settle handles POST /api/v1/payment-requests/:nonce/settle.
func (h *PaymentHandler) Settle(c *gin.Context) {
	var req dto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	request, err := h.settlementSvc.Settle(c.Request.Context(), ports.SettleRequest{
		Nonce:          c.Param("nonce"),
		PayerOwnerID:   req.PayerOwnerID,
		AmountOverride: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.toRequestResponse(request))
}

func (h *PaymentHandler) toRequestResponse(r *domain.PaymentRequest) dto.PaymentRequestResponse {
	resp := dto.PaymentRequestResponse{
		Nonce:           r.Nonce,
		MerchantOwnerID: r.MerchantOwnerID,
		Amount:          r.Amount,
		TokenKind:       string(r.TokenKind),
		Status:          string(r.Status),
		PaymentURL:      r.PaymentURL(h.baseURL),
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:       r.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if r.Settlement != nil {
		resp.Settlement = &dto.SettlementResponse{
			PayerOwnerID:  r.Settlement.PayerOwnerID,
			Amount:        r.Settlement.Amount,
			TransactionID: r.Settlement.TransactionID,
			Error:         r.Settlement.Error,
			SettledAt:     r.Settlement.SettledAt.UTC().Format(time.RFC3339),
		}
	}
	return resp
}
