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

// Faucet credits a ledger account out of thin air. Only the simulated
// network implements it; the route is absent against a real ledger.
type Faucet interface {
	Credit(accountID string, amount int64) error
}

// AccountHandler handles custodial account endpoints.
type AccountHandler struct {
	registry ports.RegistryService
	faucet   Faucet // nil = faucet disabled
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(registry ports.RegistryService, faucet Faucet) *AccountHandler {
	return &AccountHandler{registry: registry, faucet: faucet}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.registry.CreateAccount(c.Request.Context(), req.OwnerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toAccountResponse(account))
}

// Get handles GET /api/v1/accounts/:owner_id.
func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.registry.Get(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAccountResponse(account))
}

// GetBalance handles GET /api/v1/accounts/:owner_id/balance.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	ownerID := c.Param("owner_id")
	balance, err := h.registry.GetBalance(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{OwnerID: ownerID, Balance: balance})
}

// Credit handles POST /api/v1/accounts/:owner_id/credit (simulated ledger
// only).
func (h *AccountHandler) Credit(c *gin.Context) {
	var req dto.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.registry.Get(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.faucet.Credit(account.AccountID, req.Amount); err != nil {
		response.Error(c, apperror.ErrNetwork(err))
		return
	}

	balance, err := h.registry.GetBalance(c.Request.Context(), account.OwnerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{OwnerID: account.OwnerID, Balance: balance})
}

func toAccountResponse(a *domain.CustodialAccount) dto.AccountResponse {
	return dto.AccountResponse{
		OwnerID:   a.OwnerID,
		AccountID: a.AccountID,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
