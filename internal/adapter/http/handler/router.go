package handler

import (
	"custodial-payment-platform/internal/adapter/http/middleware"
	"custodial-payment-platform/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RegistrySvc    ports.RegistryService
	RequestSvc     ports.RequestService
	SettlementSvc  ports.SettlementService
	InvestmentSvc  ports.InvestmentService
	InvoiceStore   ports.InvoiceStore
	InvoiceSeeder  InvoiceSeeder // nil = invoice seeding disabled
	Faucet         Faucet        // nil = faucet disabled
	BaseURL        string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies storage backends)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	paymentHandler := NewPaymentHandler(deps.RequestSvc, deps.SettlementSvc, deps.BaseURL)

	// Payment landing endpoint behind the QR code.
	r.GET("/pay", paymentHandler.Pay)

	// API v1 routes
	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.RegistrySvc, deps.Faucet)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", accountHandler.Create)
		accounts.GET("/:owner_id", accountHandler.Get)
		accounts.GET("/:owner_id/balance", accountHandler.GetBalance)
		if deps.Faucet != nil {
			accounts.POST("/:owner_id/credit", accountHandler.Credit)
		}
	}

	requests := v1.Group("/payment-requests")
	{
		requests.POST("", paymentHandler.Issue)
		requests.GET("/:nonce", paymentHandler.Status)
		requests.POST("/:nonce/cancel", paymentHandler.Cancel)
		requests.POST("/:nonce/settle", paymentHandler.Settle)
	}

	investmentHandler := NewInvestmentHandler(deps.InvestmentSvc, deps.InvoiceStore, deps.InvoiceSeeder)
	invoices := v1.Group("/invoices")
	{
		if deps.InvoiceSeeder != nil {
			invoices.POST("", investmentHandler.SeedInvoice)
		}
		invoices.GET("/:id", investmentHandler.GetInvoice)
	}

	opportunities := v1.Group("/opportunities")
	{
		opportunities.POST("", investmentHandler.CreateOpportunity)
		opportunities.GET("", investmentHandler.ListOpportunities)
		opportunities.GET("/:id", investmentHandler.GetOpportunity)
		opportunities.POST("/:id/invest", investmentHandler.Invest)
	}

	investments := v1.Group("/investments")
	{
		investments.GET("/:id", investmentHandler.GetInvestment)
		investments.POST("/:id/distribute", investmentHandler.DistributeReturns)
	}

	v1.GET("/portfolios/:owner_id", investmentHandler.GetPortfolio)

	return r
}
