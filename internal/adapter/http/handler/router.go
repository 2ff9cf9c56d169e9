package handler

import (
	"btc-payment-core/internal/adapter/http/middleware"
	redisStore "btc-payment-core/internal/adapter/storage/redis"
	"btc-payment-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds every request body, webhooks included.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OrderSvc       ports.OrderService
	InvoiceSvc     ports.InvoiceService
	WalletSvc      ports.WalletService
	WebhookSvc     ports.WebhookService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
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
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Processor callbacks (signature-authenticated) ---
	webhookHandler := NewWebhookHandler(deps.WebhookSvc, deps.Logger)
	v1.POST("/webhooks/btcpay", rl("webhook"), webhookHandler.Receive)

	// --- JWT-authenticated merchant API ---
	authed := v1.Group("", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	if deps.AuditSvc != nil {
		authed.Use(middleware.AuditLog(deps.AuditSvc))
	}

	orderHandler := NewOrderHandler(deps.OrderSvc)
	orders := authed.Group("/orders", rl("orders"))
	{
		orders.POST("/cash", orderHandler.CreateCash)
		orders.POST("/crypto", orderHandler.CreateCrypto)
		orders.POST("/:id/confirm", orderHandler.Confirm)
		orders.POST("/:id/cancel", orderHandler.Cancel)
	}

	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc)
	invoices := authed.Group("/invoices", rl("invoices"))
	{
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("/:id/confirm", invoiceHandler.Confirm)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := authed.Group("/wallet", rl("wallet"))
	{
		wallet.POST("/setup", walletHandler.Setup)
		wallet.PUT("/xpub", walletHandler.LinkXpub)
		wallet.POST("/generate", walletHandler.Generate)
		wallet.POST("/send", rl("wallet_send"), walletHandler.Send)
	}

	return r
}
