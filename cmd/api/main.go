package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btc-payment-core/config"
	"btc-payment-core/internal/adapter/gateway"
	httpHandler "btc-payment-core/internal/adapter/http/handler"
	pgStorage "btc-payment-core/internal/adapter/storage/postgres"
	redisStorage "btc-payment-core/internal/adapter/storage/redis"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/internal/service"
	"btc-payment-core/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a config file (default: ./config.yaml if present)")
	issueToken := pflag.String("issue-token", "", "print an API token for the given merchant UUID and exit")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	if *issueToken != "" {
		merchantID, err := uuid.Parse(*issueToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid merchant id: %v\n", err)
			os.Exit(1)
		}
		token, expiry, err := tokenSvc.Generate(merchantID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "issuing token: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n# expires %s\n", token, expiry.UTC().Format(time.RFC3339))
		return
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("tor_proxy", cfg.Processor.TorProxy).
		Msg("Starting BTC payment core")

	vaultKey, err := cfg.Vault.DecodeKey()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid vault key")
	}
	encSvc, err := service.NewXChaChaEncryptionService(vaultKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Processor egress, routed through Tor when configured
	gateways, err := gateway.NewFactory(cfg.Processor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize processor gateway")
	}

	// Initialize repositories
	storeRepo := pgStorage.NewMerchantStoreRepo(pool)
	profileRepo := pgStorage.NewProfileRepo(pool)
	invoiceRepo := pgStorage.NewInvoiceRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	inventory := pgStorage.NewInventoryRepo()
	webhookRepo := pgStorage.NewWebhookRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	deduper := redisStorage.NewDeliveryDeduper(rdb)
	invoiceCache := redisStorage.NewInvoiceCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize business services
	sigSvc := service.NewHMACSignatureService()
	creds := service.NewCredentialSource(profileRepo, encSvc, cfg.Processor.DefaultURL)
	reconciler := service.NewReconciler(orderRepo, inventory, transactor, log)
	invoiceSvc := service.NewInvoiceService(storeRepo, invoiceRepo, invoiceCache, creds, gateways, reconciler, log)
	orderSvc := service.NewOrderService(orderRepo, inventory, transactor, invoiceSvc, reconciler, log)
	walletSvc := service.NewWalletService(storeRepo, creds, gateways, encSvc, cfg.Processor.WebhookURL, log)
	webhookSvc := service.NewWebhookService(storeRepo, encSvc, sigSvc, deduper, webhookRepo, invoiceSvc, reconciler, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OrderSvc:       orderSvc,
		InvoiceSvc:     invoiceSvc,
		WalletSvc:      walletSvc,
		WebhookSvc:     webhookSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
