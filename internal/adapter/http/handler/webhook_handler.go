package handler

import (
	"io"

	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"
	"btc-payment-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderBTCPaySig carries "sha256=<hex>" over the raw request body.
const HeaderBTCPaySig = "BTCPay-Sig"

// WebhookHandler receives processor notifications.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc, log: log}
}

// Receive handles POST /api/v1/webhooks/btcpay. The body must be read raw:
// the signature covers the exact bytes sent.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("unreadable body"))
		return
	}

	if err := h.webhookSvc.HandleWebhook(c.Request.Context(), body, c.GetHeader(HeaderBTCPaySig)); err != nil {
		h.log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("webhook rejected")
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"received": true})
}
