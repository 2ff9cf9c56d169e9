package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful merchant write operations after the handler
// has run. Routes are matched on their registered pattern.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var merchantID *uuid.UUID
		if id, ok := MerchantID(c); ok {
			merchantID = &id
		}

		details, _ := json.Marshal(map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/orders/cash" && method == http.MethodPost:
		return domain.AuditActionCashOrder, "order"
	case route == "/api/v1/orders/crypto" && method == http.MethodPost:
		return domain.AuditActionCryptoOrder, "order"
	case route == "/api/v1/orders/:id/confirm" && method == http.MethodPost:
		return domain.AuditActionConfirmOrder, "order"
	case route == "/api/v1/orders/:id/cancel" && method == http.MethodPost:
		return domain.AuditActionCancelOrder, "order"
	case route == "/api/v1/invoices/:id/confirm" && method == http.MethodPost:
		return domain.AuditActionConfirmOrder, "invoice"
	case route == "/api/v1/wallet/setup" && method == http.MethodPost:
		return domain.AuditActionStoreSetup, "store"
	case route == "/api/v1/wallet/xpub" && method == http.MethodPut:
		return domain.AuditActionLinkWallet, "store"
	case route == "/api/v1/wallet/generate" && method == http.MethodPost:
		return domain.AuditActionGenerateKey, "store"
	case route == "/api/v1/wallet/send" && method == http.MethodPost:
		return domain.AuditActionSendFunds, "store"
	}
	return "", ""
}
