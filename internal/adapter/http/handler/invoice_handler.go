package handler

import (
	"btc-payment-core/internal/adapter/http/dto"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"
	"btc-payment-core/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxInvoiceIDLen = 64

// InvoiceHandler exposes invoice status and manual confirmation.
type InvoiceHandler struct {
	invoiceSvc ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceSvc ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc}
}

func invoiceParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" || len(id) > maxInvoiceIDLen {
		response.Error(c, apperror.Validation("invalid invoice id"))
		return "", false
	}
	return id, true
}

// Get handles GET /api/v1/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	invoiceID, ok := invoiceParam(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceSvc.GetStatus(c.Request.Context(), merchantID, invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// An invoice without an on-chain method still has its checkout link.
	dest, _ := h.invoiceSvc.ExtractPaymentDestination(invoice)
	response.OK(c, dto.InvoiceResponse{Invoice: invoice, Destination: dest})
}

// Confirm handles POST /api/v1/invoices/:id/confirm.
func (h *InvoiceHandler) Confirm(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	invoiceID, ok := invoiceParam(c)
	if !ok {
		return
	}

	result, err := h.invoiceSvc.ConfirmCryptoOrder(c.Request.Context(), merchantID, invoiceID)
	writeReconcile(c, result, err)
}
