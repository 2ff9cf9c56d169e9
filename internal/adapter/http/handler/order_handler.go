package handler

import (
	"btc-payment-core/internal/adapter/http/dto"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"
	"btc-payment-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order transitions.
type OrderHandler struct {
	orderSvc ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// CreateCash handles POST /api/v1/orders/cash.
func (h *OrderHandler) CreateCash(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}

	var req dto.CashOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	items, err := dto.ToLineItems(req.Items)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	order, err := h.orderSvc.CreateCashOrder(c.Request.Context(), merchantID, items)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, order)
}

// CreateCrypto handles POST /api/v1/orders/crypto.
func (h *OrderHandler) CreateCrypto(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}

	var req dto.CryptoOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	redirect := req.RedirectURL
	dto.SanitizeStruct(&req)

	items, err := dto.ToLineItems(req.Items)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	checkout, err := h.orderSvc.CreateCryptoOrder(c.Request.Context(), ports.CryptoOrderRequest{
		MerchantID: merchantID,
		Items:      items,
		Currency:   req.Currency,
		// URLs are validated, escaping them would break query strings.
		RedirectURL: redirect,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, checkout)
}

// Confirm handles POST /api/v1/orders/:id/confirm.
func (h *OrderHandler) Confirm(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	result, err := h.orderSvc.ConfirmOrder(c.Request.Context(), merchantID, orderID)
	writeReconcile(c, result, err)
}

// Cancel handles POST /api/v1/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	result, err := h.orderSvc.CancelOrder(c.Request.Context(), merchantID, orderID)
	writeReconcile(c, result, err)
}
