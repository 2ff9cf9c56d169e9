package handler

import (
	"btc-payment-core/internal/adapter/http/dto"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"
	"btc-payment-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles store provisioning and hot-wallet payouts.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Setup handles POST /api/v1/wallet/setup.
func (h *WalletHandler) Setup(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}

	var req dto.StoreSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	store, err := h.walletSvc.SetupStore(c.Request.Context(), ports.StoreSetupRequest{
		MerchantID: merchantID,
		Name:       req.Name,
		Xpub:       req.Xpub,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, store)
}

// LinkXpub handles PUT /api/v1/wallet/xpub.
func (h *WalletHandler) LinkXpub(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}

	var req dto.LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	key, err := h.walletSvc.LinkWallet(c.Request.Context(), merchantID, req.Xpub)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletKeyResponse{Xpub: key.Canonical})
}

// Generate handles POST /api/v1/wallet/generate.
func (h *WalletHandler) Generate(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}

	key, err := h.walletSvc.Generate(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletKeyResponse{Xpub: key.Canonical})
}

// Send handles POST /api/v1/wallet/send. The processor's reply is passed
// through as-is.
func (h *WalletHandler) Send(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}

	var req dto.SendFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	transfer, err := req.ToTransfer(merchantID)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.SendFunds(c.Request.Context(), transfer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
