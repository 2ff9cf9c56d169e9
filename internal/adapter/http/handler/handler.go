package handler

import (
	"btc-payment-core/internal/adapter/http/middleware"
	"btc-payment-core/internal/core/domain"
	"btc-payment-core/pkg/apperror"
	"btc-payment-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// merchantFrom reads the authenticated merchant or writes a 401.
func merchantFrom(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// idParam parses the :id path segment as a UUID or writes a 400.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// writeReconcile answers a transition. Some restocks failing is a 207; all of
// them failing surfaces the service error.
func writeReconcile(c *gin.Context, result *domain.ReconcileResult, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Partial() {
		response.MultiStatus(c, result)
		return
	}
	response.OK(c, result)
}
