package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes. Handlers and tests match on these rather than on messages.
const (
	CodeConfiguration     = "CFG_001"
	CodeInvalidToken      = "SEC_001"
	CodeInvalidSignature  = "SEC_002"
	CodeValidation        = "VAL_001"
	CodeNotFound          = "NF_001"
	CodeKeyFormat         = "KEY_001"
	CodeUpstreamDown      = "UPS_001"
	CodeUpstreamTimeout   = "UPS_002"
	CodeUpstreamDNS       = "UPS_003"
	CodeUpstreamRejected  = "UPS_004"
	CodeInvoiceUnsettled  = "ORD_001"
	CodeRestockFailed     = "ORD_002"
	CodeInsufficientStock = "ORD_003"
	CodeRateLimited       = "RATE_001"
	CodePersistence       = "SYS_001"
	CodeEncryption        = "SYS_003"
)

// ---- Configuration (CFG) ----

// ErrConfiguration is raised before any network call when processor
// settings are missing.
func ErrConfiguration(message string) *AppError {
	return New(CodeConfiguration, message, http.StatusInternalServerError)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ErrInvalidSignature rejects a webhook whose signature or signing secret
// could not be verified.
func ErrInvalidSignature(reason string) *AppError {
	return New(CodeInvalidSignature, "Invalid signature: "+reason, http.StatusBadRequest)
}

// ---- Validation & lookup ----

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrKeyFormat(message string) *AppError {
	return New(CodeKeyFormat, message, http.StatusBadRequest)
}

// ---- Upstream processor (UPS) ----

func ErrUpstreamUnavailable(err error) *AppError {
	return Wrap(CodeUpstreamDown, "Payment processor temporarily unavailable", http.StatusServiceUnavailable, err)
}

func ErrUpstreamTimeout(err error) *AppError {
	return Wrap(CodeUpstreamTimeout, "Payment processor timed out, retry later", http.StatusGatewayTimeout, err)
}

func ErrUpstreamDNS(err error) *AppError {
	return Wrap(CodeUpstreamDNS, "Payment processor unreachable, check processor address", http.StatusBadGateway, err)
}

func ErrUpstreamRejected(err error) *AppError {
	return Wrap(CodeUpstreamRejected, "Payment processor rejected the request", http.StatusUnprocessableEntity, err)
}

// ---- Orders (ORD) ----

func ErrInvoiceNotSettled(status string) *AppError {
	return New(CodeInvoiceUnsettled, "Invoice is not settled (status "+status+")", http.StatusConflict)
}

func ErrRestockFailed() *AppError {
	return New(CodeRestockFailed, "No line item could be restocked", http.StatusUnprocessableEntity)
}

func ErrInsufficientStock(productID string) *AppError {
	return New(CodeInsufficientStock, "Insufficient stock for product "+productID, http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrPersistence reports a failed write after a valid transition decision.
func ErrPersistence(err error) *AppError {
	return Wrap(CodePersistence, "Failed to persist state", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(CodeEncryption, "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodePersistence, "Internal server error", http.StatusInternalServerError, err)
}

// HasCode reports whether err is an *AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}
