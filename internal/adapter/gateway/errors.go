package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"btc-payment-core/pkg/apperror"
)

// Cause classifies why a processor call failed.
type Cause string

const (
	CauseDNS      Cause = "DNS"
	CauseConnect  Cause = "CONNECT"
	CauseUpstream Cause = "UPSTREAM_5XX"
	CauseTimeout  Cause = "TIMEOUT"
	CauseHTTP     Cause = "HTTP" // processor answered 4xx
)

// Error is returned for every failed processor call. Status and Body are
// zero when no response was received.
type Error struct {
	Status int
	Body   []byte
	Cause  Cause
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("processor %s: status %d: %s", e.Cause, e.Status, truncate(e.Body, 256))
	case e.Err != nil:
		return fmt.Sprintf("processor %s: %v", e.Cause, e.Err)
	}
	return "processor " + string(e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusError classifies a non-2xx response.
func statusError(status int, body []byte) *Error {
	cause := CauseHTTP
	switch {
	case status == http.StatusGatewayTimeout:
		cause = CauseTimeout
	case status >= 500:
		cause = CauseUpstream
	}
	return &Error{Status: status, Body: body, Cause: cause}
}

// transportError classifies a failure where no response was received.
func transportError(err error) *Error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Cause: CauseDNS, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Cause: CauseTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Cause: CauseTimeout, Err: err}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "socks connect" {
		// Tor resolves names on the exit side and reports failures as SOCKS replies.
		msg := opErr.Err.Error()
		if strings.Contains(msg, "host unreachable") || strings.Contains(msg, "general SOCKS server failure") {
			return &Error{Cause: CauseDNS, Err: err}
		}
	}
	return &Error{Cause: CauseConnect, Err: err}
}

// ToAppError maps a processor failure onto the service error taxonomy.
// Errors that are already *apperror.AppError pass through unchanged.
func ToAppError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var gwErr *Error
	if !errors.As(err, &gwErr) {
		return apperror.InternalError(err)
	}
	switch gwErr.Cause {
	case CauseDNS, CauseConnect:
		return apperror.ErrUpstreamDNS(gwErr)
	case CauseTimeout:
		return apperror.ErrUpstreamTimeout(gwErr)
	case CauseUpstream:
		return apperror.ErrUpstreamUnavailable(gwErr)
	case CauseHTTP:
		if gwErr.Status == http.StatusNotFound {
			return apperror.Wrap(apperror.CodeNotFound, "Resource not found on processor", http.StatusNotFound, gwErr)
		}
		return apperror.ErrUpstreamRejected(gwErr)
	}
	return apperror.InternalError(gwErr)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
