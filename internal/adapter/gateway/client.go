// Package gateway is the single egress point to the payment processor.
// Every request leaves through a SOCKS5 dialer (Tor in production).
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"btc-payment-core/config"
	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/proxy"
)

const defaultTimeout = 30 * time.Second

// Factory builds per-merchant processor clients sharing one transport.
type Factory struct {
	transport http.RoundTripper
	timeout   time.Duration
	log       zerolog.Logger
}

// Option customises a Factory.
type Option func(*Factory)

// WithTransport replaces the SOCKS5 transport, e.g. with a direct one in tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Factory) {
		f.transport = rt
	}
}

// NewFactory creates a Factory. Unless a transport is supplied, every
// connection is dialled through the SOCKS5 proxy at cfg.TorProxy, which also
// resolves host names.
func NewFactory(cfg config.ProcessorConfig, log zerolog.Logger, opts ...Option) (*Factory, error) {
	f := &Factory{
		timeout: cfg.Timeout,
		log:     log.With().Str("component", "gateway").Logger(),
	}
	if f.timeout <= 0 {
		f.timeout = defaultTimeout
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.transport != nil {
		return f, nil
	}

	rt, err := socksTransport(cfg.TorProxy, f.timeout)
	if err != nil {
		return nil, err
	}
	f.transport = rt
	return f, nil
}

func socksTransport(addr string, timeout time.Duration) (*http.Transport, error) {
	if addr == "" {
		return nil, fmt.Errorf("tor proxy address not set")
	}
	dialer, err := proxy.SOCKS5("tcp", addr, nil, &net.Dialer{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("creating socks5 dialer: %w", err)
	}
	ctxDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("socks5 dialer does not support contexts")
	}
	return &http.Transport{
		Proxy:               nil,
		DialContext:         ctxDialer.DialContext,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: timeout,
	}, nil
}

// ForMerchant returns a client bound to one merchant's credentials.
// Incomplete credentials fail here, before anything touches the network.
func (f *Factory) ForMerchant(creds domain.ProcessorCredentials) (ports.GatewayClient, error) {
	if creds.BaseURL == "" {
		return nil, apperror.ErrConfiguration("Payment processor URL is not configured")
	}
	if creds.APIKey == "" {
		return nil, apperror.ErrConfiguration("Payment processor API key is not configured")
	}
	if _, err := url.ParseRequestURI(creds.BaseURL); err != nil {
		return nil, apperror.ErrConfiguration("Payment processor URL is invalid")
	}

	r := resty.New().
		SetTransport(f.transport).
		SetBaseURL(creds.BaseURL).
		SetTimeout(f.timeout).
		SetLogger(restyLogger{f.log}).
		SetHeaders(map[string]string{
			"Authorization": "token " + creds.APIKey,
			"X-Merchant-ID": creds.MerchantID.String(),
			"Accept":        "application/json",
		})

	return &Client{
		r:   r,
		log: f.log.With().Str("merchant_id", creds.MerchantID.String()).Logger(),
	}, nil
}

// Client performs calls for a single merchant. It never retries. Failures
// are *apperror.AppError values wrapping a *gateway.Error.
type Client struct {
	r   *resty.Client
	log zerolog.Logger
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, query)
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// Delete sends a DELETE request. body and query may be nil.
func (c *Client) Delete(ctx context.Context, path string, body any, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, body, query)
}

func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	req := c.r.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		gwErr := transportError(err)
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Str("cause", string(gwErr.Cause)).
			Dur("latency", time.Since(start)).
			Msg("processor call failed")
		return nil, ToAppError(gwErr)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("processor call")

	if !resp.IsSuccess() {
		return nil, ToAppError(statusError(resp.StatusCode(), resp.Body()))
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, ToAppError(&Error{Status: resp.StatusCode(), Body: raw, Cause: CauseUpstream, Err: fmt.Errorf("response is not JSON")})
	}
	return json.RawMessage(raw), nil
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
