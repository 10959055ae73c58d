package kraken

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"kraken/internal/circuitbreaker"
	httpClient "kraken/internal/http"
	"kraken/internal/nonce"
	"kraken/internal/ratelimit"
	"kraken/internal/sign"
	"kraken/pkg/core"
)

// Request headers of private calls.
const (
	HeaderAPIKey  = "API-Key"
	HeaderAPISign = "API-Sign"
)

// NonceSource yields the nonces of private calls. Values must strictly increase for a
// given API key.
type NonceSource interface {
	Next() int64
}

// ClockNonce returns a source that reads the wall clock on every call. Two calls within
// the same millisecond get the same nonce.
func ClockNonce() NonceSource {
	return nonce.Clock{}
}

// Client dispatches public and private calls. Create it with New.
type Client struct {
	config         *core.Config
	credential     *core.Credential
	nonces         NonceSource
	httpClient     *httpClient.Client
	rateLimiter    *ratelimit.Limiter
	circuitBreaker *circuitbreaker.Breaker
	logger         zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Config     *core.Config
	Credential *core.Credential
	Nonce      NonceSource
	Logger     zerolog.Logger
}

// WithConfig replaces core.DefaultConfig.
func WithConfig(config *core.Config) Option {
	return func(o *Options) {
		o.Config = config
	}
}

// WithCredential enables private endpoints.
func WithCredential(cred *core.Credential) Option {
	return func(o *Options) {
		o.Credential = cred
	}
}

// WithNonceSource replaces the process-wide monotonic nonce source.
func WithNonceSource(src NonceSource) Option {
	return func(o *Options) {
		o.Nonce = src
	}
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a Client. Without options it talks to the production API, has no
// credential, no throttle and no circuit breaker, and logs nothing.
func New(opts ...Option) (*Client, error) {
	options := &Options{
		Config: core.DefaultConfig(),
		Nonce:  nonce.Default,
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	config := options.Config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	logger := options.Logger
	if config.LogLevel != "" {
		level, err := zerolog.ParseLevel(config.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		logger = logger.Level(level)
	}

	hc, err := httpClient.NewClient(&httpClient.Config{
		BaseURL:   config.BaseURL,
		Timeout:   config.Timeout,
		UserAgent: config.UserAgent,
	}, logger.With().Str("component", "http").Logger())
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	var rl *ratelimit.Limiter
	if config.RateLimit != nil {
		rl = ratelimit.New(*config.RateLimit)
	}

	var cb *circuitbreaker.Breaker
	if config.CircuitBreaker != nil {
		cb = circuitbreaker.New(*config.CircuitBreaker,
			circuitbreaker.OnStateChange(func(from, to circuitbreaker.State) {
				logger.Warn().
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("circuit breaker state change")
			}))
	}

	src := options.Nonce
	if src == nil {
		src = nonce.Default
	}

	return &Client{
		config:         config,
		credential:     options.Credential,
		nonces:         src,
		httpClient:     hc,
		rateLimiter:    rl,
		circuitBreaker: cb,
		logger:         logger,
	}, nil
}

// Close releases the HTTP client. Calls made after Close fail with core.ErrClientClosed.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// HasCredential reports whether private endpoints can be called.
func (c *Client) HasCredential() bool {
	return c.credential != nil
}

// Public sends an unauthenticated call and returns the raw response body. For GET the
// params become the query string, otherwise they are sent as a form body.
func (c *Client) Public(ctx context.Context, method, path string, params core.Params) ([]byte, error) {
	req := core.NewRequest(method, path).SetAccess(core.AccessPublic)
	return c.public(ctx, req, params)
}

// Private sends a signed call and returns the raw response body. The body is the nonce
// followed by params in the given order, and it is exactly the string that was signed.
// params must not carry their own nonce.
func (c *Client) Private(ctx context.Context, method, path string, params core.Params) ([]byte, error) {
	req := core.NewRequest(method, path).SetAccess(core.AccessPrivate)
	return c.private(ctx, req, params)
}

func (c *Client) public(ctx context.Context, req *core.Request, params core.Params) ([]byte, error) {
	if err := c.admit(ctx, req); err != nil {
		return nil, err
	}

	if req.Method == http.MethodGet {
		req.SetQuery(params)
	} else {
		req.SetFormBody(params.Encode())
	}
	return c.doRequest(ctx, req)
}

func (c *Client) private(ctx context.Context, req *core.Request, params core.Params) ([]byte, error) {
	if c.credential == nil {
		return nil, core.ErrNoCredentials
	}
	if err := c.admit(ctx, req); err != nil {
		return nil, err
	}

	// The nonce is taken after any throttling wait so that it reflects send order.
	auth := params.Prepend(sign.NonceKey, nonce.Format(c.nonces.Next()))
	signature := sign.Sign(req.Path, auth, c.credential.Secret())

	req.SetFormBody(auth.Encode()).
		SetHeader(HeaderAPIKey, c.credential.Key()).
		SetHeader(HeaderAPISign, signature)
	return c.doRequest(ctx, req)
}

// admit applies the optional throttle and circuit breaker before anything is sent.
func (c *Client) admit(ctx context.Context, req *core.Request) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx, req.Access, req.Cost); err != nil {
			return core.NewTransportError(err).WithPath(req.Path)
		}
	}
	if c.circuitBreaker != nil {
		if err := c.circuitBreaker.Allow(); err != nil {
			return core.NewTransportError(err).WithPath(req.Path)
		}
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, req *core.Request) ([]byte, error) {
	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Str("access", req.Access.String()).
		Msg("dispatch")

	resp, err := c.httpClient.Do(ctx, req)

	// Transport errors and 5xx statuses count against the breaker. A 4xx is a
	// healthy exchange with a bad request.
	if c.circuitBreaker != nil {
		c.circuitBreaker.Record(err == nil && !resp.IsServerError())
	}

	if err != nil {
		return nil, core.NewTransportError(err).WithPath(req.Path)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Str("path", req.Path).
			Int("status", resp.StatusCode).
			Msg("unexpected http status")
	}
	return resp.Body, nil
}
