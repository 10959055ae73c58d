package core

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProductionURL is the origin of the REST API.
const ProductionURL = "https://api.kraken.com"

// RateLimitConfig configures the optional client-side throttle.
// Rates are in requests (call-counter points) per second.
type RateLimitConfig struct {
	PublicRate   float64 `json:"public_rate" validate:"gt=0"`
	PublicBurst  int     `json:"public_burst" validate:"min=1"`
	PrivateRate  float64 `json:"private_rate" validate:"gt=0"`
	PrivateBurst int     `json:"private_burst" validate:"min=1"`
}

// DefaultRateLimitConfig mirrors the exchange's starter tier: one public call per second,
// and a private counter of 15 that decays by 0.33 per second.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		PublicRate:   1,
		PublicBurst:  1,
		PrivateRate:  0.33,
		PrivateBurst: 15,
	}
}

// CircuitBreakerConfig configures the optional circuit breaker.
type CircuitBreakerConfig struct {
	FailThreshold    int           `json:"fail_threshold" validate:"min=1"`
	SuccessThreshold int           `json:"success_threshold" validate:"min=1"`
	Timeout          time.Duration `json:"timeout" validate:"min=1ms"`
}

// DefaultCircuitBreakerConfig returns 5 failures to open, 2 successes to close and a 30s cool-down.
func DefaultCircuitBreakerConfig() *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		FailThreshold:    5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
	}
}

// Config contains the client configuration.
// Throttling and circuit breaking are disabled unless their section is set.
type Config struct {
	BaseURL   string `json:"base_url" validate:"required,url"`
	UserAgent string `json:"user_agent"`

	// Timeout bounds a whole HTTP exchange. Zero leaves it to the caller's context.
	Timeout time.Duration `json:"timeout" validate:"min=0"`

	RateLimit      *RateLimitConfig      `json:"rate_limit,omitempty"`
	CircuitBreaker *CircuitBreakerConfig `json:"circuit_breaker,omitempty"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for the production API with no timeout, no throttle and
// no circuit breaker.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   ProductionURL,
		UserAgent: "kraken-go",
		LogLevel:  "info",
	}
}

var validate = validator.New()

// Validate checks the configuration, including the optional sections when present.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return validate.Struct(c)
}

// WithBaseURL sets the API origin and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit enables the client-side throttle and returns the config for chaining.
func (c *Config) WithRateLimit(rl *RateLimitConfig) *Config {
	c.RateLimit = rl
	return c
}

// WithCircuitBreaker enables the circuit breaker and returns the config for chaining.
func (c *Config) WithCircuitBreaker(cb *CircuitBreakerConfig) *Config {
	c.CircuitBreaker = cb
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
