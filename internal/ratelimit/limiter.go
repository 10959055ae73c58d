// Package ratelimit throttles calls per access class, weighted by endpoint cost.
package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/time/rate"

	"kraken/pkg/core"
)

// Limiter keeps one token bucket for public calls and one for private calls. Private
// endpoints share a single call counter on the exchange, so they share a bucket here too.
type Limiter struct {
	public  *rate.Limiter
	private *rate.Limiter
	metrics *Metrics
}

// Metrics tracks statistics about limiter usage.
type Metrics struct {
	totalRequests   atomic.Int64
	allowedRequests atomic.Int64
	deniedRequests  atomic.Int64
	consumedTokens  atomic.Int64
}

// New builds a limiter from config. The config is expected to be validated.
func New(config core.RateLimitConfig) *Limiter {
	return &Limiter{
		public:  rate.NewLimiter(rate.Limit(config.PublicRate), config.PublicBurst),
		private: rate.NewLimiter(rate.Limit(config.PrivateRate), config.PrivateBurst),
		metrics: &Metrics{},
	}
}

// Wait blocks until the bucket for access holds cost tokens or ctx is done.
// A cost below one is treated as one, and a cost above the bucket's burst is
// capped at the burst so a heavy call drains the bucket instead of failing.
func (l *Limiter) Wait(ctx context.Context, access core.Access, cost int) error {
	b := l.bucket(access)
	if cost < 1 {
		cost = 1
	}
	if burst := b.Burst(); cost > burst {
		cost = burst
	}
	l.metrics.totalRequests.Add(1)
	if err := b.WaitN(ctx, cost); err != nil {
		l.metrics.deniedRequests.Add(1)
		return fmt.Errorf("rate limit %s: %w", access, err)
	}
	l.metrics.allowedRequests.Add(1)
	l.metrics.consumedTokens.Add(int64(cost))
	return nil
}

func (l *Limiter) bucket(access core.Access) *rate.Limiter {
	if access == core.AccessPrivate {
		return l.private
	}
	return l.public
}

// Metrics returns a snapshot of the current limiter statistics.
func (l *Limiter) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		TotalRequests:   l.metrics.totalRequests.Load(),
		AllowedRequests: l.metrics.allowedRequests.Load(),
		DeniedRequests:  l.metrics.deniedRequests.Load(),
		ConsumedTokens:  l.metrics.consumedTokens.Load(),
	}
}

// MetricsSnapshot is a point-in-time capture of limiter statistics.
type MetricsSnapshot struct {
	TotalRequests   int64
	AllowedRequests int64
	DeniedRequests  int64
	// ConsumedTokens is the sum of the costs of allowed requests.
	ConsumedTokens int64
}
