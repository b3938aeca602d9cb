package ports

import (
	"context"
	"time"
)

// RateLimitPolicy is a fixed-window admission rule.
type RateLimitPolicy struct {
	Name       string
	Limit      int64
	Window     time.Duration
	RetryAfter time.Duration
}

var (
	// APIPolicy guards the emulated vendor surface.
	APIPolicy = RateLimitPolicy{Name: "api", Limit: 100, Window: time.Minute, RetryAfter: time.Minute}
	// SignupPolicy blunts automated tenant creation.
	SignupPolicy = RateLimitPolicy{Name: "signup", Limit: 5, Window: 15 * time.Minute, RetryAfter: 15 * time.Minute}
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RateLimiter counts one unit per call against key under policy.
type RateLimiter interface {
	Admit(ctx context.Context, key string, policy RateLimitPolicy) (Decision, error)
}
