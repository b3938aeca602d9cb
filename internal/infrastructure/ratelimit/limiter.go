// Package ratelimit implements fixed-window admission on top of
// ulule/limiter, backed by either process memory or Redis.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const keyPrefix = "sandbox:ratelimit:"

// StoreFactory builds the counter store for one policy.
type StoreFactory func(policy ports.RateLimitPolicy) (limiter.Store, error)

// MemoryStores keeps counters in process memory. Counters do not survive a
// restart and are not shared between replicas.
func MemoryStores() StoreFactory {
	return func(p ports.RateLimitPolicy) (limiter.Store, error) {
		return memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          keyPrefix + p.Name,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		}), nil
	}
}

// RedisStores keeps counters in Redis so every replica shares one window.
func RedisStores(client *redis.Client) StoreFactory {
	return func(p ports.RateLimitPolicy) (limiter.Store, error) {
		return sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   keyPrefix + p.Name,
			MaxRetry: limiter.DefaultMaxRetry,
		})
	}
}

// Limiter admits or rejects calls per key, one limiter per policy name.
type Limiter struct {
	stores StoreFactory

	mu       sync.Mutex
	limiters map[string]*limiter.Limiter
}

func New(stores StoreFactory) *Limiter {
	return &Limiter{stores: stores, limiters: map[string]*limiter.Limiter{}}
}

// Admit counts one unit against key. Once the window's limit is reached every
// further call in the window is rejected with the policy's fixed retry hint.
func (l *Limiter) Admit(ctx context.Context, key string, policy ports.RateLimitPolicy) (ports.Decision, error) {
	lim, err := l.forPolicy(policy)
	if err != nil {
		return ports.Decision{}, err
	}

	res, err := lim.Get(ctx, key)
	if err != nil {
		return ports.Decision{}, fmt.Errorf("rate limit %s: %w", policy.Name, err)
	}

	d := ports.Decision{
		Allowed:   !res.Reached,
		Limit:     res.Limit,
		Remaining: res.Remaining,
		ResetAt:   time.Unix(res.Reset, 0),
	}
	if res.Reached {
		d.RetryAfter = policy.RetryAfter
	}
	return d, nil
}

func (l *Limiter) forPolicy(policy ports.RateLimitPolicy) (*limiter.Limiter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[policy.Name]; ok {
		return lim, nil
	}
	store, err := l.stores(policy)
	if err != nil {
		return nil, fmt.Errorf("rate limit store %s: %w", policy.Name, err)
	}
	lim := limiter.New(store, limiter.Rate{Period: policy.Window, Limit: policy.Limit})
	l.limiters[policy.Name] = lim
	return lim, nil
}
