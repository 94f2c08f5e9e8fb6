package cache

import (
	"context"
	"time"
)

// AvailabilityCache stores rendered availability responses keyed by
// employee, day, service and step. Implementations must be safe for
// concurrent use.
//
// The cache is strictly best-effort: a miss or a backend error only costs
// a recomputation, so callers log failures and move on.
type AvailabilityCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePrefix drops every key with the given prefix. Used to
	// invalidate an employee's cached days after a booking or a schedule
	// change.
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// Noop satisfies AvailabilityCache without storing anything. Used when
// caching is disabled in config.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*Noop) DeletePrefix(context.Context, string) error               { return nil }
func (*Noop) Close() error                                             { return nil }
