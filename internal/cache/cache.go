// Package cache stores computed trend responses between writes.
package cache

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache miss")

// Observer is notified of lookups so callers can export hit ratios.
type Observer interface {
	CacheHit()
	CacheMiss()
}

// Generation identifies the cache contents between two invalidations.
type Generation int64

// TrendCache is an optimization layer only: every error is safe to ignore
// by recomputing.
type TrendCache interface {
	// Get decodes the cached value for key into dst, or returns ErrCacheMiss.
	// The returned generation is read before the lookup and must be passed to
	// Set for a value computed after this call.
	Get(ctx context.Context, key string, dst any) (Generation, error)
	// Set stores v for key in generation gen. A value stored for a generation
	// that has since been invalidated is never served.
	Set(ctx context.Context, gen Generation, key string, v any) error
	// Invalidate drops every entry written before the call.
	Invalidate(ctx context.Context) error
}

// Noop never stores anything. It is used when Redis is not configured.
type Noop struct {
	obs Observer
}

func NewNoop(obs Observer) *Noop {
	return &Noop{obs: obs}
}

func (n *Noop) Get(context.Context, string, any) (Generation, error) {
	if n.obs != nil {
		n.obs.CacheMiss()
	}
	return 0, ErrCacheMiss
}

func (n *Noop) Set(context.Context, Generation, string, any) error { return nil }

func (n *Noop) Invalidate(context.Context) error { return nil }
