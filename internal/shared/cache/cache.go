package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when a key is absent. Callers fall back to the
// authoritative store and may repopulate.
var ErrMiss = errors.New("cache: miss")

// Cache holds small derived read models, currently the distinct-category
// list. Implementations are best effort: a broken cache must never break
// a request.
type Cache interface {
	GetStrings(ctx context.Context, key string) ([]string, error)
	SetStrings(ctx context.Context, key string, values []string, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Noop is used when Redis is not configured; every read is a miss.
type Noop struct{}

func (Noop) GetStrings(context.Context, string) ([]string, error) { return nil, ErrMiss }

func (Noop) SetStrings(context.Context, string, []string, time.Duration) error { return nil }

func (Noop) Invalidate(context.Context, ...string) error { return nil }
