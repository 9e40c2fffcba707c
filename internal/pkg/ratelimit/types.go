package ratelimit

import "context"

//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go Limiter
type Limiter interface {
	// Limit reports whether the request identified by key must be throttled.
	Limit(ctx context.Context, key string) (bool, error)
}
