package ratelimit

import "context"

// Limiter decides whether a request identified by key may proceed now.
// Keys are composite "ip:org:endpoint" strings built by the HTTP middleware.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
