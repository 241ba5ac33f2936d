package user

import "context"

// LoginLimiter tracks failed login attempts per identifier.
type LoginLimiter interface {
	Allowed(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
