package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "login:fail:jane@example.com", redisKey("  Jane@Example.com "))
	assert.Equal(t, "login:fail:0123", redisKey("0123"))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var l Noop

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Fail(ctx, "k"))
	}
	ok, err := l.Allowed(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, l.Reset(ctx, "k"))
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-url")
	assert.Error(t, err)
}

// fakeRedis implements the handful of commands the limiter issues. Any
// other method panics through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	n, ok := f.counts[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(n, 10), nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeRedis) Expire(_ context.Context, key string, d time.Duration) *redis.BoolCmd {
	f.expires[key] = d
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.counts, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisLimiter_LocksAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	l := NewRedisLimiter(rdb, 3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := l.Allowed(ctx, "Jane@Example.com")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i)
		require.NoError(t, l.Fail(ctx, "jane@example.com"))
	}

	ok, err := l.Allowed(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	// The window starts at the first failure only.
	assert.Equal(t, map[string]time.Duration{"login:fail:jane@example.com": 15 * time.Minute}, rdb.expires)

	require.NoError(t, l.Reset(ctx, "jane@example.com"))
	ok, err = l.Allowed(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_ErrorsFailOpen(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	l := NewRedisLimiter(rdb, 3, time.Minute)

	ok, err := l.Allowed(ctx, "k")
	assert.Error(t, err)
	assert.True(t, ok)
	assert.Error(t, l.Fail(ctx, "k"))
}
