package reportcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	data map[string]string
	ttl  time.Duration
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}

	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}

	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}

	data, _ := value.([]byte)
	f.data[key] = string(data)
	f.ttl = expiration

	return redis.NewStatusResult("OK", nil)
}

type payload struct {
	Orders int `json:"orders"`
}

func TestRedisCacheRoundTrip(t *testing.T) {
	store := newFakeStore()
	c := NewRedis(store, time.Minute)
	ctx := context.Background()

	var got payload
	found, err := c.Get(ctx, "dashboard", &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Set(ctx, "dashboard", payload{Orders: 3}))
	require.Equal(t, time.Minute, store.ttl)
	require.Contains(t, store.data, keyPrefix+"dashboard")

	found, err = c.Get(ctx, "dashboard", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 3, got.Orders)
}

func TestRedisCacheErrors(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	c := NewRedis(store, time.Minute)

	_, err := c.Get(context.Background(), "dashboard", &payload{})
	require.Error(t, err)
	require.Error(t, c.Set(context.Background(), "dashboard", payload{}))
}

func TestRedisCacheCorruptValue(t *testing.T) {
	store := newFakeStore()
	store.data[keyPrefix+"dashboard"] = "{not json"

	found, err := NewRedis(store, time.Minute).Get(context.Background(), "dashboard", &payload{})
	require.Error(t, err)
	require.False(t, found)
}

func TestNoop(t *testing.T) {
	var c Noop

	found, err := c.Get(context.Background(), "dashboard", &payload{})
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, c.Set(context.Background(), "dashboard", payload{}))
}
