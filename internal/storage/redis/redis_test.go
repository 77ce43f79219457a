package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/studentportal-server/internal/model"
)

// fakeRedis overrides the commands Store uses; anything else panics.
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	err    error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStore_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{values: map[string]string{}}
	s := New(fake, "portal:")

	require.NoError(t, s.Set(ctx, "users", "[]"))
	assert.Equal(t, "[]", fake.values["portal:users"])

	got, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	require.NoError(t, s.Remove(ctx, "users"))
	assert.Empty(t, fake.values)
}

func TestStore_Get_MissingKey(t *testing.T) {
	s := New(&fakeRedis{values: map[string]string{}}, "")

	_, err := s.Get(context.Background(), "token")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	s := New(&fakeRedis{values: map[string]string{}, err: errors.New("conn refused")}, "")

	_, err := s.Get(ctx, "token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get key")

	err = s.Set(ctx, "token", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set key")

	err = s.Remove(ctx, "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete key")
}
