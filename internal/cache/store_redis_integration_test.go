//go:build integration

package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"renalize/internal/cache"
	"renalize/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *cache.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = cache.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	s.Require().NoError(s.store.PutString(ctx, cache.KeyAadharName, "John Doe"))
	s.Require().NoError(s.store.PutBool(ctx, cache.KeyIsLoggedIn, true))

	v, err := s.store.GetString(ctx, cache.KeyAadharName)
	s.Require().NoError(err)
	s.Equal("John Doe", v)

	b, err := s.store.GetBool(ctx, cache.KeyIsLoggedIn)
	s.Require().NoError(err)
	s.True(b)
}

func (s *RedisStoreSuite) TestAbsentKeysDefault() {
	ctx := context.Background()

	v, err := s.store.GetString(ctx, "missing")
	s.Require().NoError(err)
	s.Equal("", v)

	b, err := s.store.GetBool(ctx, "missing")
	s.Require().NoError(err)
	s.False(b)
}

func (s *RedisStoreSuite) TestClearRemovesOnlyPrefixedKeys() {
	ctx := context.Background()

	s.Require().NoError(s.store.PutString(ctx, cache.KeyUserToken, "tok"))
	s.Require().NoError(s.redis.Client.Set(ctx, "other:app:key", "keepme", 0).Err())

	s.Require().NoError(s.store.Clear(ctx))

	v, err := s.store.GetString(ctx, cache.KeyUserToken)
	s.Require().NoError(err)
	s.Equal("", v)

	kept, err := s.redis.Client.Get(ctx, "other:app:key").Result()
	s.Require().NoError(err)
	s.Equal("keepme", kept)
}
