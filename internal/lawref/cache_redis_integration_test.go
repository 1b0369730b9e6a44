//go:build integration

package lawref_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"codecheck/internal/lawref"
	"codecheck/pkg/testutil/containers"
)

type countingStore struct {
	inner lawref.Store
	calls int
}

func (c *countingStore) FindByCodes(ctx context.Context, codes []string) (map[string]lawref.LawDoc, []string, error) {
	c.calls++
	return c.inner.FindByCodes(ctx, codes)
}

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestReadThroughBackfill() {
	ctx := context.Background()
	backing := &countingStore{inner: lawref.NewMemoryStore([]lawref.LawDoc{
		{Code: "주차장법-19", Title: "주차장법", Article: "제19조"},
	})}
	cache := lawref.NewRedisCache(backing, s.redis.Client, time.Minute)

	found, missing, err := cache.FindByCodes(ctx, []string{"주차장법-19"})
	s.Require().NoError(err)
	s.Len(found, 1)
	s.Empty(missing)
	s.Equal(1, backing.calls)

	// Second read is served from Redis.
	found, _, err = cache.FindByCodes(ctx, []string{"주차장법-19"})
	s.Require().NoError(err)
	s.Equal("제19조", found["주차장법-19"].Article)
	s.Equal(1, backing.calls)
}

func (s *RedisCacheSuite) TestMissingCodesAreNotCached() {
	ctx := context.Background()
	backing := &countingStore{inner: lawref.NewMemoryStore(nil)}
	cache := lawref.NewRedisCache(backing, s.redis.Client, time.Minute)

	_, missing, err := cache.FindByCodes(ctx, []string{"건축법-57"})
	s.Require().NoError(err)
	s.Equal([]string{"건축법-57"}, missing)

	_, missing, err = cache.FindByCodes(ctx, []string{"건축법-57"})
	s.Require().NoError(err)
	s.Equal([]string{"건축법-57"}, missing)
	s.Equal(2, backing.calls, "misses go back to the inner store every time")
}

func (s *RedisCacheSuite) TestCorruptCacheEntryFallsThrough() {
	ctx := context.Background()
	backing := &countingStore{inner: lawref.NewMemoryStore([]lawref.LawDoc{
		{Code: "건축법-44", Title: "건축법"},
	})}
	cache := lawref.NewRedisCache(backing, s.redis.Client, time.Minute)

	s.Require().NoError(s.redis.Client.Set(ctx, "lawref:건축법-44", "{not json", time.Minute).Err())

	found, _, err := cache.FindByCodes(ctx, []string{"건축법-44"})
	s.Require().NoError(err)
	s.Equal("건축법", found["건축법-44"].Title)
	s.Equal(1, backing.calls)
}
