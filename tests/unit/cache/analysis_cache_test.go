package cache_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"moim/internal/cache"
	"moim/internal/domain"
)

func newMiniredisStore(t *testing.T) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewRedisStoreFromClient(client), mr
}

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Metadata: domain.Metadata{Location: "강남", GroupLabel: "친구 2인", Date: "2025년 12월 7일"},
		Personas: []domain.Persona{
			{Name: "철수", Likes: []string{"조용한"}, Dislikes: []string{"매운"}},
		},
		Courses: []domain.CourseStep{
			{Step: 1, Category: "맛집", FinalQuery: "강남 조용한 파스타"},
		},
	}
}

func TestKey_DeterministicAndVersionSensitive(t *testing.T) {
	k1 := cache.Key("v3", "gpt-4o-mini", "대화 내용")
	k2 := cache.Key("v3", "gpt-4o-mini", "대화 내용")
	assert.Equal(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, "moim:analysis:"))

	assert.NotEqual(t, k1, cache.Key("v4", "gpt-4o-mini", "대화 내용"))
	assert.NotEqual(t, k1, cache.Key("v3", "gpt-4o", "대화 내용"))
	assert.NotEqual(t, k1, cache.Key("v3", "gpt-4o-mini", "다른 대화"))
}

func TestAnalysisCache_RoundTrip(t *testing.T) {
	store, _ := newMiniredisStore(t)
	c := cache.NewAnalysisCache(store, zap.NewNop())
	ctx := context.Background()

	key := cache.Key("v3", "gpt-4o-mini", "대화 내용")
	assert.Nil(t, c.Get(ctx, key))

	want := sampleResult()
	c.Put(ctx, key, want)

	got := c.Get(ctx, key)
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)
}

func TestAnalysisCache_EntryExpires(t *testing.T) {
	store, mr := newMiniredisStore(t)
	c := cache.NewAnalysisCache(store, zap.NewNop())
	ctx := context.Background()

	key := cache.Key("v3", "gpt-4o-mini", "대화 내용")
	c.Put(ctx, key, sampleResult())

	mr.FastForward(25 * time.Hour)

	assert.Nil(t, c.Get(ctx, key))
}

func TestAnalysisCache_CorruptEntryIsMiss(t *testing.T) {
	store, mr := newMiniredisStore(t)
	c := cache.NewAnalysisCache(store, zap.NewNop())

	key := cache.Key("v3", "gpt-4o-mini", "대화 내용")
	require.NoError(t, mr.Set(key, "{not json"))

	assert.Nil(t, c.Get(context.Background(), key))
}

func TestAnalysisCache_NilStoreDegrades(t *testing.T) {
	c := cache.NewAnalysisCache(nil, zap.NewNop())
	ctx := context.Background()

	key := cache.Key("v3", "gpt-4o-mini", "대화 내용")
	assert.Nil(t, c.Get(ctx, key))
	// Put must be a no-op, not a panic.
	c.Put(ctx, key, sampleResult())
	assert.Nil(t, c.Get(ctx, key))
}
