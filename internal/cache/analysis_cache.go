package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"moim/internal/domain"
	"moim/internal/port"
)

// analysisTTL is the fixed lifetime of every cached analysis.
const analysisTTL = 24 * time.Hour

// keyPrefix namespaces analysis entries in the shared cache store.
const keyPrefix = "moim:analysis:"

// Key derives the cache key for an analysis from the prompt version, the
// model version, and the full source text, in that fixed order. Changing
// either version tag invalidates all previously cached analyses without a
// manual flush.
func Key(promptVersion, modelVersion, text string) string {
	sum := sha256.Sum256([]byte(promptVersion + "|" + modelVersion + "|" + text))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// AnalysisCache is an advisory cache of structured analyses. A nil store,
// a store I/O failure, or a corrupt entry all behave as a miss; Put
// failures are logged and swallowed. It must never fail the surrounding
// analyzer call.
type AnalysisCache struct {
	store  port.CacheStore
	logger *zap.Logger
}

// NewAnalysisCache creates an AnalysisCache. store may be nil, which
// degrades the cache to always-miss behavior.
func NewAnalysisCache(store port.CacheStore, logger *zap.Logger) *AnalysisCache {
	return &AnalysisCache{store: store, logger: logger}
}

// Get returns the cached analysis for key, or nil on any kind of miss.
func (c *AnalysisCache) Get(ctx context.Context, key string) *domain.AnalysisResult {
	if c.store == nil {
		return nil
	}
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("analysis cache read failed, treating as miss",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.Warn("analysis cache entry is corrupt, treating as miss",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return &result
}

// Put writes an analysis back into the cache, best effort.
func (c *AnalysisCache) Put(ctx context.Context, key string, result *domain.AnalysisResult) {
	if c.store == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("analysis cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, string(raw), analysisTTL); err != nil {
		c.logger.Warn("analysis cache write failed", zap.String("key", key), zap.Error(err))
	}
}
