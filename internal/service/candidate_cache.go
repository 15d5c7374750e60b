package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/samadhan-service/internal/domain"
)

const candidateKeyPrefix = "dedup:candidates:"

// CandidateCache keeps short-lived per-category candidate sets for the
// duplicate scan, so back-to-back submissions in the same category do not
// re-read the whole table. Cache failures degrade to a miss; they never
// fail the calling operation.
type CandidateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCandidateCache builds a cache around an existing redis client. A nil
// client yields a cache that always misses.
func NewCandidateCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *CandidateCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CandidateCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached candidate set for a category.
func (c *CandidateCache) Get(ctx context.Context, category domain.ComplaintCategory) ([]domain.Complaint, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, candidateKey(category)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("candidate cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var candidates []domain.Complaint
	if err := json.Unmarshal(raw, &candidates); err != nil {
		c.logger.Warn("candidate cache decode failed", zap.Error(err))
		return nil, false
	}
	return candidates, true
}

// Set stores the candidate set for a category.
func (c *CandidateCache) Set(ctx context.Context, category domain.ComplaintCategory, candidates []domain.Complaint) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(candidates)
	if err != nil {
		c.logger.Warn("candidate cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, candidateKey(category), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("candidate cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached set after a complaint is created in the
// category, so the new record participates in subsequent duplicate checks.
func (c *CandidateCache) Invalidate(ctx context.Context, category domain.ComplaintCategory) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, candidateKey(category)).Err(); err != nil {
		c.logger.Warn("candidate cache invalidate failed", zap.Error(err))
	}
}

func candidateKey(category domain.ComplaintCategory) string {
	return candidateKeyPrefix + string(category)
}
