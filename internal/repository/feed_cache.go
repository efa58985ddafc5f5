package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/civiclens/report-service/internal/domain"
)

const feedCacheKey = "complaints:feed"

// FeedCache keeps a short-lived copy of the unfiltered priority feed in
// Redis. It is strictly best effort: a miss or a Redis failure falls through
// to Postgres, and every complaint write invalidates the key.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache builds the cache; a nil client disables it.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

// Get returns the cached feed, or (nil, false) on miss or error.
func (f *FeedCache) Get(ctx context.Context) ([]domain.Complaint, bool) {
	if f == nil || f.client == nil {
		return nil, false
	}
	raw, err := f.client.Get(ctx, feedCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var feed []domain.Complaint
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, false
	}
	return feed, true
}

// Set stores the feed snapshot with the configured TTL.
func (f *FeedCache) Set(ctx context.Context, feed []domain.Complaint) {
	if f == nil || f.client == nil {
		return
	}
	raw, err := json.Marshal(feed)
	if err != nil {
		return
	}
	_ = f.client.Set(ctx, feedCacheKey, raw, f.ttl).Err()
}

// Invalidate drops the cached feed after any complaint write.
func (f *FeedCache) Invalidate(ctx context.Context) error {
	if f == nil || f.client == nil {
		return nil
	}
	err := f.client.Del(ctx, feedCacheKey).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
