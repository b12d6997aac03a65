// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"seeek_backend/internal/feature/meals/domain/entity"
	"seeek_backend/internal/feature/meals/usecase"
)

// CachingRecommender decorates a Recommender with Redis caching keyed
// by account email. It implements the decorator pattern, transparently
// adding caching without modifying the underlying generator: AI calls
// are slow and billed, so repeated recommendation fetches within the
// TTL are served from Redis.
type CachingRecommender struct {
	inner     usecase.Recommender
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingRecommenderがRecommenderを実装していることをコンパイル時に検証します。
var _ usecase.Recommender = (*CachingRecommender)(nil)

// NewCachingRecommender decorates a Recommender with Redis caching.
// If ttl is 0, it defaults to 6 hours. If namespace is empty, it uses
// "mealrec". A nil Redis client disables caching entirely.
func NewCachingRecommender(rdb *redis.Client, ttl time.Duration, inner usecase.Recommender, namespace string) *CachingRecommender {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	if namespace == "" {
		namespace = "mealrec"
	}
	return &CachingRecommender{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// key returns the Redis key for an account's cached recommendations.
func (c *CachingRecommender) key(email string) string {
	return fmt.Sprintf("%s:%s", c.namespace, email)
}

// Recommend はキャッシュを参照し、ヒットすればそれを、
// ミスすれば内側のRecommenderの結果を返してキャッシュします。
// キャッシュ層の障害は警告ログに留め、生成自体は継続します。
func (c *CachingRecommender) Recommend(ctx context.Context, p entity.Profile) ([]entity.Recommendation, error) {
	if c.rdb == nil {
		return c.inner.Recommend(ctx, p)
	}

	key := c.key(p.Email)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached []entity.Recommendation
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// 壊れたエントリは破棄して生成にフォールバック
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		slog.Warn("recommendation cache read failed", "key", key, "error", err)
	}

	recs, err := c.inner.Recommend(ctx, p)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(recs); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Warn("recommendation cache write failed", "key", key, "error", err)
		}
	}
	return recs, nil
}
