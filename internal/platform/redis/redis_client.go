// Package redis はOTPストアと食事提案キャッシュが共有する
// Redisクライアントを構築します。
package redis

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// dbIndex はREDIS_DBで選択された論理DB番号を返します。
// 未設定または不正な値は0にフォールバックします。
func dbIndex() int {
	raw := os.Getenv("REDIS_DB")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		slog.Warn("invalid REDIS_DB, falling back to 0", "value", raw)
		return 0
	}
	return n
}

// NewRedisClient はREDIS_HOST/REDIS_PORT/REDIS_PASSWORD/REDIS_DBから
// クライアントを構築し、Pingで疎通を確認します。
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")
	password := os.Getenv("REDIS_PASSWORD")
	db := dbIndex()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr, "db", db)
	return rdb, nil
}
