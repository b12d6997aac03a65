// Package di は実行環境に応じた実装の選択を行います。
package di

import (
	"github.com/redis/go-redis/v9"

	authadapters "seeek_backend/internal/feature/auth/adapters"
	"seeek_backend/internal/feature/auth/usecase"
)

// NewOTPStore creates an OTPStore implementation.
// If Redis is available, it returns a Redis-backed implementation so
// pending codes survive restarts and are shared across instances.
// Otherwise, it falls back to an in-process store for local development.
func NewOTPStore(rdb *redis.Client) usecase.OTPStore {
	if rdb != nil {
		return authadapters.NewOTPRedis(rdb, "otp")
	}
	return authadapters.NewOTPMemory()
}
