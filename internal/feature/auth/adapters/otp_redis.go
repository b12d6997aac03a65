package adapters

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"seeek_backend/internal/feature/auth/usecase"
)

// otpRedis implements usecase.OTPStore on Redis. Entries carry an
// explicit TTL, so eviction is handled by Redis itself and pending
// codes are visible to every server instance.
type otpRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure otpRedis implements OTPStore.
var _ usecase.OTPStore = (*otpRedis)(nil)

// NewOTPRedis creates a new Redis-backed OTP store. If prefix is
// empty, it defaults to "otp".
func NewOTPRedis(client *redis.Client, prefix string) *otpRedis {
	if prefix == "" {
		prefix = "otp"
	}
	return &otpRedis{client: client, prefix: prefix}
}

// otpKey returns the Redis key for an email's pending code.
func (r *otpRedis) otpKey(email string) string {
	return fmt.Sprintf("%s:%s", r.prefix, email)
}

// Set stores the code with the given TTL, overwriting any pending entry.
func (r *otpRedis) Set(ctx context.Context, email string, code int, ttl time.Duration) error {
	return r.client.Set(ctx, r.otpKey(email), code, ttl).Err()
}

// Get returns the pending code, or usecase.ErrOTPExpired when no entry exists.
func (r *otpRedis) Get(ctx context.Context, email string) (int, error) {
	val, err := r.client.Get(ctx, r.otpKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, usecase.ErrOTPExpired
		}
		return 0, err
	}
	code, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt otp entry for %s: %w", email, err)
	}
	return code, nil
}

// Delete removes the pending entry for the email.
func (r *otpRedis) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.otpKey(email)).Err()
}
