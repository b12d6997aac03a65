package adapters

import (
	"context"
	"sync"
	"time"

	"seeek_backend/internal/feature/auth/usecase"
)

// otpMemory is an in-process OTP store used when Redis is unavailable
// (development fallback). Entries are evicted lazily on access; a
// process restart loses all pending codes, and codes issued on one
// instance are invisible to another.
type otpMemory struct {
	mu      sync.Mutex
	entries map[string]otpEntry
}

type otpEntry struct {
	code      int
	expiresAt time.Time
}

// Compile-time check to ensure otpMemory implements OTPStore.
var _ usecase.OTPStore = (*otpMemory)(nil)

// NewOTPMemory creates a new in-process OTP store.
func NewOTPMemory() *otpMemory {
	return &otpMemory{entries: make(map[string]otpEntry)}
}

// Set stores the code with the given TTL, overwriting any pending entry.
func (m *otpMemory) Set(_ context.Context, email string, code int, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[email] = otpEntry{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get returns the pending code, or usecase.ErrOTPExpired when no live
// entry exists.
func (m *otpMemory) Get(_ context.Context, email string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[email]
	if !ok {
		return 0, usecase.ErrOTPExpired
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, email)
		return 0, usecase.ErrOTPExpired
	}
	return e.code, nil
}

// Delete removes the pending entry for the email.
func (m *otpMemory) Delete(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, email)
	return nil
}
