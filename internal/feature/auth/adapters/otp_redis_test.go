package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"seeek_backend/internal/feature/auth/usecase"
)

func TestOTPRedis_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewOTPRedis(db, "otp")

	mock.ExpectSet("otp:ada@example.com", 1234, 2*time.Hour).SetVal("OK")

	err := store.Set(context.Background(), "ada@example.com", 1234, 2*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestOTPRedis_Get(t *testing.T) {
	t.Run("pending entry", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewOTPRedis(db, "otp")

		mock.ExpectGet("otp:ada@example.com").SetVal("1234")

		code, err := store.Get(context.Background(), "ada@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != 1234 {
			t.Errorf("expected 1234, got %d", code)
		}
	})

	t.Run("missing entry reports expired", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewOTPRedis(db, "otp")

		mock.ExpectGet("otp:ada@example.com").RedisNil()

		_, err := store.Get(context.Background(), "ada@example.com")
		if err != usecase.ErrOTPExpired {
			t.Errorf("expected ErrOTPExpired, got: %v", err)
		}
	})

	t.Run("corrupt entry", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewOTPRedis(db, "otp")

		mock.ExpectGet("otp:ada@example.com").SetVal("not-a-number")

		_, err := store.Get(context.Background(), "ada@example.com")
		if err == nil {
			t.Errorf("expected an error for corrupt entry")
		}
	})
}

func TestOTPRedis_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewOTPRedis(db, "otp")

	mock.ExpectDel("otp:ada@example.com").SetVal(1)

	if err := store.Delete(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestOTPRedis_DefaultPrefix(t *testing.T) {
	db, _ := redismock.NewClientMock()
	store := NewOTPRedis(db, "")

	if store.prefix != "otp" {
		t.Errorf("expected default prefix %q, got %q", "otp", store.prefix)
	}
}
