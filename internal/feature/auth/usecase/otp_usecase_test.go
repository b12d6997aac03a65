package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAuthUsecase_SendOTP(t *testing.T) {
	t.Run("stores a 4-digit code with the fixed TTL", func(t *testing.T) {
		var storedCode int
		var storedTTL time.Duration
		otps := &mockOTPStore{
			SetFunc: func(ctx context.Context, email string, code int, ttl time.Duration) error {
				storedCode = code
				storedTTL = ttl
				return nil
			},
		}
		mailer := &mockMailer{}

		uc := newTestUsecase(nil, nil, nil, otps, nil, mailer, nil)
		if err := uc.SendOTP(context.Background(), "ada@example.com", "Ada"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if storedCode < 1000 || storedCode > 9999 {
			t.Errorf("expected 4-digit code, got %d", storedCode)
		}
		if storedTTL != OTPTTL {
			t.Errorf("expected TTL %v, got %v", OTPTTL, storedTTL)
		}
		if mailer.OTPMailCalls != 1 {
			t.Errorf("expected 1 mail dispatch, got %d", mailer.OTPMailCalls)
		}
	})

	t.Run("mail failure is still reported as success", func(t *testing.T) {
		mailer := &mockMailer{
			SendOTPMailFunc: func(ctx context.Context, email, name string, code int) error {
				return errors.New("smtp connection refused")
			},
		}

		uc := newTestUsecase(nil, nil, nil, &mockOTPStore{}, nil, mailer, nil)
		if err := uc.SendOTP(context.Background(), "ada@example.com", "Ada"); err != nil {
			t.Errorf("expected success despite mail failure, got: %v", err)
		}
	})

	t.Run("store failure aborts", func(t *testing.T) {
		storeErr := errors.New("redis down")
		otps := &mockOTPStore{
			SetFunc: func(ctx context.Context, email string, code int, ttl time.Duration) error {
				return storeErr
			},
		}
		mailer := &mockMailer{}

		uc := newTestUsecase(nil, nil, nil, otps, nil, mailer, nil)
		err := uc.SendOTP(context.Background(), "ada@example.com", "Ada")

		if !errors.Is(err, storeErr) {
			t.Errorf("expected store error, got: %v", err)
		}
		if mailer.OTPMailCalls != 0 {
			t.Errorf("mail should not be sent when the store fails")
		}
	})
}

func TestAuthUsecase_VerifyOTP(t *testing.T) {
	t.Run("no pending entry", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil, &mockOTPStore{}, nil, nil, nil)

		err := uc.VerifyOTP(context.Background(), "ada@example.com", 1234)

		if !errors.Is(err, ErrOTPExpired) {
			t.Errorf("expected ErrOTPExpired, got: %v", err)
		}
	})

	t.Run("mismatched code", func(t *testing.T) {
		otps := &mockOTPStore{
			GetFunc: func(ctx context.Context, email string) (int, error) {
				return 1234, nil
			},
		}
		uc := newTestUsecase(nil, nil, nil, otps, nil, nil, nil)

		err := uc.VerifyOTP(context.Background(), "ada@example.com", 9999)

		if !errors.Is(err, ErrOTPInvalid) {
			t.Errorf("expected ErrOTPInvalid, got: %v", err)
		}
		if otps.DeleteCalls != 0 {
			t.Errorf("mismatch must not consume the entry")
		}
	})

	t.Run("match consumes the entry and records verification", func(t *testing.T) {
		otps := &mockOTPStore{
			GetFunc: func(ctx context.Context, email string) (int, error) {
				return 1234, nil
			},
		}
		verifications := &mockVerificationRepository{}
		uc := newTestUsecase(nil, verifications, nil, otps, nil, nil, nil)

		if err := uc.VerifyOTP(context.Background(), "ada@example.com", 1234); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if otps.DeleteCalls != 1 {
			t.Errorf("expected entry to be consumed, Delete calls: %d", otps.DeleteCalls)
		}
		if verifications.CreateCalls != 1 {
			t.Errorf("expected 1 verification record, got %d", verifications.CreateCalls)
		}
	})

	t.Run("replaying a consumed code reports expired", func(t *testing.T) {
		// 実ストアに近い振る舞い: Delete後のGetはErrOTPExpired
		pending := map[string]int{"ada@example.com": 1234}
		otps := &mockOTPStore{
			GetFunc: func(ctx context.Context, email string) (int, error) {
				code, ok := pending[email]
				if !ok {
					return 0, ErrOTPExpired
				}
				return code, nil
			},
			DeleteFunc: func(ctx context.Context, email string) error {
				delete(pending, email)
				return nil
			},
		}
		uc := newTestUsecase(nil, nil, nil, otps, nil, nil, nil)

		if err := uc.VerifyOTP(context.Background(), "ada@example.com", 1234); err != nil {
			t.Fatalf("first verification failed: %v", err)
		}

		err := uc.VerifyOTP(context.Background(), "ada@example.com", 1234)
		if !errors.Is(err, ErrOTPExpired) {
			t.Errorf("expected ErrOTPExpired on replay, got: %v", err)
		}
	})
}
