package usecase

import (
	"context"
	"time"

	"seeek_backend/internal/feature/auth/domain/entity"
)

// ProfileUpdate carries the biographical fields written by
// complete-signup. Nil pointers clear the corresponding column,
// matching the original `field || null` behavior.
type ProfileUpdate struct {
	DateOfBirth *string
	Gender      *string
	Height      *string
	Weight      *string
	SkinType    *string
	Nationality *string
	DietType    *string
	Allergies   []string
	UserGoals   []string
}

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// CreateVerified persists a new user and its verification record in a
	// single transaction. It returns ErrEmailAlreadyExists when a user with
	// the same email already exists.
	CreateVerified(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile applies a partial biographical update, sets the
	// onboarding-complete flag, and returns the refreshed user.
	UpdateProfile(ctx context.Context, email string, p ProfileUpdate) (*entity.User, error)

	// UpdatePassword replaces the stored password hash. Previously issued
	// bearer credentials stay valid until their expiry.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// VerificationRepository は検証台帳（user_verification）を抽象化します。
type VerificationRepository interface {
	// Create appends a verified=true record for the email. No upsert is
	// performed; repeated verifications accumulate rows.
	Create(ctx context.Context, email string) error

	// Exists reports whether any verification record exists for the email.
	Exists(ctx context.Context, email string) (bool, error)

	// ExistsVerified reports whether a verified=true record exists for the
	// email.
	ExistsVerified(ctx context.Context, email string) (bool, error)
}

// PasswordResetRepository はパスワードリセット台帳（forgot_password）を抽象化します。
type PasswordResetRepository interface {
	// Create stores an outstanding reset token for the email.
	Create(ctx context.Context, email, token string) error

	// Exists reports whether the email/token pair is outstanding.
	Exists(ctx context.Context, email, token string) (bool, error)

	// DeleteAllByEmail removes every outstanding token for the email,
	// making any previously mailed reset link unusable.
	DeleteAllByEmail(ctx context.Context, email string) error
}

// OTPStore は時限付きOTPエントリの共有ストアを抽象化します。
// 本番実装はRedis（TTL付き）で、マルチインスタンス構成でも
// どのインスタンスからでも検証できます。
type OTPStore interface {
	// Set stores the code for the email with the given TTL,
	// unconditionally overwriting any pending code.
	Set(ctx context.Context, email string, code int, ttl time.Duration) error

	// Get returns the pending code for the email, or ErrOTPExpired when
	// no entry exists (never issued, expired, or already consumed).
	Get(ctx context.Context, email string) (int, error)

	// Delete removes the pending entry for the email.
	Delete(ctx context.Context, email string) error
}

// TokenIssuer は署名付きベアラークレデンシャルの発行・検証を抽象化します。
type TokenIssuer interface {
	// IssueUserToken signs the user's public fields into a bearer
	// credential with the given expiry.
	IssueUserToken(user *entity.User, ttl time.Duration) (string, error)

	// IssueResetToken signs an {email, token} payload for a reset link.
	IssueResetToken(email, token string, ttl time.Duration) (string, error)

	// ParseResetToken verifies a reset credential and extracts the
	// embedded email and raw token.
	ParseResetToken(signed string) (email, token string, err error)
}

// Mailer は確認コードおよびリセットリンクの送信を抽象化します。
type Mailer interface {
	// SendOTPMail delivers the verification code to the address.
	SendOTPMail(ctx context.Context, email, name string, code int) error

	// SendResetMail delivers the password-reset link to the address.
	SendResetMail(ctx context.Context, email, name, link string) error
}

// IDTokenVerifier validates a federated ID token against the
// configured audience.
type IDTokenVerifier interface {
	Verify(ctx context.Context, token string) error
}
