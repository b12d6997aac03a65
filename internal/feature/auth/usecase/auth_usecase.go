package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"seeek_backend/internal/feature/auth/domain/entity"
)

const (
	// AuthTokenTTL は通常のベアラークレデンシャルの有効期間です。
	AuthTokenTTL = 90 * 24 * time.Hour
	// RefreshTokenTTL はリフレッシュで再発行されるトークンの有効期間です。
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// emailPattern は簡易的なメールアドレス形式チェックです。
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// namePattern は名前フィールドに許可される文字（英数字とスペース）です。
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

// SignupInput は新規アカウント作成の入力です。
type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	OAuth       string
	OAuthMethod string
}

// LoginInput はログインの入力です。
type LoginInput struct {
	Email       string
	Password    string
	OAuth       string
	OAuthMethod string
}

// CompleteSignupInput はプロフィール補完の入力です。
type CompleteSignupInput struct {
	Email    string
	IsGoogle bool
	Profile  ProfileUpdate
}

// authUsecase は検証オーケストレーターです。サインアップ、OTP発行/検証、
// ログイン、プロフィール補完、パスワードリセットを、注入された
// ストアとコラボレーターの組み合わせで実装します。
type authUsecase struct {
	users         UserRepository
	verifications VerificationRepository
	resets        PasswordResetRepository
	otps          OTPStore
	tokens        TokenIssuer
	mailer        Mailer
	google        IDTokenVerifier
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(
	users UserRepository,
	verifications VerificationRepository,
	resets PasswordResetRepository,
	otps OTPStore,
	tokens TokenIssuer,
	mailer Mailer,
	google IDTokenVerifier,
) *authUsecase {
	return &authUsecase{
		users:         users,
		verifications: verifications,
		resets:        resets,
		otps:          otps,
		tokens:        tokens,
		mailer:        mailer,
		google:        google,
	}
}

// Signup は新規アカウントを登録し、90日有効のトークンを返します。
//
// 検証レコードはアカウント行と同一トランザクションで作成されます。
// サインアップ直後にverified=trueが記録されるため、OTPフローを
// 経由しなくてもログインは可能です。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, string, error) {
	password := in.Password
	if in.OAuth != "" && in.OAuthMethod != "" {
		password = ""
	} else if password == "" {
		return nil, "", fmt.Errorf("%w: password is required", ErrBadRequest)
	}

	// 重複メールは形式チェックより先に判定する（一意制約違反も
	// アダプタ側で検出される）
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	}

	if !emailPattern.MatchString(in.Email) {
		return nil, "", ErrInvalidEmailFormat
	}
	if !namePattern.MatchString(in.FirstName) || !namePattern.MatchString(in.LastName) {
		return nil, "", ErrInvalidName
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Password:    string(hashed),
		OAuth:       in.OAuth,
		OAuthMethod: in.OAuthMethod,
		Allergies:   entity.StringList{},
		UserGoals:   entity.StringList{},
	}
	if err := u.users.CreateVerified(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueUserToken(user, AuthTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login はユーザーを認証し、成功時にユーザーとトークンを返します。
// 判定順序: 未登録、未検証、連携アカウント、パスワード不一致。
func (u *authUsecase) Login(ctx context.Context, in LoginInput) (*entity.User, string, error) {
	if in.Email == "" {
		return nil, "", ErrBadRequest
	}
	password := in.Password
	if in.OAuth != "" && in.OAuthMethod != "" {
		password = ""
	} else if password == "" {
		return nil, "", ErrBadRequest
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}

	verified, err := u.verifications.Exists(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if !verified {
		return nil, "", ErrEmailNotVerified
	}

	if user.IsFederated() {
		return nil, "", ErrOAuthLoginRequired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.IssueUserToken(user, AuthTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// CompleteSignup は生体・嗜好プロフィールを設定し、onboarding完了を記録します。
// 連携サインアップ（IsGoogle）の場合は検証チェックを省略し、検証レコードを
// その場で作成します。
func (u *authUsecase) CompleteSignup(ctx context.Context, in CompleteSignupInput) (*entity.User, string, error) {
	if _, err := u.users.FindByEmail(ctx, in.Email); err != nil {
		return nil, "", err
	}

	verified, err := u.verifications.ExistsVerified(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if !verified {
		if !in.IsGoogle {
			return nil, "", ErrEmailNotVerified
		}
		if err := u.verifications.Create(ctx, in.Email); err != nil {
			return nil, "", err
		}
	} else if in.IsGoogle {
		// 連携フラグ付きは既存レコードの有無に関わらず追記する
		if err := u.verifications.Create(ctx, in.Email); err != nil {
			return nil, "", err
		}
	}

	updated, err := u.users.UpdateProfile(ctx, in.Email, in.Profile)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueUserToken(updated, AuthTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return updated, token, nil
}

// RefreshToken は認証済みプリンシパルに対して30日有効のトークンを再発行します。
func (u *authUsecase) RefreshToken(user *entity.User) (string, error) {
	token, err := u.tokens.IssueUserToken(user, RefreshTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// VerifyGoogleToken は連携IDトークンを検証します。
func (u *authUsecase) VerifyGoogleToken(ctx context.Context, token string) error {
	if err := u.google.Verify(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", ErrGoogleTokenInvalid, err)
	}
	return nil
}
