package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/usecase"
)

// EnvKeySecretKey はトークン署名シークレットの環境変数名です。
const EnvKeySecretKey = "SECRET_KEY"

// Generator signs payloads into time-boxed HS256 bearer credentials.
// It is a pure transformation: nothing is persisted, and validity is
// determined solely by signature and expiry at parse time. No
// revocation list exists.
type Generator struct {
	secret []byte
}

// GeneratorがTokenIssuerを実装していることをコンパイル時に検証します。
var _ usecase.TokenIssuer = (*Generator)(nil)

// NewGenerator creates a new JWT generator with the provided secret.
func NewGenerator(secret string) *Generator {
	return &Generator{secret: []byte(secret)}
}

// sign signs the claims after stamping exp/iat.
func (g *Generator) sign(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssueUserToken はユーザーの公開フィールドを署名済みトークンに埋め込みます。
// パスワードハッシュは決して含まれません。
func (g *Generator) IssueUserToken(user *entity.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":               user.ID,
		"firstName":         user.FirstName,
		"lastName":          user.LastName,
		"email":             user.Email,
		"phone_number":      user.PhoneNumber,
		"oauth":             user.OAuth,
		"oauth_method":      user.OAuthMethod,
		"nationality":       user.Nationality,
		"dietType":          user.DietType,
		"allergies":         []string(user.Allergies),
		"userGoals":         []string(user.UserGoals),
		"account_completed": user.AccountCompleted,
	}
	return g.sign(claims, ttl)
}

// IssueResetToken は{email, token}ペイロードの短命トークンを発行します。
func (g *Generator) IssueResetToken(email, token string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"token": token,
	}
	return g.sign(claims, ttl)
}

// ParseResetToken は署名と有効期限を検証し、埋め込まれたメールアドレスと
// 不透明トークンを取り出します。
func (g *Generator) ParseResetToken(signed string) (string, string, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid reset token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid reset token claims")
	}
	email, _ := claims["email"].(string)
	raw, _ := claims["token"].(string)
	if email == "" || raw == "" {
		return "", "", fmt.Errorf("reset token missing email or token claim")
	}
	return email, raw, nil
}
