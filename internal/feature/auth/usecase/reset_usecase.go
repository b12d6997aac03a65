package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// ResetTokenTTL はリセットリンクに埋め込まれる署名付きクレデンシャルの
	// 有効期間です。
	ResetTokenTTL = time.Hour

	// resetTokenBytes は不透明トークンのエントロピー（32バイト→64桁hex）です。
	resetTokenBytes = 32
)

// generateResetToken は高エントロピーの不透明トークンを生成します。
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ForgotPassword はリセットリンクを生成してメール送信します。
// リンクは呼び出し元提供のURLに署名付きクレデンシャルをクエリとして
// 連結したものです。URL自体の信頼性は検証されません。
func (u *authUsecase) ForgotPassword(ctx context.Context, email, url string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	raw, err := generateResetToken()
	if err != nil {
		return err
	}

	if err := u.resets.Create(ctx, email, raw); err != nil {
		return err
	}

	signed, err := u.tokens.IssueResetToken(email, raw, ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	link := fmt.Sprintf("%s?token=%s", url, signed)
	if err := u.mailer.SendResetMail(ctx, email, user.FirstName, link); err != nil {
		slog.Warn("reset mail dispatch failed", "email", email, "error", err)
	}
	return nil
}

// ResetPassword は署名付きクレデンシャルを消費して新しいパスワードを設定します。
// 完了時にそのメールの保留トークンを全て削除するため、同じリンクの再利用は
// ErrResetTokenInvalidになります。
func (u *authUsecase) ResetPassword(ctx context.Context, signedToken, newPassword string) error {
	email, raw, err := u.tokens.ParseResetToken(signedToken)
	if err != nil {
		return ErrResetTokenInvalid
	}

	ok, err := u.resets.Exists(ctx, email, raw)
	if err != nil {
		return err
	}
	if !ok {
		return ErrResetTokenInvalid
	}

	if _, err := u.users.FindByEmail(ctx, email); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.users.UpdatePassword(ctx, email, string(hashed)); err != nil {
		return err
	}

	return u.resets.DeleteAllByEmail(ctx, email)
}
