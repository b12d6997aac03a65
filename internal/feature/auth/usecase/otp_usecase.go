package usecase

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"
)

const (
	// OTPTTL はOTPエントリの有効期間です。
	OTPTTL = 2 * time.Hour
)

// generateOTP は4桁の確認コードを生成します。
// 暗号学的強度は要求されていません（メール所有確認用途のみ）。
func generateOTP() int {
	return 1000 + rand.IntN(9000)
}

// SendOTP はメールアドレス宛の確認コードを発行します。既存の保留コードは
// 無条件に上書きされます。メール配送の失敗は警告ログに留め、呼び出し元には
// 成功として報告されます。クライアントは再送で回復します。
func (u *authUsecase) SendOTP(ctx context.Context, email, name string) error {
	code := generateOTP()
	if err := u.otps.Set(ctx, email, code, OTPTTL); err != nil {
		return err
	}

	if err := u.mailer.SendOTPMail(ctx, email, name, code); err != nil {
		slog.Warn("otp mail dispatch failed", "email", email, "error", err)
	}
	return nil
}

// VerifyOTP は提出されたコードを保留エントリと照合します。
// エントリ無しはErrOTPExpired、不一致はErrOTPInvalidを返します。
// 一致した場合はエントリを削除し、検証レコードを作成します。
// 削除が先に行われるため、同じコードの再送はErrOTPExpiredになります。
func (u *authUsecase) VerifyOTP(ctx context.Context, email string, code int) error {
	cached, err := u.otps.Get(ctx, email)
	if err != nil {
		return err
	}

	if cached != code {
		return ErrOTPInvalid
	}

	if err := u.otps.Delete(ctx, email); err != nil {
		return err
	}

	return u.verifications.Create(ctx, email)
}
