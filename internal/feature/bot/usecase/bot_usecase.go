// Package usecase はbotフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// BotCodeRepository はBotコードを永続化するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BotCodeRepository interface {
	Create(ctx context.Context, email string, code int) error
}

// botUsecase はWhatsApp Botの連携コード発行ロジックを提供します。
type botUsecase struct {
	codes BotCodeRepository
}

// NewBotUsecase はbotUsecaseの新しいインスタンスを生成します。
func NewBotUsecase(codes BotCodeRepository) *botUsecase {
	return &botUsecase{codes: codes}
}

// generateBotCode は4桁の連携コード（1000〜9999）を生成します。
func generateBotCode() int {
	return 1000 + rand.IntN(9000)
}

// GenerateCode は連携コードを発行して永続化し、コードを返します。
func (u *botUsecase) GenerateCode(ctx context.Context, email string) (int, error) {
	code := generateBotCode()
	if err := u.codes.Create(ctx, email, code); err != nil {
		return 0, fmt.Errorf("failed to store bot code: %w", err)
	}
	return code, nil
}
