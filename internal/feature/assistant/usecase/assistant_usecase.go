// Package usecase はassistantフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"seeek_backend/internal/feature/assistant/domain/entity"
)

// ErrEmptyMessage はメッセージ本文が空の場合に返されます。
var ErrEmptyMessage = errors.New("message content is required")

// Responder はチャットの返答を生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Responder interface {
	Respond(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error)
}

// assistantUsecase は栄養アシスタントチャットのビジネスロジックを提供します。
type assistantUsecase struct {
	responder Responder
}

// NewAssistantUsecase はassistantUsecaseの新しいインスタンスを生成します。
func NewAssistantUsecase(r Responder) *assistantUsecase {
	return &assistantUsecase{responder: r}
}

// Chat は直近の会話履歴を踏まえた構造化返答を返します。
func (u *assistantUsecase) Chat(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	reply, err := u.responder.Respond(ctx, history, message, p)
	if err != nil {
		return nil, fmt.Errorf("chat response generation failed: %w", err)
	}
	return reply, nil
}
