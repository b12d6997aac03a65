// Package usecase はblogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"seeek_backend/internal/feature/blog/domain/entity"
)

// Generator はブログコンテンツを生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Generator interface {
	// Topics はプロフィールに合わせた記事候補を生成します。
	Topics(ctx context.Context, p entity.Profile) ([]entity.Topic, error)

	// Post は指定されたトピックの長文記事を生成します。
	Post(ctx context.Context, req entity.PostRequest, p entity.Profile) (*entity.Post, error)
}

// blogUsecase はブログ生成のビジネスロジックを提供します。
type blogUsecase struct {
	generator Generator
}

// NewBlogUsecase はblogUsecaseの新しいインスタンスを生成します。
func NewBlogUsecase(g Generator) *blogUsecase {
	return &blogUsecase{generator: g}
}

// Topics はプロフィールに合わせた記事候補を返します。
func (u *blogUsecase) Topics(ctx context.Context, p entity.Profile) ([]entity.Topic, error) {
	topics, err := u.generator.Topics(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("blog topic generation failed: %w", err)
	}
	return topics, nil
}

// Post は長文記事を生成します。全フィールド必須です。
func (u *blogUsecase) Post(ctx context.Context, req entity.PostRequest, p entity.Profile) (*entity.Post, error) {
	if req.Topic == "" || req.Category == "" || req.ReadingTime == "" || req.TargetAudience == "" {
		return nil, fmt.Errorf("all post fields are required")
	}
	post, err := u.generator.Post(ctx, req, p)
	if err != nil {
		return nil, fmt.Errorf("blog post generation failed for %q: %w", req.Topic, err)
	}
	return post, nil
}
