// Package usecase はmealsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"seeek_backend/internal/feature/meals/domain/entity"
)

const (
	// MaxMealNameLength は料理名の最大文字数（rune数）です。
	MaxMealNameLength = 200
)

// Recommender はプロフィールから食事提案を生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Recommender interface {
	Recommend(ctx context.Context, p entity.Profile) ([]entity.Recommendation, error)
}

// Analyzer は1つの料理の詳細分析を生成するインターフェースです。
type Analyzer interface {
	Analyze(ctx context.Context, mealName string, p entity.Profile) (*entity.Analysis, error)
}

// mealsUsecase は食事提案・食事分析のビジネスロジックを提供します。
type mealsUsecase struct {
	recommender Recommender
	analyzer    Analyzer
}

// NewMealsUsecase はmealsUsecaseの新しいインスタンスを生成します。
func NewMealsUsecase(r Recommender, a Analyzer) *mealsUsecase {
	return &mealsUsecase{recommender: r, analyzer: a}
}

// Recommend はユーザープロフィールに合わせた食事提案を返します。
func (u *mealsUsecase) Recommend(ctx context.Context, p entity.Profile) ([]entity.Recommendation, error) {
	recs, err := u.recommender.Recommend(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("meal recommendation failed: %w", err)
	}
	return recs, nil
}

// Analyze は指定された料理の詳細な栄養分析を返します。
func (u *mealsUsecase) Analyze(ctx context.Context, mealName string, p entity.Profile) (*entity.Analysis, error) {
	if mealName == "" {
		return nil, fmt.Errorf("meal name is required")
	}
	if utf8.RuneCountInString(mealName) > MaxMealNameLength {
		return nil, fmt.Errorf("meal name exceeds maximum length of %d characters", MaxMealNameLength)
	}
	analysis, err := u.analyzer.Analyze(ctx, mealName, p)
	if err != nil {
		return nil, fmt.Errorf("meal analysis failed for %q: %w", mealName, err)
	}
	return analysis, nil
}
