// Package handler はmealsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"seeek_backend/internal/api"
	authentity "seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/meals/domain/entity"
	"seeek_backend/internal/feature/meals/transport/http/dto"
	jwtmw "seeek_backend/internal/platform/jwt"
)

// MealsUsecase は食事提案・食事分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MealsUsecase interface {
	Recommend(ctx context.Context, p entity.Profile) ([]entity.Recommendation, error)
	Analyze(ctx context.Context, mealName string, p entity.Profile) (*entity.Analysis, error)
}

// MealsHandler は食事提案・食事分析のHTTPリクエストを処理します。
type MealsHandler struct {
	uc MealsUsecase
}

// NewMealsHandler はMealsHandlerの新しいインスタンスを生成します。
func NewMealsHandler(uc MealsUsecase) *MealsHandler {
	return &MealsHandler{uc: uc}
}

// profileFrom は認証済みユーザーからパーソナライズ用プロフィールを組み立てます。
func profileFrom(user *authentity.User) entity.Profile {
	p := entity.Profile{
		Email:     user.Email,
		Allergies: user.Allergies,
		UserGoals: user.UserGoals,
	}
	if user.Nationality != nil {
		p.Nationality = *user.Nationality
	}
	if user.DietType != nil {
		p.DietType = *user.DietType
	}
	return p
}

// Recommend はパーソナライズされた食事提案を返します。
//
// エンドポイント: GET /api/v1/recommendMeals（要認証）
func (h *MealsHandler) Recommend(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	recs, err := h.uc.Recommend(c.Request.Context(), profileFrom(user))
	if err != nil {
		slog.Error("meal recommendation failed", "email", user.Email, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate meal recommendations."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": gin.H{"recommendations": recs}})
}

// Analyze は指定された料理の詳細な栄養分析を返します。
//
// エンドポイント: POST /api/v1/getAnalysis（要認証）
func (h *MealsHandler) Analyze(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	var req dto.MealAnalysisReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Please provide a meal name."})
		return
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), req.MealName, profileFrom(user))
	if err != nil {
		slog.Error("meal analysis failed", "meal", req.MealName, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to deconstruct meal."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": analysis})
}
