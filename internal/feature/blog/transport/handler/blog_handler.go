// Package handler はblogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"seeek_backend/internal/api"
	authentity "seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/blog/domain/entity"
	"seeek_backend/internal/feature/blog/transport/http/dto"
	jwtmw "seeek_backend/internal/platform/jwt"
)

// BlogUsecase はブログ生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BlogUsecase interface {
	Topics(ctx context.Context, p entity.Profile) ([]entity.Topic, error)
	Post(ctx context.Context, req entity.PostRequest, p entity.Profile) (*entity.Post, error)
}

// BlogHandler はブログ生成のHTTPリクエストを処理します。
type BlogHandler struct {
	uc BlogUsecase
}

// NewBlogHandler はBlogHandlerの新しいインスタンスを生成します。
func NewBlogHandler(uc BlogUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

// profileFrom は認証済みユーザーからパーソナライズ用プロフィールを組み立てます。
func profileFrom(user *authentity.User) entity.Profile {
	p := entity.Profile{
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

// Topics はプロフィールに合わせた記事候補を返します。
//
// エンドポイント: GET /api/v1/blog（要認証）
func (h *BlogHandler) Topics(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	topics, err := h.uc.Topics(c.Request.Context(), profileFrom(user))
	if err != nil {
		slog.Error("blog topic generation failed", "email", user.Email, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate blog topics."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog_topics": topics})
}

// Post は指定されたトピックの長文記事を生成して返します。
//
// エンドポイント: POST /api/v1/blog（要認証）
func (h *BlogHandler) Post(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	var req dto.BlogPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Please provide topic, category, reading_time and target_audience."})
		return
	}

	post, err := h.uc.Post(c.Request.Context(), entity.PostRequest{
		Topic:          req.Topic,
		Category:       req.Category,
		ReadingTime:    req.ReadingTime,
		TargetAudience: req.TargetAudience,
	}, profileFrom(user))
	if err != nil {
		slog.Error("blog post generation failed", "topic", req.Topic, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate blog post."})
		return
	}

	c.JSON(http.StatusOK, post)
}
