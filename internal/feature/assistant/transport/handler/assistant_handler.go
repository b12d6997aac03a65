// Package handler はassistantフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"seeek_backend/internal/api"
	"seeek_backend/internal/feature/assistant/domain/entity"
	"seeek_backend/internal/feature/assistant/transport/http/dto"
	authentity "seeek_backend/internal/feature/auth/domain/entity"
	jwtmw "seeek_backend/internal/platform/jwt"
)

// AssistantUsecase は栄養アシスタントのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AssistantUsecase interface {
	Chat(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error)
}

// AssistantHandler は栄養アシスタントチャットのHTTPリクエストを処理します。
type AssistantHandler struct {
	uc AssistantUsecase
}

// NewAssistantHandler はAssistantHandlerの新しいインスタンスを生成します。
func NewAssistantHandler(uc AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// profileFrom は認証済みユーザーからパーソナライズ用プロフィールを組み立てます。
func profileFrom(user *authentity.User) entity.Profile {
	p := entity.Profile{
		FirstName: user.FirstName,
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

// Chat は会話履歴を踏まえた構造化返答を返します。
//
// エンドポイント: POST /api/v1/sendChat（要認証）
func (h *AssistantHandler) Chat(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	var req dto.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Message content is required."})
		return
	}

	reply, err := h.uc.Chat(c.Request.Context(), req.ChatHistory, req.CurrentMessage, profileFrom(user))
	if err != nil {
		slog.Error("chat session failed", "email", user.Email, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process chat context."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
