// Package handler はbotフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"seeek_backend/internal/api"
	jwtmw "seeek_backend/internal/platform/jwt"
)

// BotUsecase はBot連携コード発行のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BotUsecase interface {
	GenerateCode(ctx context.Context, email string) (int, error)
}

// BotHandler はBot連携コード発行のHTTPリクエストを処理します。
type BotHandler struct {
	uc BotUsecase
}

// NewBotHandler はBotHandlerの新しいインスタンスを生成します。
func NewBotHandler(uc BotUsecase) *BotHandler {
	return &BotHandler{uc: uc}
}

// GenerateCode はWhatsApp Bot連携用の4桁コードを発行します。
//
// エンドポイント: POST /api/v1/generateBotCode（要認証）
func (h *BotHandler) GenerateCode(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	code, err := h.uc.GenerateCode(c.Request.Context(), user.Email)
	if err != nil {
		slog.Error("bot code generation failed", "email", user.Email, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate bot code."})
		return
	}

	c.JSON(http.StatusOK, api.BotCodeResponse{
		Success: true,
		Message: "Code generated successfully.",
		BotCode: code,
	})
}
