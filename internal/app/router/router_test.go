package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	assistanthandler "seeek_backend/internal/feature/assistant/transport/handler"
	authentity "seeek_backend/internal/feature/auth/domain/entity"
	authhandler "seeek_backend/internal/feature/auth/transport/handler"
	"seeek_backend/internal/feature/auth/usecase"
	bloghandler "seeek_backend/internal/feature/blog/transport/handler"
	bothandler "seeek_backend/internal/feature/bot/transport/handler"
	mealshandler "seeek_backend/internal/feature/meals/transport/handler"
	scanhandler "seeek_backend/internal/feature/scan/transport/handler"
)

// stubUserFinder は認証ミドルウェア用の最小実装です。
type stubUserFinder struct{}

func (stubUserFinder) FindByEmail(ctx context.Context, email string) (*authentity.User, error) {
	return nil, usecase.ErrUserNotFound
}

// setupRouter はユースケース未接続のハンドラーでルートテーブルだけを組み立てます。
// ボディのバインドで弾かれるリクエストを送る限り、ユースケースには到達しません。
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handlers{
		Auth:      authhandler.NewAuthHandler(nil),
		Meals:     mealshandler.NewMealsHandler(nil),
		Blog:      bloghandler.NewBlogHandler(nil),
		Assistant: assistanthandler.NewAssistantHandler(nil),
		Scan:      scanhandler.NewScanHandler(nil),
		Bot:       bothandler.NewBotHandler(nil),
	}
	return NewRouter(h, stubUserFinder{}, nil)
}

func postEmptyJSON(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_OTPRouteRegistered(t *testing.T) {
	r := setupRouter()

	// 空ボディはバインドで400になる。404ならルート未登録。
	w := postEmptyJSON(r, "/api/v1/otp")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_CompleteSignupIsPublic(t *testing.T) {
	r := setupRouter()

	// Authorizationヘッダー無しでもミドルウェアの401ではなく
	// ハンドラー自身のバインド400に到達する。
	w := postEmptyJSON(r, "/api/v1/completeSignup")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_RefreshTokenRequiresAuth(t *testing.T) {
	r := setupRouter()

	w := postEmptyJSON(r, "/api/v1/refreshToken")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
