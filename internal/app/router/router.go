package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	assistanthandler "seeek_backend/internal/feature/assistant/transport/handler"
	authhandler "seeek_backend/internal/feature/auth/transport/handler"
	bloghandler "seeek_backend/internal/feature/blog/transport/handler"
	bothandler "seeek_backend/internal/feature/bot/transport/handler"
	mealshandler "seeek_backend/internal/feature/meals/transport/handler"
	scanhandler "seeek_backend/internal/feature/scan/transport/handler"
	jwtmw "seeek_backend/internal/platform/jwt"
	"seeek_backend/internal/platform/sanitize"
)

// Handlers は各フィーチャーのHTTPハンドラーをまとめたものです。
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Meals     *mealshandler.MealsHandler
	Blog      *bloghandler.BlogHandler
	Assistant *assistanthandler.AssistantHandler
	Scan      *scanhandler.ScanHandler
	Bot       *bothandler.BotHandler
}

// NewRouter は全ルートを登録したgin.Engineを返します。
// usersは認証ミドルウェアがトークンのemailクレームからアカウントを
// 引き直すために使用します。
func NewRouter(h Handlers, users jwtmw.UserFinder, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// リクエストボディの危険キー除去（multipartは素通し）
	r.Use(sanitize.RequestBody())

	// 導通確認用
	r.GET("/healthz", Health)

	v1 := r.Group("/api/v1")
	{
		// 認証不要
		v1.POST("/signup", h.Auth.Signup)
		v1.POST("/login", h.Auth.Login)
		v1.POST("/otp", h.Auth.SendOTP)
		v1.POST("/verifyOTP", h.Auth.VerifyOTP)
		v1.POST("/forgotPassword", h.Auth.ForgotPassword)
		v1.POST("/resetPassword", h.Auth.ResetPassword)
		v1.POST("/verifyToken", h.Auth.VerifyGoogleToken)

		// 連携サインアップ直後のオンボーディングはトークンを持たないため、
		// プロフィール補完は認証グループの外に置く。本人確認はボディの
		// email + 検証レコードで行われる。
		v1.POST("/completeSignup", h.Auth.CompleteSignup)

		// 認証必須のルート
		auth := v1.Group("/")
		auth.Use(jwtmw.AuthRequired(users))
		{
			auth.POST("/refreshToken", h.Auth.RefreshToken)

			auth.GET("/recommendMeals", h.Meals.Recommend)
			auth.POST("/getAnalysis", h.Meals.Analyze)

			auth.GET("/blog", h.Blog.Topics)
			auth.POST("/blog", h.Blog.Post)

			auth.POST("/sendChat", h.Assistant.Chat)

			auth.POST("/imageScan", h.Scan.ImageScan)
			auth.POST("/analyzeQrCode", h.Scan.AnalyzeBarcode)

			auth.POST("/generateBotCode", h.Bot.GenerateCode)
		}
	}

	return r
}
