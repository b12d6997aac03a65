package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	"seeek_backend/internal/app/di"
	"seeek_backend/internal/app/router"
	assistantgemini "seeek_backend/internal/feature/assistant/adapters/gemini"
	assistanthandler "seeek_backend/internal/feature/assistant/transport/handler"
	assistantusecase "seeek_backend/internal/feature/assistant/usecase"
	authadapters "seeek_backend/internal/feature/auth/adapters"
	"seeek_backend/internal/feature/auth/adapters/google"
	authhandler "seeek_backend/internal/feature/auth/transport/handler"
	authusecase "seeek_backend/internal/feature/auth/usecase"
	bloggemini "seeek_backend/internal/feature/blog/adapters/gemini"
	bloghandler "seeek_backend/internal/feature/blog/transport/handler"
	blogusecase "seeek_backend/internal/feature/blog/usecase"
	botadapters "seeek_backend/internal/feature/bot/adapters"
	bothandler "seeek_backend/internal/feature/bot/transport/handler"
	botusecase "seeek_backend/internal/feature/bot/usecase"
	mealscache "seeek_backend/internal/feature/meals/adapters/cache"
	mealsgemini "seeek_backend/internal/feature/meals/adapters/gemini"
	mealshandler "seeek_backend/internal/feature/meals/transport/handler"
	mealsusecase "seeek_backend/internal/feature/meals/usecase"
	scangemini "seeek_backend/internal/feature/scan/adapters/gemini"
	"seeek_backend/internal/feature/scan/adapters/openfda"
	scanvision "seeek_backend/internal/feature/scan/adapters/vision"
	scanhandler "seeek_backend/internal/feature/scan/transport/handler"
	scanusecase "seeek_backend/internal/feature/scan/usecase"
	"seeek_backend/internal/platform/db"
	platformhttp "seeek_backend/internal/platform/http"
	jwtplatform "seeek_backend/internal/platform/jwt"
	"seeek_backend/internal/platform/mail"
	platformredis "seeek_backend/internal/platform/redis"
	"seeek_backend/internal/shared/ratelimiter"
)

func main() {
	// .envは開発用。本番では環境変数を直接渡すため、無くてもエラーにしない。
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using process environment.")
	}

	ctx := context.Background()

	// db
	gormDB := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Gemini（全AI機能で共有）
	genaiClient, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}
	aiModel := os.Getenv("AI_MODEL")

	// Vision OCRはオプション。認証情報が無ければOCR前処理なしで起動する。
	var textExtractor scanusecase.TextExtractor
	if ve, err := scanvision.NewVisionTextExtractor(ctx); err != nil {
		log.Println("[WARN] Vision unavailable. Image scan runs without OCR:", err)
	} else {
		textExtractor = ve
		defer func() {
			if err := ve.Close(); err != nil {
				log.Println("[ERROR] Failed to close Vision client:", err)
			}
		}()
	}

	// SECRET_KEYチェック（開発中の注意喚起）
	secret := os.Getenv(jwtplatform.EnvKeySecretKey)
	if secret == "" {
		log.Println("[WARN] SECRET_KEY is not set. Set a strong secret in production.")
	}
	tokens := jwtplatform.NewGenerator(secret)

	// SMTP
	mailer := mail.NewSMTPMailer(mail.LoadConfig())

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)
	verificationRepo := authadapters.NewVerificationMySQL(gormDB)
	resetRepo := authadapters.NewPasswordResetMySQL(gormDB)
	otpStore := di.NewOTPStore(rdb)
	botCodeRepo := botadapters.NewBotCodeMySQL(gormDB)

	// openFDA（APIキー無し運用を想定してペーシングする）
	fdaCfg := openfda.LoadConfig()
	fdaClient := openfda.NewDrugLabelClient(
		fdaCfg,
		platformhttp.NewHTTPClient(fdaCfg.Timeout),
		ratelimiter.NewRateLimiter(4, time.Minute),
	)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		verificationRepo,
		resetRepo,
		otpStore,
		tokens,
		mailer,
		google.NewVerifier(os.Getenv("GOOGLE_CLIENT_ID")),
	)

	// 食事提案はRedisキャッシュでラップ（プロフィール更新までの再生成を抑制）
	recommender := mealscache.NewCachingRecommender(
		rdb, 6*time.Hour,
		mealsgemini.NewClient(genaiClient, aiModel),
		"mealrec",
	)
	mealsUC := mealsusecase.NewMealsUsecase(recommender, mealsgemini.NewClient(genaiClient, aiModel))
	blogUC := blogusecase.NewBlogUsecase(bloggemini.NewClient(genaiClient, aiModel))
	assistantUC := assistantusecase.NewAssistantUsecase(assistantgemini.NewClient(genaiClient, aiModel))
	scanUC := scanusecase.NewScanUsecase(textExtractor, scangemini.NewClient(genaiClient, aiModel), fdaClient)
	botUC := botusecase.NewBotUsecase(botCodeRepo)

	// Handler
	handlers := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Meals:     mealshandler.NewMealsHandler(mealsUC),
		Blog:      bloghandler.NewBlogHandler(blogUC),
		Assistant: assistanthandler.NewAssistantHandler(assistantUC),
		Scan:      scanhandler.NewScanHandler(scanUC),
		Bot:       bothandler.NewBotHandler(botUC),
	}

	// CORS: FRONTEND_URLはカンマ区切りで複数オリジンを許可
	var origins []string
	for _, o := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	r := router.NewRouter(handlers, userRepo, origins)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
