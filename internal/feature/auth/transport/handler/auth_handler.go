// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"seeek_backend/internal/api"
	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/transport/http/dto"
	"seeek_backend/internal/feature/auth/usecase"
	jwtmw "seeek_backend/internal/platform/jwt"
)

// AuthUsecase は認証のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error)
	Login(ctx context.Context, in usecase.LoginInput) (*entity.User, string, error)
	CompleteSignup(ctx context.Context, in usecase.CompleteSignupInput) (*entity.User, string, error)
	RefreshToken(user *entity.User) (string, error)
	SendOTP(ctx context.Context, email, name string) error
	VerifyOTP(ctx context.Context, email string, code int) error
	ForgotPassword(ctx context.Context, email, url string) error
	ResetPassword(ctx context.Context, signedToken, newPassword string) error
	VerifyGoogleToken(ctx context.Context, token string) error
}

// AuthHandler は認証のHTTPリクエストを処理します。
type AuthHandler struct {
	uc AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(uc AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// toAPIUser はドメインエンティティを公開ビューに変換します。
// パスワードハッシュは含まれません。
func toAPIUser(u *entity.User) *api.User {
	return &api.User{
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		OAuth:            u.OAuth,
		OAuthMethod:      u.OAuthMethod,
		DateOfBirth:      u.DateOfBirth,
		Gender:           u.Gender,
		Height:           u.Height,
		Weight:           u.Weight,
		SkinType:         u.SkinType,
		Nationality:      u.Nationality,
		DietType:         u.DietType,
		Allergies:        u.Allergies,
		UserGoals:        u.UserGoals,
		AccountCompleted: u.AccountCompleted,
	}
}

// respondError はユースケースのセンチネルエラーをHTTPステータスに変換します。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "User already exists.", Status: http.StatusConflict})
	case errors.Is(err, usecase.ErrInvalidEmailFormat):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid email format."})
	case errors.Is(err, usecase.ErrInvalidName):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name can only contain alphanumeric characters."})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found."})
	case errors.Is(err, usecase.ErrEmailNotVerified):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User email not verified."})
	case errors.Is(err, usecase.ErrOAuthLoginRequired):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Login with google OAuth."})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials. 🥲"})
	case errors.Is(err, usecase.ErrOTPExpired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "OTP expired."})
	case errors.Is(err, usecase.ErrOTPInvalid):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid OTP."})
	case errors.Is(err, usecase.ErrResetTokenInvalid):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid or expired token."})
	case errors.Is(err, usecase.ErrGoogleTokenInvalid):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid Google token."})
	case errors.Is(err, usecase.ErrBadRequest):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
	default:
		slog.Error("auth request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error."})
	}
}

// Signup は新規アカウントを登録し、ユーザーとトークンを返します。
//
// エンドポイント: POST /api/v1/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	user, token, err := h.uc.Signup(c.Request.Context(), usecase.SignupInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		OAuth:       req.OAuth,
		OAuthMethod: req.OAuthMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{
		Success: true,
		Message: "Signup successful.",
		User:    toAPIUser(user),
		Token:   token,
	})
}

// Login はユーザーを認証し、ユーザーとトークンを返します。
//
// エンドポイント: POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	user, token, err := h.uc.Login(c.Request.Context(), usecase.LoginInput{
		Email:       req.Email,
		Password:    req.Password,
		OAuth:       req.OAuth,
		OAuthMethod: req.OAuthMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{
		Success: true,
		Message: "Login successful.",
		User:    toAPIUser(user),
		Token:   token,
	})
}

// CompleteSignup は生体・嗜好プロフィールを設定し、更新後のユーザーと
// 新しいトークンを返します。
//
// エンドポイント: POST /api/v1/completeSignup（要認証）
func (h *AuthHandler) CompleteSignup(c *gin.Context) {
	var req dto.CompleteSignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	user, token, err := h.uc.CompleteSignup(c.Request.Context(), usecase.CompleteSignupInput{
		Email:    req.Email,
		IsGoogle: req.IsGoogle,
		Profile: usecase.ProfileUpdate{
			DateOfBirth: req.DateOfBirth,
			Gender:      req.Gender,
			Height:      req.Height,
			Weight:      req.Weight,
			SkinType:    req.SkinType,
			Nationality: req.Nationality,
			DietType:    req.DietType,
			Allergies:   req.Allergies,
			UserGoals:   req.UserGoals,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{
		Success: true,
		Message: "User profile updated successfully.",
		User:    toAPIUser(user),
		Token:   token,
	})
}

// RefreshToken は認証済みユーザーに新しいトークンを発行します。
//
// エンドポイント: POST /api/v1/refreshToken（要認証）
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized access."})
		return
	}

	token, err := h.uc.RefreshToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{
		Success: true,
		Message: "Token refreshed successfully.",
		User:    toAPIUser(user),
		Token:   token,
	})
}

// SendOTP はメールアドレス宛の確認コードを発行します。
//
// エンドポイント: POST /api/v1/sendOTP
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.OTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	if err := h.uc.SendOTP(c.Request.Context(), req.Email, req.Name); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Success: true,
		Message: "OTP sent successfully.",
	})
}

// VerifyOTP は提出された確認コードを検証します。
//
// エンドポイント: POST /api/v1/verifyOTP
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	if err := h.uc.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Success: true,
		Message: "Verification successful.",
	})
}

// ForgotPassword はパスワードリセットリンクをメール送信します。
//
// エンドポイント: POST /api/v1/forgotPassword
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	if err := h.uc.ForgotPassword(c.Request.Context(), req.Email, req.URL); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Success: true,
		Message: "Password reset email sent successfully.",
	})
}

// ResetPassword はリセットトークンを消費して新しいパスワードを設定します。
//
// エンドポイント: POST /api/v1/resetPassword
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	if err := h.uc.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Success: true,
		Message: "Password reset successfully.",
	})
}

// VerifyGoogleToken は連携IDトークンを検証します。
//
// エンドポイント: POST /api/v1/verifyToken
func (h *AuthHandler) VerifyGoogleToken(c *gin.Context) {
	var req dto.VerifyTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bad request."})
		return
	}

	if err := h.uc.VerifyGoogleToken(c.Request.Context(), req.Token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Success: true,
		Message: "Token verified successfully.",
	})
}
