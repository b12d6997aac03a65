package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	SignupFunc            func(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error)
	LoginFunc             func(ctx context.Context, in usecase.LoginInput) (*entity.User, string, error)
	CompleteSignupFunc    func(ctx context.Context, in usecase.CompleteSignupInput) (*entity.User, string, error)
	RefreshTokenFunc      func(user *entity.User) (string, error)
	SendOTPFunc           func(ctx context.Context, email, name string) error
	VerifyOTPFunc         func(ctx context.Context, email string, code int) error
	ForgotPasswordFunc    func(ctx context.Context, email, url string) error
	ResetPasswordFunc     func(ctx context.Context, signedToken, newPassword string) error
	VerifyGoogleTokenFunc func(ctx context.Context, token string) error
}

func (m *mockAuthUsecase) Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error) {
	return m.SignupFunc(ctx, in)
}

func (m *mockAuthUsecase) Login(ctx context.Context, in usecase.LoginInput) (*entity.User, string, error) {
	return m.LoginFunc(ctx, in)
}

func (m *mockAuthUsecase) CompleteSignup(ctx context.Context, in usecase.CompleteSignupInput) (*entity.User, string, error) {
	return m.CompleteSignupFunc(ctx, in)
}

func (m *mockAuthUsecase) RefreshToken(user *entity.User) (string, error) {
	return m.RefreshTokenFunc(user)
}

func (m *mockAuthUsecase) SendOTP(ctx context.Context, email, name string) error {
	return m.SendOTPFunc(ctx, email, name)
}

func (m *mockAuthUsecase) VerifyOTP(ctx context.Context, email string, code int) error {
	return m.VerifyOTPFunc(ctx, email, code)
}

func (m *mockAuthUsecase) ForgotPassword(ctx context.Context, email, url string) error {
	return m.ForgotPasswordFunc(ctx, email, url)
}

func (m *mockAuthUsecase) ResetPassword(ctx context.Context, signedToken, newPassword string) error {
	return m.ResetPasswordFunc(ctx, signedToken, newPassword)
}

func (m *mockAuthUsecase) VerifyGoogleToken(ctx context.Context, token string) error {
	return m.VerifyGoogleTokenFunc(ctx, token)
}

var _ AuthUsecase = (*mockAuthUsecase)(nil)

func setupAuthRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(uc)
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/sendOTP", h.SendOTP)
	r.POST("/verifyOTP", h.VerifyOTP)
	r.POST("/forgotPassword", h.ForgotPassword)
	r.POST("/resetPassword", h.ResetPassword)
	r.POST("/verifyToken", h.VerifyGoogleToken)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testUser() *entity.User {
	return &entity.User{
		FirstName:   "Ada",
		LastName:    "Obi",
		Email:       "ada@example.com",
		PhoneNumber: "08012345678",
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	uc := &mockAuthUsecase{
		SignupFunc: func(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error) {
			assert.Equal(t, "ada@example.com", in.Email)
			return testUser(), "signed-token", nil
		},
	}
	r := setupAuthRouter(uc)

	w := doPost(t, r, "/signup", gin.H{
		"firstName":    "Ada",
		"lastName":     "Obi",
		"email":        "ada@example.com",
		"phone_number": "08012345678",
		"password":     "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "signed-token", got["token"])

	user, ok := got["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	r := setupAuthRouter(&mockAuthUsecase{})

	w := doPost(t, r, "/signup", gin.H{"email": "ada@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Bad request.")
}

func TestAuthHandler_Signup_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"duplicate email", usecase.ErrEmailAlreadyExists, http.StatusConflict, "User already exists."},
		{"invalid email", usecase.ErrInvalidEmailFormat, http.StatusBadRequest, "Invalid email format."},
		{"invalid name", usecase.ErrInvalidName, http.StatusBadRequest, "Name can only contain alphanumeric characters."},
		{"missing password", usecase.ErrBadRequest, http.StatusBadRequest, "Bad request."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{
				SignupFunc: func(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error) {
					return nil, "", tt.err
				},
			}
			r := setupAuthRouter(uc)

			w := doPost(t, r, "/signup", gin.H{
				"firstName":    "Ada",
				"lastName":     "Obi",
				"email":        "ada@example.com",
				"phone_number": "08012345678",
				"password":     "secret123",
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantError)
		})
	}
}

func TestAuthHandler_Signup_ConflictIncludesStatusField(t *testing.T) {
	uc := &mockAuthUsecase{
		SignupFunc: func(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error) {
			return nil, "", usecase.ErrEmailAlreadyExists
		},
	}
	r := setupAuthRouter(uc)

	w := doPost(t, r, "/signup", gin.H{
		"firstName":    "Ada",
		"lastName":     "Obi",
		"email":        "ada@example.com",
		"phone_number": "08012345678",
		"password":     "secret123",
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(http.StatusConflict), got["status"])
}

func TestAuthHandler_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"unknown user", usecase.ErrUserNotFound, http.StatusNotFound, "User not found."},
		{"not verified", usecase.ErrEmailNotVerified, http.StatusBadRequest, "User email not verified."},
		{"federated account", usecase.ErrOAuthLoginRequired, http.StatusUnauthorized, "Login with google OAuth."},
		{"wrong password", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials. 🥲"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{
				LoginFunc: func(ctx context.Context, in usecase.LoginInput) (*entity.User, string, error) {
					return nil, "", tt.err
				},
			}
			r := setupAuthRouter(uc)

			w := doPost(t, r, "/login", gin.H{"email": "ada@example.com", "password": "wrong"})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantError)
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &mockAuthUsecase{
		LoginFunc: func(ctx context.Context, in usecase.LoginInput) (*entity.User, string, error) {
			return testUser(), "signed-token", nil
		},
	}
	r := setupAuthRouter(uc)

	w := doPost(t, r, "/login", gin.H{"email": "ada@example.com", "password": "secret123"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful.")
}

func TestAuthHandler_SendOTP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SendOTPFunc: func(ctx context.Context, email, name string) error {
				assert.Equal(t, "ada@example.com", email)
				assert.Equal(t, "Ada", name)
				return nil
			},
		}
		r := setupAuthRouter(uc)

		w := doPost(t, r, "/sendOTP", gin.H{"email": "ada@example.com", "name": "Ada"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "OTP sent successfully.")
	})

	t.Run("missing email", func(t *testing.T) {
		r := setupAuthRouter(&mockAuthUsecase{})

		w := doPost(t, r, "/sendOTP", gin.H{"name": "Ada"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"success", nil, http.StatusOK, "Verification successful."},
		{"expired", usecase.ErrOTPExpired, http.StatusBadRequest, "OTP expired."},
		{"mismatch", usecase.ErrOTPInvalid, http.StatusUnauthorized, "Invalid OTP."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{
				VerifyOTPFunc: func(ctx context.Context, email string, code int) error {
					assert.Equal(t, 1234, code)
					return tt.err
				},
			}
			r := setupAuthRouter(uc)

			w := doPost(t, r, "/verifyOTP", gin.H{"email": "ada@example.com", "otp": 1234})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	uc := &mockAuthUsecase{
		ForgotPasswordFunc: func(ctx context.Context, email, url string) error {
			assert.Equal(t, "https://app.example.com/reset", url)
			return nil
		},
	}
	r := setupAuthRouter(uc)

	w := doPost(t, r, "/forgotPassword", gin.H{
		"email": "ada@example.com",
		"url":   "https://app.example.com/reset",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password reset email sent successfully.")
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockAuthUsecase{
			ResetPasswordFunc: func(ctx context.Context, signedToken, newPassword string) error {
				return nil
			},
		}
		r := setupAuthRouter(uc)

		w := doPost(t, r, "/resetPassword", gin.H{"token": "signed.abc", "password": "newpass123"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Password reset successfully.")
	})

	t.Run("invalid token", func(t *testing.T) {
		uc := &mockAuthUsecase{
			ResetPasswordFunc: func(ctx context.Context, signedToken, newPassword string) error {
				return usecase.ErrResetTokenInvalid
			},
		}
		r := setupAuthRouter(uc)

		w := doPost(t, r, "/resetPassword", gin.H{"token": "signed.bad", "password": "newpass123"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token.")
	})
}

func TestAuthHandler_VerifyGoogleToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockAuthUsecase{
			VerifyGoogleTokenFunc: func(ctx context.Context, token string) error {
				assert.Equal(t, "id-token", token)
				return nil
			},
		}
		r := setupAuthRouter(uc)

		w := doPost(t, r, "/verifyToken", gin.H{"token": "id-token"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Token verified successfully.")
	})

	t.Run("invalid token", func(t *testing.T) {
		uc := &mockAuthUsecase{
			VerifyGoogleTokenFunc: func(ctx context.Context, token string) error {
				return usecase.ErrGoogleTokenInvalid
			},
		}
		r := setupAuthRouter(uc)

		w := doPost(t, r, "/verifyToken", gin.H{"token": "garbage"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid Google token.")
	})
}
