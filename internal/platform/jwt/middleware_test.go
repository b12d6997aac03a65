package jwtmw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/usecase"
)

// mockUserFinder is a mock implementation of the UserFinder interface.
type mockUserFinder struct {
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

func (m *mockUserFinder) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, usecase.ErrUserNotFound
}

func setupMiddlewareRouter(users UserFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(users), func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	t.Setenv(EnvKeySecretKey, "test-secret")

	g := NewGenerator("test-secret")
	account := testUser()
	finder := &mockUserFinder{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == account.Email {
				return account, nil
			}
			return nil, usecase.ErrUserNotFound
		},
	}

	t.Run("valid token attaches the user", func(t *testing.T) {
		token, err := g.IssueUserToken(account, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}

		r := setupMiddlewareRouter(finder)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r := setupMiddlewareRouter(finder)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		r := setupMiddlewareRouter(finder)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, _ := g.IssueUserToken(account, -time.Minute)

		r := setupMiddlewareRouter(finder)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		ghost := testUser()
		ghost.Email = "ghost@example.com"
		token, _ := g.IssueUserToken(ghost, time.Hour)

		r := setupMiddlewareRouter(finder)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if user := CurrentUser(c); user != nil {
		t.Errorf("expected nil user on unauthenticated context")
	}
}
