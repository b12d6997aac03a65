package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetMySQL(t *testing.T) {
	ctx := context.Background()

	t.Run("created token is outstanding", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPasswordResetMySQL(db)

		require.NoError(t, repo.Create(ctx, "ada@example.com", "token-a"))

		ok, err := repo.Exists(ctx, "ada@example.com", "token-a")
		require.NoError(t, err)
		assert.True(t, ok)

		// 別トークン・別メールは一致しない
		ok, err = repo.Exists(ctx, "ada@example.com", "token-b")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.Exists(ctx, "other@example.com", "token-a")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete removes every token for the email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPasswordResetMySQL(db)

		// 同時リクエストで複数トークンが生きている状態
		require.NoError(t, repo.Create(ctx, "ada@example.com", "token-a"))
		require.NoError(t, repo.Create(ctx, "ada@example.com", "token-b"))
		require.NoError(t, repo.Create(ctx, "other@example.com", "token-c"))

		require.NoError(t, repo.DeleteAllByEmail(ctx, "ada@example.com"))

		ok, err := repo.Exists(ctx, "ada@example.com", "token-a")
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = repo.Exists(ctx, "ada@example.com", "token-b")
		require.NoError(t, err)
		assert.False(t, ok)

		// 他のメールのトークンは残る
		ok, err = repo.Exists(ctx, "other@example.com", "token-c")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestVerificationMySQL(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	repo := NewVerificationMySQL(db)

	ok, err := repo.Exists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, ok, "no record yet")

	require.NoError(t, repo.Create(ctx, "ada@example.com"))

	ok, err = repo.Exists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsVerified(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, ok, "Create writes verified=true")

	// 重複作成は行が蓄積するだけでエラーにならない
	require.NoError(t, repo.Create(ctx, "ada@example.com"))
}
