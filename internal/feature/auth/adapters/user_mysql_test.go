package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &entity.VerificationRecord{}, &entity.PasswordReset{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_CreateVerified(t *testing.T) {
	t.Run("creates user and verification record together", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			FirstName:   "Ada",
			LastName:    "Obi",
			Email:       "ada@example.com",
			PhoneNumber: "08012345678",
			Password:    "hashed_password",
		}

		err := repo.CreateVerified(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")

		var count int64
		db.Model(&entity.VerificationRecord{}).
			Where("user_email = ? AND is_verified = ?", user.Email, true).
			Count(&count)
		assert.Equal(t, int64(1), count, "verification record missing")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{Email: "duplicate@example.com", Password: "password1"}
		err := repo.CreateVerified(context.Background(), user1)
		require.NoError(t, err, "failed to create first user")

		user2 := &entity.User{Email: "duplicate@example.com", Password: "password2"}
		err = repo.CreateVerified(context.Background(), user2)

		assert.Error(t, err, "should return duplicate error")

		// ロールバック確認: 2人目の検証レコードは残らない
		var count int64
		db.Model(&entity.VerificationRecord{}).
			Where("user_email = ?", "duplicate@example.com").
			Count(&count)
		assert.Equal(t, int64(1), count, "failed insert must not leave a verification record")
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		seed := &entity.User{
			Email:     "ada@example.com",
			Password:  "hash",
			Allergies: entity.StringList{"peanuts"},
			UserGoals: entity.StringList{"Weight loss"},
		}
		require.NoError(t, repo.CreateVerified(context.Background(), seed))

		found, err := repo.FindByEmail(context.Background(), "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, seed.Email, found.Email)
		assert.Equal(t, entity.StringList{"peanuts"}, found.Allergies, "JSON list not round-tripped")
	})

	t.Run("unknown email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)

	seed := &entity.User{Email: "ada@example.com", Password: "hash"}
	require.NoError(t, repo.CreateVerified(context.Background(), seed))

	nationality := "Nigerian"
	diet := "Vegetarian"
	updated, err := repo.UpdateProfile(context.Background(), "ada@example.com", usecase.ProfileUpdate{
		Nationality: &nationality,
		DietType:    &diet,
		Allergies:   []string{"peanuts", "shellfish"},
		UserGoals:   []string{"Muscle gain"},
	})

	require.NoError(t, err)
	assert.True(t, updated.AccountCompleted, "account_completed flag not set")
	require.NotNil(t, updated.Nationality)
	assert.Equal(t, nationality, *updated.Nationality)
	assert.Equal(t, entity.StringList{"peanuts", "shellfish"}, updated.Allergies)
	assert.Nil(t, updated.Gender, "omitted field should stay cleared")
}

func TestUserMySQL_UpdatePassword(t *testing.T) {
	t.Run("replaces the stored hash", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		seed := &entity.User{Email: "ada@example.com", Password: "old_hash"}
		require.NoError(t, repo.CreateVerified(context.Background(), seed))

		err := repo.UpdatePassword(context.Background(), "ada@example.com", "new_hash")

		require.NoError(t, err)
		found, err := repo.FindByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "new_hash", found.Password)
	})

	t.Run("unknown email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.UpdatePassword(context.Background(), "nobody@example.com", "new_hash")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
