// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/usecase"
)

// userMySQL はUserRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// CreateVerified はユーザー行と検証レコードを単一トランザクションで作成します。
// どちらか一方だけが残る不整合ウィンドウを排除します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMySQL) CreateVerified(ctx context.Context, u *entity.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return tx.Create(&entity.VerificationRecord{
			UserEmail:  u.Email,
			IsVerified: true,
		}).Error
	})
	if err != nil {
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile はプロフィールフィールドを部分更新し、onboarding完了フラグを
// 立てた上で最新のユーザーを返します。
func (r *userMySQL) UpdateProfile(ctx context.Context, email string, p usecase.ProfileUpdate) (*entity.User, error) {
	updates := map[string]any{
		"date_of_birth":     p.DateOfBirth,
		"gender":            p.Gender,
		"height":            p.Height,
		"weight":            p.Weight,
		"skin_type":         p.SkinType,
		"nationality":       p.Nationality,
		"diet_type":         p.DietType,
		"allergies":         entity.StringList(p.Allergies),
		"user_goals":        entity.StringList(p.UserGoals),
		"account_completed": true,
	}

	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", email).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByEmail(ctx, email)
}

// UpdatePassword は保存されたパスワードハッシュを置き換えます。
func (r *userMySQL) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", email).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
