package adapters

import (
	"context"

	"gorm.io/gorm"

	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/usecase"
)

// passwordResetMySQL is a MySQL implementation of the
// PasswordResetRepository interface.
type passwordResetMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure passwordResetMySQL implements PasswordResetRepository.
var _ usecase.PasswordResetRepository = (*passwordResetMySQL)(nil)

// NewPasswordResetMySQL creates a new instance of passwordResetMySQL.
func NewPasswordResetMySQL(db *gorm.DB) *passwordResetMySQL {
	return &passwordResetMySQL{db: db}
}

// Create stores an outstanding reset token for the email.
func (r *passwordResetMySQL) Create(ctx context.Context, email, token string) error {
	return r.db.WithContext(ctx).Create(&entity.PasswordReset{
		UserEmail: email,
		Token:     token,
	}).Error
}

// Exists reports whether the email/token pair is outstanding.
func (r *passwordResetMySQL) Exists(ctx context.Context, email, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.PasswordReset{}).
		Where("user_email = ? AND token = ?", email, token).
		Count(&count).Error
	return count > 0, err
}

// DeleteAllByEmail removes every outstanding token for the email.
func (r *passwordResetMySQL) DeleteAllByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Delete(&entity.PasswordReset{}).Error
}
