package adapters

import (
	"context"

	"gorm.io/gorm"

	"seeek_backend/internal/feature/auth/domain/entity"
	"seeek_backend/internal/feature/auth/usecase"
)

// verificationMySQL is a MySQL implementation of the
// VerificationRepository interface.
type verificationMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure verificationMySQL implements VerificationRepository.
var _ usecase.VerificationRepository = (*verificationMySQL)(nil)

// NewVerificationMySQL creates a new instance of verificationMySQL.
func NewVerificationMySQL(db *gorm.DB) *verificationMySQL {
	return &verificationMySQL{db: db}
}

// Create appends a verified=true record for the email.
func (r *verificationMySQL) Create(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Create(&entity.VerificationRecord{
		UserEmail:  email,
		IsVerified: true,
	}).Error
}

// Exists reports whether any verification record exists for the email.
func (r *verificationMySQL) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.VerificationRecord{}).
		Where("user_email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// ExistsVerified reports whether a verified=true record exists for the email.
func (r *verificationMySQL) ExistsVerified(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.VerificationRecord{}).
		Where("user_email = ? AND is_verified = ?", email, true).
		Count(&count).Error
	return count > 0, err
}
