// Package adapters はbotフィーチャーの永続化アダプターを提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"seeek_backend/internal/feature/bot/domain/entity"
	"seeek_backend/internal/feature/bot/usecase"
)

// botCodeMySQL is a MySQL implementation of the BotCodeRepository interface.
type botCodeMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure botCodeMySQL implements BotCodeRepository.
var _ usecase.BotCodeRepository = (*botCodeMySQL)(nil)

// NewBotCodeMySQL creates a new instance of botCodeMySQL.
func NewBotCodeMySQL(db *gorm.DB) *botCodeMySQL {
	return &botCodeMySQL{db: db}
}

// Create appends a bot code row for the email.
func (r *botCodeMySQL) Create(ctx context.Context, email string, code int) error {
	return r.db.WithContext(ctx).Create(&entity.BotCode{
		UserEmail: email,
		Code:      code,
	}).Error
}
