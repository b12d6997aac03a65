// Package entity はbotフィーチャーのドメインモデルを定義します。
package entity

import "time"

// BotCode links a WhatsApp conversation to an account. The user sends
// the code from the chat to prove they own the account; rows accumulate,
// the latest code per email wins.
type BotCode struct {
	ID        uint   `gorm:"primaryKey"`
	UserEmail string `gorm:"index;size:255;not null"`
	Code      int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (BotCode) TableName() string {
	return "user_bot_verification"
}
