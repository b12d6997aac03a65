package entity

import "time"

// VerificationRecord is a durable fact that an email address has
// completed OTP verification. Rows are only ever created, never
// updated; multiple rows per email may accumulate.
type VerificationRecord struct {
	ID         uint   `gorm:"primaryKey"`
	UserEmail  string `gorm:"index;size:255;not null"`
	IsVerified bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM.
func (VerificationRecord) TableName() string {
	return "user_verification"
}
