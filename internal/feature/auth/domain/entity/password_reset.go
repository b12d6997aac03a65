package entity

import "time"

// PasswordReset associates an email with an outstanding opaque reset
// token. A row is created when a reset mail is requested and every row
// for the email is deleted when a reset completes, so a consumed link
// cannot be replayed. No uniqueness constraint exists on UserEmail:
// concurrent requests can leave several valid tokens alive at once.
type PasswordReset struct {
	ID        uint   `gorm:"primaryKey"`
	UserEmail string `gorm:"index;size:255;not null"`
	Token     string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (PasswordReset) TableName() string {
	return "forgot_password"
}
