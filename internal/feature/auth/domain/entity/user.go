// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList はJSONカラムとして永続化される文字列スライスです。
// Sequelize由来のスキーマ（allergies, userGoals）との互換のために使用します。
type StringList []string

// Value はStringListをJSONバイト列にシリアライズします。
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan はJSONカラムの値をStringListに復元します。
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
}

// User represents a registered account with its biographical profile.
// Email must be unique across all accounts. Password always holds a
// bcrypt hash, never plaintext.
type User struct {
	ID          uint   `gorm:"primaryKey"`
	FirstName   string `gorm:"size:255;not null"`
	LastName    string `gorm:"size:255;not null"`
	Email       string `gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber string `gorm:"size:20"`
	Password    string `gorm:"size:255;not null"`

	// OAuth and OAuthMethod mark federated-identity accounts.
	// Both are empty strings for local password accounts.
	OAuth       string `gorm:"type:text"`
	OAuthMethod string `gorm:"size:50"`

	// Biographical profile, filled in by complete-signup.
	DateOfBirth      *string    `gorm:"size:255"`
	Gender           *string    `gorm:"size:50"`
	Height           *string    `gorm:"size:255"`
	Weight           *string    `gorm:"size:255"`
	SkinType         *string    `gorm:"size:100"`
	Nationality      *string    `gorm:"size:100"`
	DietType         *string    `gorm:"size:100"`
	Allergies        StringList `gorm:"type:json"`
	UserGoals        StringList `gorm:"type:json"`
	AccountCompleted bool       `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}

// IsFederated returns true if the account signs in through an external
// identity provider instead of a local password.
func (u *User) IsFederated() bool {
	return u.OAuth != ""
}
