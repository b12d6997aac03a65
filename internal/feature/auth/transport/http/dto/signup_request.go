// Package dto はauthフィーチャーのリクエストDTOを定義します。
package dto

// SignupReq は新規アカウント作成リクエストのボディです。
// passwordの必須判定は連携サインアップと絡むためユースケース側で行います。
type SignupReq struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password"`
	OAuth       string `json:"oauth"`
	OAuthMethod string `json:"oauth_method"`
}

// LoginReq はログインリクエストのボディです。
type LoginReq struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password"`
	OAuth       string `json:"oauth"`
	OAuthMethod string `json:"oauth_method"`
}
