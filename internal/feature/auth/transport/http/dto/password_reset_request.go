package dto

// ForgotPasswordReq はリセットリンク送信リクエストのボディです。
// urlはフロントエンドのリセット画面のURLです。
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

// ResetPasswordReq はパスワード再設定リクエストのボディです。
type ResetPasswordReq struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyTokenReq は連携IDトークン検証リクエストのボディです。
type VerifyTokenReq struct {
	Token string `json:"token" binding:"required"`
}
