package dto

// OTPReq は確認コード発行リクエストのボディです。
type OTPReq struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// VerifyOTPReq は確認コード検証リクエストのボディです。
type VerifyOTPReq struct {
	Email string `json:"email" binding:"required"`
	OTP   int    `json:"otp" binding:"required"`
}
