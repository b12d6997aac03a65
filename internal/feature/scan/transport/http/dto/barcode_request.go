// Package dto はscanフィーチャーのリクエストDTOを定義します。
package dto

// BarcodeProfile はバーコードスキャンに添付される安全性判定用プロフィールです。
type BarcodeProfile struct {
	Allergies  []string `json:"allergies"`
	IsPregnant bool     `json:"isPregnant"`
}

// BarcodeReq はバーコード照会リクエストのボディです。
type BarcodeReq struct {
	ScanData    string          `json:"scanData" binding:"required"`
	UserProfile *BarcodeProfile `json:"userProfile"`
}
