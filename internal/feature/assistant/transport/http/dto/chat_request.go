// Package dto はassistantフィーチャーのリクエストDTOを定義します。
package dto

// ChatReq はチャットリクエストのボディです。
// chatHistory はフロントエンドが整形した直近の会話テキストです。
type ChatReq struct {
	ChatHistory    string `json:"chatHistory"`
	CurrentMessage string `json:"currentMessage" binding:"required"`
}
