// Package dto はblogフィーチャーのリクエストDTOを定義します。
package dto

// BlogPostReq は長文記事生成リクエストのボディです。
type BlogPostReq struct {
	Topic          string `json:"topic" binding:"required"`
	Category       string `json:"category" binding:"required"`
	ReadingTime    string `json:"reading_time" binding:"required"`
	TargetAudience string `json:"target_audience" binding:"required"`
}
