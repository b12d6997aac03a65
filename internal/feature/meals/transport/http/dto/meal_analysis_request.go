// Package dto はmealsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// MealAnalysisReq は/api/v1/getAnalysisエンドポイントのリクエストボディを表します。
type MealAnalysisReq struct {
	MealName string `json:"mealName" binding:"required"`
}
