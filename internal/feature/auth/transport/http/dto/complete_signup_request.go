package dto

// CompleteSignupReq はプロフィール補完リクエストのボディです。
// 省略されたフィールド（nilポインタ）は対応するカラムをクリアします。
type CompleteSignupReq struct {
	Email       string   `json:"email" binding:"required"`
	IsGoogle    bool     `json:"is_google"`
	DateOfBirth *string  `json:"dateOfBirth"`
	Gender      *string  `json:"gender"`
	Height      *string  `json:"height"`
	Weight      *string  `json:"weight"`
	SkinType    *string  `json:"skinType"`
	Nationality *string  `json:"nationality"`
	DietType    *string  `json:"dietType"`
	Allergies   []string `json:"allergies"`
	UserGoals   []string `json:"userGoals"`
}
