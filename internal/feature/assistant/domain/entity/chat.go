// Package entity はassistantフィーチャーのドメインモデルを定義します。
package entity

// Profile is the slice of the account used to personalize chat replies.
type Profile struct {
	FirstName   string
	Nationality string
	DietType    string
	Allergies   []string
	UserGoals   []string
}

// MealSuggestion は会話の流れで提案される料理です。
type MealSuggestion struct {
	MealName    string   `json:"meal_name"`
	Origin      string   `json:"origin"`
	Description string   `json:"description"`
	HealthScore float64  `json:"health_score"`
	KeyBenefits []string `json:"key_benefits"`
	WhyItFits   string   `json:"why_it_fits"`
}

// ChatReply はアシスタントの構造化された返答です。
type ChatReply struct {
	ChatResponse        string           `json:"chat_response"`
	RecommendedMeals    []MealSuggestion `json:"recommended_meals,omitempty"`
	FollowUpSuggestions []string         `json:"follow_up_suggestions"`
}
