// Package entity はscanフィーチャーのドメインモデルを定義します。
package entity

// Profile is the slice of the account used to personalize scan analysis.
type Profile struct {
	Nationality string
	DietType    string
	Allergies   []string
	UserGoals   []string
}

// Risk は食品・医薬品に紐づく個別のリスク項目です。
type Risk struct {
	AilmentOrSideEffect string `json:"ailment_or_side_effect"`
	Trigger             string `json:"trigger"`
	Severity            string `json:"severity"`
}

// Recommendation はリスクに対する個別の改善提案です。
type Recommendation struct {
	OriginalIssue string `json:"original_issue"`
	Suggestion    string `json:"suggestion"`
	GoalAlignment string `json:"goal_alignment"`
	CulturalNote  string `json:"cultural_note,omitempty"`
}

// ScanResult は画像スキャンの構造化された分析結果です。
// 食品（FOOD）と医薬品（DRUG）の両方をカバーします。
type ScanResult struct {
	ItemType                    string           `json:"item_type"`
	IdentifiedName              string           `json:"identified_name"`
	DetailedInfo                string           `json:"detailed_info"`
	IdentifiedComponents        []string         `json:"identified_components"`
	RiskAssessment              []Risk           `json:"risk_assessment"`
	PersonalizedRecommendations []Recommendation `json:"personalized_recommendations"`
	EducationalQuestions        []string         `json:"educational_questions"`
}
