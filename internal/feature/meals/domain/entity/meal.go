// Package entity はmealsフィーチャーのドメインモデルを定義します。
package entity

// Profile is the slice of the account used to personalize meal
// generation. Zero values fall back to defaults at prompt time.
type Profile struct {
	Email       string   // cache key component
	Nationality string
	DietType    string
	Allergies   []string
	UserGoals   []string
}

// Recommendation は1件のパーソナライズされた食事提案です。
type Recommendation struct {
	MealName    string   `json:"meal_name"`
	Origin      string   `json:"origin"`
	Description string   `json:"description"`
	HealthScore float64  `json:"health_score"`
	KeyBenefits []string `json:"key_benefits"`
	WhyItFits   string   `json:"why_it_fits"`
}

// MealIdentity identifies the analyzed dish.
type MealIdentity struct {
	Name              string `json:"name"`
	Origin            string `json:"origin"`
	EstimatedCalories string `json:"estimated_calories"`
}

// Nutrition is the macro/micro breakdown of a meal.
type Nutrition struct {
	Macros                string   `json:"macros"`
	KeyVitaminsMinerals   []string `json:"key_vitamins_minerals"`
	GlycemicIndexEstimate string   `json:"glycemic_index_estimate"`
}

// HealthImpact scores the meal against the user's goals.
type HealthImpact struct {
	OverallScore         float64 `json:"overall_score"`
	EnergySustainability string  `json:"energy_sustainability"`
	DigestiveLoad        string  `json:"digestive_load"`
}

// Risk は食事が誘発しうる不調とその対策です。
type Risk struct {
	PotentialIssue     string `json:"potential_issue"`
	TriggerIngredient  string `json:"trigger_ingredient"`
	MitigationStrategy string `json:"mitigation_strategy"`
}

// Optimization は材料の置き換え提案です。
type Optimization struct {
	OriginalIngredient string `json:"original_ingredient"`
	RecommendedSwap    string `json:"recommended_swap"`
	BenefitToUserGoals string `json:"benefit_to_user_goals"`
}

// Analysis は1つの料理の詳細な栄養デコンストラクションです。
type Analysis struct {
	MealIdentity              MealIdentity   `json:"meal_identity"`
	NutritionalDeconstruction Nutrition      `json:"nutritional_deconstruction"`
	IngredientList            []string       `json:"ingredient_list"`
	HealthImpactMetrics       HealthImpact   `json:"health_impact_metrics"`
	RiskAndAilmentReport      []Risk         `json:"risk_and_ailment_report"`
	PersonalizedOptimizations []Optimization `json:"personalized_optimizations"`
}
