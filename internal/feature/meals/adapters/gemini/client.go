// Package gemini はGoogle Gemini APIを使用した食事提案・食事分析クライアントを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"seeek_backend/internal/feature/meals/domain/entity"
	"seeek_backend/internal/feature/meals/usecase"
	"seeek_backend/internal/shared/prompt"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.0-flash"
)

// Client はGemini APIを使用して食事提案と食事分析を生成します。
type Client struct {
	client *genai.Client
	model  string
}

// ClientがRecommenderとAnalyzerを実装していることをコンパイル時に検証します。
var (
	_ usecase.Recommender = (*Client)(nil)
	_ usecase.Analyzer    = (*Client)(nil)
)

// NewClient は注入されたgenaiクライアントでClientの新しいインスタンスを生成します。
// modelが空の場合はDefaultModelを使用します。
func NewClient(client *genai.Client, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}
}

// recommendationSchema は食事提案レスポンスの構造化出力スキーマです。
var recommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"meal_name":    {Type: genai.TypeString},
					"origin":       {Type: genai.TypeString, Description: "e.g., Local/Nigerian or International"},
					"description":  {Type: genai.TypeString},
					"health_score": {Type: genai.TypeNumber, Description: "A score from 0 to 100 based on user goals and constraints."},
					"key_benefits": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"why_it_fits":  {Type: genai.TypeString, Description: "Reasoning based on user goals and nationality."},
				},
				Required: []string{"meal_name", "origin", "description", "health_score", "key_benefits", "why_it_fits"},
			},
		},
	},
	Required: []string{"recommendations"},
}

// analysisSchema は食事分析レスポンスの構造化出力スキーマです。
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"meal_identity": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":               {Type: genai.TypeString},
				"origin":             {Type: genai.TypeString},
				"estimated_calories": {Type: genai.TypeString},
			},
		},
		"nutritional_deconstruction": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"macros":                  {Type: genai.TypeString},
				"key_vitamins_minerals":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"glycemic_index_estimate": {Type: genai.TypeString},
			},
		},
		"ingredient_list": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"health_impact_metrics": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"overall_score":         {Type: genai.TypeNumber},
				"energy_sustainability": {Type: genai.TypeString, Description: "How long the energy from the meal lasts."},
				"digestive_load":        {Type: genai.TypeString, Description: "Light, Moderate, or Heavy."},
			},
		},
		"risk_and_ailment_report": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"potential_issue":     {Type: genai.TypeString},
					"trigger_ingredient":  {Type: genai.TypeString},
					"mitigation_strategy": {Type: genai.TypeString},
				},
			},
		},
		"personalized_optimizations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"original_ingredient":   {Type: genai.TypeString},
					"recommended_swap":      {Type: genai.TypeString},
					"benefit_to_user_goals": {Type: genai.TypeString},
				},
			},
		},
	},
	Required: []string{"meal_identity", "nutritional_deconstruction", "health_impact_metrics", "risk_and_ailment_report"},
}

// generate は構造化出力付きでプロンプトを実行し、outにデコードします。
func (c *Client) generate(ctx context.Context, text string, schema *genai.Schema, out any) error {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(text), cfg)
	if err != nil {
		return fmt.Errorf("gemini API request failed: %w", err)
	}
	if err := json.Unmarshal([]byte(resp.Text()), out); err != nil {
		return fmt.Errorf("failed to decode gemini response: %w", err)
	}
	return nil
}

// Recommend はプロフィールに合わせた5件の食事提案を生成します。
func (c *Client) Recommend(ctx context.Context, p entity.Profile) ([]entity.Recommendation, error) {
	nationality := prompt.OrDefault(p.Nationality, "Nigerian")
	goals := prompt.JoinOr(p.UserGoals, "Optimizing digestion and energy")
	allergies := prompt.JoinOr(p.Allergies, "None")
	diet := prompt.OrDefault(p.DietType, "Standard")

	text := fmt.Sprintf(`As a clinical nutritionist, recommend 5 distinct meals specifically for the user profile below.
PRIORITY: Suggest local %s dishes first before including international options.

### USER PROFILE
- Nationality: %s
- Primary Health Goals: %s
- Medical/Dietary Constraints: %s
- Strict Allergies: %s

### INSTRUCTIONS
1. Cultural Relevance: Prioritize dishes common in %s households.
2. Health Rating: Assign a score from 0-100 based on how perfectly the meal aligns with the user's goals and dietary constraints.
3. Personalization: Ensure NO recommended meal contains ingredients from the user's allergies.
4. Detailed Description: For each meal, describe the ingredients and why it was chosen for this specific user.`,
		nationality, nationality, goals, diet, allergies, nationality)

	var out struct {
		Recommendations []entity.Recommendation `json:"recommendations"`
	}
	if err := c.generate(ctx, text, recommendationSchema, &out); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}

// Analyze は指定された料理の詳細な栄養デコンストラクションを生成します。
func (c *Client) Analyze(ctx context.Context, mealName string, p entity.Profile) (*entity.Analysis, error) {
	nationality := prompt.OrDefault(p.Nationality, "Nigerian")
	goals := prompt.JoinOr(p.UserGoals, "Optimizing energy and digestion")
	allergies := prompt.JoinOr(p.Allergies, "None")
	diet := prompt.OrDefault(p.DietType, "Standard")

	text := fmt.Sprintf(`You are a high-level Clinical Nutritionist and Food Scientist.
Provide a comprehensive, scientific deconstruction of the meal: %q.

### USER CONTEXT FOR PERSONALIZATION:
- Nationality: %s
- Health Goals: %s
- Allergies: %s
- Constraints: %s

### ANALYSIS REQUIREMENTS:
1. Molecular Breakdown: Identify core macronutrients and critical micronutrients.
2. Ingredient Profiling: List every standard ingredient used in a traditional %s version of this dish.
3. Health Score: Rate this meal (0-100) specifically against the user's goals.
4. Risk Assessment: Identify specific ailments (e.g., Acidity, Heartburn, Glycemic spikes) this meal might trigger.
5. Biochemical Impact: Explain how this meal affects energy levels (e.g., slow-release vs. sugar crash).
6. Smart Tweaks: Suggest 3 substitutions to make it healthier while keeping the %s soul of the dish.

STRICT RULE: Do not include ingredients that conflict with these allergies: %s.`,
		mealName, nationality, goals, allergies, diet, nationality, nationality, allergies)

	var out entity.Analysis
	if err := c.generate(ctx, text, analysisSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
