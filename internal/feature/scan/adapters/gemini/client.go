// Package gemini はGoogle Gemini APIを使用した画像分析クライアントを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"seeek_backend/internal/feature/scan/domain/entity"
	"seeek_backend/internal/feature/scan/usecase"
	"seeek_backend/internal/shared/prompt"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.0-flash"
)

// Client はGemini APIを使用して食品・医薬品の画像分析を生成します。
type Client struct {
	client *genai.Client
	model  string
}

// ClientがLabelAnalyzerを実装していることをコンパイル時に検証します。
var _ usecase.LabelAnalyzer = (*Client)(nil)

// NewClient は注入されたgenaiクライアントでClientの新しいインスタンスを生成します。
func NewClient(client *genai.Client, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}
}

// scanSchema は画像分析レスポンスの構造化出力スキーマです。
var scanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"item_type":       {Type: genai.TypeString, Description: "FOOD or DRUG"},
		"identified_name": {Type: genai.TypeString},
		"detailed_info":   {Type: genai.TypeString},
		"identified_components": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Ingredients for food, active chemicals for drugs.",
		},
		"risk_assessment": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ailment_or_side_effect": {Type: genai.TypeString},
					"trigger":                {Type: genai.TypeString, Description: "Ingredient or chemical trigger"},
					"severity":               {Type: genai.TypeString, Description: "Low, Medium, or High"},
				},
				Required: []string{"ailment_or_side_effect", "trigger", "severity"},
			},
		},
		"personalized_recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"original_issue": {Type: genai.TypeString},
					"suggestion":     {Type: genai.TypeString},
					"goal_alignment": {Type: genai.TypeString},
					"cultural_note":  {Type: genai.TypeString},
				},
				Required: []string{"original_issue", "suggestion", "goal_alignment"},
			},
		},
		"educational_questions": {
			Type:     genai.TypeArray,
			Items:    &genai.Schema{Type: genai.TypeString},
			MinItems: genai.Ptr(int64(3)),
			MaxItems: genai.Ptr(int64(3)),
		},
	},
	Required: []string{"item_type", "identified_name", "risk_assessment", "personalized_recommendations"},
}

// AnalyzeImage は画像とプロフィールから構造化された分析結果を生成します。
// extractedTextが空でない場合、OCR結果を補助情報としてプロンプトに加えます。
func (c *Client) AnalyzeImage(ctx context.Context, imageData []byte, mimeType, extractedText string, p entity.Profile) (*entity.ScanResult, error) {
	nationality := prompt.OrDefault(p.Nationality, "Nigerian")
	goals := prompt.JoinOr(p.UserGoals, "Optimizing energy and digestion")
	allergies := prompt.JoinOr(p.Allergies, "None")
	diet := prompt.OrDefault(p.DietType, "Standard")

	var b strings.Builder
	fmt.Fprintf(&b, `You are a dual-specialist in Clinical Nutrition and Pharmacology.
Analyze the provided image, which contains either a meal or a medication/supplement.

### USER CONTEXT
- Nationality: %s
- Health Goals: %s
- Allergies/Sensitivities: %s
- Dietary Framework: %s

### ANALYSIS STEPS
1. **Identification**: Determine if the item is "FOOD" or "DRUG". Identify the specific dish or medication name and its active components.
2. **Risk Assessment**:
   - For FOOD: Identify risks like Gastric Acidity or Spiked Glycemic Index based on ingredients seen.
   - For DRUGS: Identify potential side effects (e.g., drowsiness) or instructions (e.g., "Take with food").
3. **Personalization**:
   - Map risks to specific ingredients/chemicals found in the image.
   - For FOOD: Suggest %s-relevant alternatives (e.g., swapping Ata Rodo for Tatashe).
   - For DRUGS: Suggest lifestyle support to manage side effects (e.g., "Drink more water" or "Avoid caffeine").

STRICT RULE: Do not suggest components listed in the user's allergies: %s.
`, nationality, goals, allergies, diet, nationality, allergies)

	if extractedText != "" {
		fmt.Fprintf(&b, "\n### TEXT EXTRACTED FROM IMAGE (OCR)\n%s\n", extractedText)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(b.String()),
			genai.NewPartFromBytes(imageData, mimeType),
		}, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   scanSchema,
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	var result entity.ScanResult
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	return &result, nil
}
