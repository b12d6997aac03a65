// Package gemini はGoogle Gemini APIを使用したチャット返答クライアントを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"seeek_backend/internal/feature/assistant/domain/entity"
	"seeek_backend/internal/feature/assistant/usecase"
	"seeek_backend/internal/shared/prompt"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.0-flash"
)

// Client はGemini APIを使用してチャット返答を生成します。
type Client struct {
	client *genai.Client
	model  string
}

// ClientがResponderを実装していることをコンパイル時に検証します。
var _ usecase.Responder = (*Client)(nil)

// NewClient は注入されたgenaiクライアントでClientの新しいインスタンスを生成します。
func NewClient(client *genai.Client, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}
}

// chatSchema はチャット返答の構造化出力スキーマです。
var chatSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"chat_response": {
			Type:        genai.TypeString,
			Description: "The direct, conversational answer to the user's message.",
		},
		"recommended_meals": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"meal_name":    {Type: genai.TypeString},
					"origin":       {Type: genai.TypeString, Description: "Local or International"},
					"description":  {Type: genai.TypeString},
					"health_score": {Type: genai.TypeNumber},
					"key_benefits": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"why_it_fits":  {Type: genai.TypeString, Description: "Personalized rationale based on goals and nationality."},
				},
				Required: []string{"meal_name", "origin", "description", "health_score", "key_benefits", "why_it_fits"},
			},
		},
		"follow_up_suggestions": {
			Type:     genai.TypeArray,
			Items:    &genai.Schema{Type: genai.TypeString},
			MinItems: genai.Ptr(int64(2)),
			MaxItems: genai.Ptr(int64(3)),
		},
	},
	Required: []string{"chat_response", "follow_up_suggestions"},
}

// Respond は会話履歴とプロフィールを踏まえた構造化返答を生成します。
func (c *Client) Respond(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error) {
	name := prompt.OrDefault(p.FirstName, "User")
	nationality := prompt.OrDefault(p.Nationality, "Nigerian")
	goals := prompt.JoinOr(p.UserGoals, "Optimizing digestion and energy")
	diet := prompt.OrDefault(p.DietType, "Standard")
	allergies := prompt.JoinOr(p.Allergies, "None")

	var b strings.Builder
	fmt.Fprintf(&b, `You are a clinical nutritionist AI assistant. Use the following context for all responses.

USER IDENTITY & HEALTH PROFILE:
- Name: %s
- Nationality: %s
- Primary Health Goals: %s
- Medical/Dietary Constraints: %s
- Strict Allergies: %s

STRICT OPERATIONAL RULES:
1. Answer the current query while respecting the context of previous messages.
2. Priority: Always suggest local %s dishes first.
3. Safety: Strictly avoid any ingredients listed in the User's Allergies (%s).
4. Scoring: Provide a 'health_score' (0-100) based on alignment with: %s.
5. Tone: Be supportive, professional, and culturally informed.

**recommend meals to the user only when it is relevant to the conversation.**
`, name, nationality, goals, diet, allergies, nationality, allergies, goals)

	fmt.Fprintf(&b, "\nUser Question: %s\n", message)
	if history != "" {
		fmt.Fprintf(&b, "\nPREVIOUS MESSAGES: %s\n", history)
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   chatSchema,
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(b.String()), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	var reply entity.ChatReply
	if err := json.Unmarshal([]byte(resp.Text()), &reply); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	return &reply, nil
}
