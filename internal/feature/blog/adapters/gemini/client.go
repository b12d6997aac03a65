// Package gemini はGoogle Gemini APIを使用したブログ生成クライアントを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"seeek_backend/internal/feature/blog/domain/entity"
	"seeek_backend/internal/feature/blog/usecase"
	"seeek_backend/internal/shared/prompt"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.0-flash"
)

// Client はGemini APIを使用してブログコンテンツを生成します。
type Client struct {
	client *genai.Client
	model  string
}

// ClientがGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.Generator = (*Client)(nil)

// NewClient は注入されたgenaiクライアントでClientの新しいインスタンスを生成します。
func NewClient(client *genai.Client, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}
}

// topicsSchema は記事候補レスポンスの構造化出力スキーマです。
var topicsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"blog_topics": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":                  {Type: genai.TypeString, Description: "The headline of the blog post"},
					"category":               {Type: genai.TypeString, Description: "e.g., Nutrition, Culture, Lifestyle"},
					"target_audience":        {Type: genai.TypeString},
					"brief_outline":          {Type: genai.TypeString, Description: "A 2-sentence summary of what the post covers."},
					"estimated_reading_time": {Type: genai.TypeString, Description: "e.g., 5 min read"},
				},
				Required: []string{"title", "category", "brief_outline"},
			},
		},
	},
	Required: []string{"blog_topics"},
}

// postSchema は長文記事レスポンスの構造化出力スキーマです。
var postSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":        {Type: genai.TypeString},
		"content":      {Type: genai.TypeString, Description: "The full blog post in Markdown format."},
		"word_count":   {Type: genai.TypeNumber},
		"seo_keywords": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"title", "content"},
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

// Topics はプロフィールに合わせた5件の記事候補を生成します。
func (c *Client) Topics(ctx context.Context, p entity.Profile) ([]entity.Topic, error) {
	nationality := prompt.OrDefault(p.Nationality, "Nigerian")
	goals := prompt.JoinOr(p.UserGoals, "General health and wellness")
	diet := prompt.OrDefault(p.DietType, "Standard")

	text := fmt.Sprintf(`As a content strategist, generate 5 engaging blog post topics tailored for the user profile below.
The topics should be relevant to their nationality, health goals, and dietary lifestyle.

### USER PROFILE
- Nationality/Culture: %s
- Interests/Goals: %s
- Dietary Lifestyle: %s

### INSTRUCTIONS
1. Diversity: Mix educational "How-to" guides, listicles (e.g., "Top 5..."), and cultural deep-dives.
2. Relevance: Ensure topics bridge the gap between %s culture and %s dieting.
3. Engagement: Write catchy, SEO-friendly headlines.`,
		nationality, goals, diet, nationality, diet)

	var out struct {
		BlogTopics []entity.Topic `json:"blog_topics"`
	}
	if err := c.generate(ctx, text, topicsSchema, &out); err != nil {
		return nil, err
	}
	return out.BlogTopics, nil
}

// Post は指定されたトピックの長文記事を生成します。
func (c *Client) Post(ctx context.Context, req entity.PostRequest, p entity.Profile) (*entity.Post, error) {
	nationality := prompt.OrDefault(p.Nationality, "Nigerian")
	goals := prompt.JoinOr(p.UserGoals, "General health and wellness")
	allergies := prompt.JoinOr(p.Allergies, "common allergens")
	diet := prompt.OrDefault(p.DietType, "Standard")

	text := fmt.Sprintf(`As an expert health and culture blogger, write an extensive, high-quality blog post not less than 1500 words based on this topic: %q under the category: %s with an estimated reading time of %s, and a target audience of %s.

### TARGET READER PROFILE
- Nationality: %s
- Goals: %s
- Diet Type: %s
- Allergies to Avoid: %s

### CONTENT STRUCTURE REQUIREMENTS
1. Catchy H1 Title: Refine the provided topic into a professional headline.
2. Introduction: Hook the reader by relating the topic to their specific %s background and goals.
3. The "Why" Section: Explain the science or cultural significance.
4. Practical Application: Provide a detailed, step-by-step guide or recipe.
5. Constraint Check: Explicitly mention how this avoids %s.
6. Conclusion: An encouraging closing statement and a "Call to Action".

### FORMAT
Return the full blog post in Markdown format in the 'content' field.`,
		req.Topic, req.Category, req.ReadingTime, req.TargetAudience,
		nationality, goals, diet, allergies, nationality, allergies)

	var out entity.Post
	if err := c.generate(ctx, text, postSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
