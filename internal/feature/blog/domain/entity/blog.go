// Package entity はblogフィーチャーのドメインモデルを定義します。
package entity

// Profile is the slice of the account used to personalize blog content.
type Profile struct {
	Nationality string
	DietType    string
	Allergies   []string
	UserGoals   []string
}

// Topic は生成されたブログ記事候補です。
type Topic struct {
	Title                string `json:"title"`
	Category             string `json:"category"`
	TargetAudience       string `json:"target_audience"`
	BriefOutline         string `json:"brief_outline"`
	EstimatedReadingTime string `json:"estimated_reading_time"`
}

// PostRequest は長文記事生成の入力です。
type PostRequest struct {
	Topic          string
	Category       string
	ReadingTime    string
	TargetAudience string
}

// Post は生成された長文ブログ記事です。
type Post struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	WordCount   float64  `json:"word_count"`
	SEOKeywords []string `json:"seo_keywords"`
}
