// Package api は各フィーチャーのHTTPトランスポート層で共有されるJSON型を定義します。
package api

// ErrorResponse is the common error envelope returned by all handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// MessageResponse is returned by endpoints that only report success.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User is the public view of an account. The password hash is never
// included here.
type User struct {
	ID               uint     `json:"id,omitempty"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	PhoneNumber      string   `json:"phone_number"`
	OAuth            string   `json:"oauth"`
	OAuthMethod      string   `json:"oauth_method"`
	DateOfBirth      *string  `json:"dateOfBirth"`
	Gender           *string  `json:"gender"`
	Height           *string  `json:"height"`
	Weight           *string  `json:"weight"`
	SkinType         *string  `json:"skinType"`
	Nationality      *string  `json:"nationality"`
	DietType         *string  `json:"dietType"`
	Allergies        []string `json:"allergies"`
	UserGoals        []string `json:"userGoals"`
	AccountCompleted bool     `json:"account_completed"`
}

// AuthResponse is returned by signup, login, complete-signup and
// token refresh. The issued token embeds the same public fields.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

// BotCodeResponse is returned by the bot code generator.
type BotCodeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BotCode int    `json:"botCode"`
}
