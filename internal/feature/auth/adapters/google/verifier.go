// Package google はGoogle IDトークンの検証クライアントを提供します。
package google

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"seeek_backend/internal/feature/auth/usecase"
)

// Verifier validates Google-issued ID tokens against a fixed audience
// (the GOOGLE_CLIENT_ID of the frontend).
type Verifier struct {
	audience string
}

// VerifierがIDTokenVerifierを実装していることをコンパイル時に検証します。
var _ usecase.IDTokenVerifier = (*Verifier)(nil)

// NewVerifier creates a new Verifier for the given audience.
func NewVerifier(audience string) *Verifier {
	return &Verifier{audience: audience}
}

// Verify は署名・有効期限・audienceを検証します。
func (v *Verifier) Verify(ctx context.Context, token string) error {
	if _, err := idtoken.Validate(ctx, token, v.audience); err != nil {
		return fmt.Errorf("id token validation failed: %w", err)
	}
	return nil
}
