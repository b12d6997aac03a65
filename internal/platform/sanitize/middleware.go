// Package sanitize は受信JSONボディの危険キー除去ミドルウェアを提供します。
package sanitize

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

// dangerousKeys はプロトタイプ汚染系の入力で悪用されるキーです。
// ネストの深さに関わらず一律に除去されます。
var dangerousKeys = map[string]struct{}{
	"__proto__":   {},
	"prototype":   {},
	"constructor": {},
}

// sqlInjectionPattern は受動検知用のパターンです（除去はせずログのみ）。
var sqlInjectionPattern = regexp.MustCompile(`('|--|;|/\*|\*/|\b(SELECT|UNION|INSERT|UPDATE|DELETE|DROP|WHERE|OR|AND)\b)`)

// stripDangerousKeys は値ツリーを走査して危険キーを取り除きます。
func stripDangerousKeys(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, stripDangerousKeys(item))
		}
		return out
	case map[string]any:
		clean := make(map[string]any, len(val))
		for k, item := range val {
			if _, bad := dangerousKeys[k]; bad {
				continue
			}
			clean[k] = stripDangerousKeys(item)
		}
		return clean
	default:
		return v
	}
}

// suspicious は文字列値のどこかにSQL風パターンが含まれるかを調べます。
func suspicious(v any) bool {
	switch val := v.(type) {
	case string:
		return sqlInjectionPattern.MatchString(val)
	case []any:
		for _, item := range val {
			if suspicious(item) {
				return true
			}
		}
	case map[string]any:
		for _, item := range val {
			if suspicious(item) {
				return true
			}
		}
	}
	return false
}

// RequestBody returns a Gin middleware that strips dangerous keys from
// every JSON request body once, centrally, before handlers bind it.
// Multipart uploads are passed through untouched. Bodies that are not
// valid JSON are also passed through; binding rejects them later.
func RequestBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := c.ContentType()
		if strings.HasPrefix(ct, "multipart/form-data") || c.Request.Body == nil {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(500, gin.H{"message": "Invalid request body"})
			return
		}

		var body any
		if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
			cleaned := stripDangerousKeys(body)
			if suspicious(cleaned) {
				slog.Warn("possible SQL injection pattern detected",
					"path", c.FullPath(), "remote_addr", c.ClientIP())
			}
			if rewritten, err := json.Marshal(cleaned); err == nil {
				raw = rewritten
			}
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		c.Next()
	}
}
