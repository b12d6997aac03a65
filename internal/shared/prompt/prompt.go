// Package prompt はAIプロンプト組み立て用の小さなヘルパーを提供します。
package prompt

import "strings"

// OrDefault returns s, or def when s is empty.
func OrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// JoinOr joins list with ", ", or returns def when the list is empty.
func JoinOr(list []string, def string) string {
	if len(list) == 0 {
		return def
	}
	return strings.Join(list, ", ")
}
