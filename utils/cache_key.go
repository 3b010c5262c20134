package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var reCacheKey = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// BuildCorrectionCacheKey derives a stable cache key for an external
// correction of text. Ruleset and locale are part of the key so a rule-table
// change never serves stale corrections.
func BuildCorrectionCacheKey(text string) string {
	ruleset := "v1"
	locale := "en-US"
	text = strings.ToLower(text)
	text = reCacheKey.ReplaceAllString(text, "")
	raw := fmt.Sprintf("%s|%s|%s", text, ruleset, locale)

	hash := sha256.Sum256([]byte(raw))

	return "correction:" + hex.EncodeToString(hash[:])
}
