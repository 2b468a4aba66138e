package utils

import (
	"strings"
	"unicode"
)

// NormalizeBrandKey converts a brand name into the key format used by the
// brand dataset: lowercase ASCII letters and digits only.
func NormalizeBrandKey(brandName string) string {
	normalized := strings.ToLower(strings.TrimSpace(brandName))

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToTitleCase upper-cases the first letter of every word.
func ToTitleCase(str string) string {
	if str == "" {
		return str
	}

	runes := []rune(str)
	runes[0] = unicode.ToUpper(runes[0])

	for i := 1; i < len(runes); i++ {
		if unicode.IsSpace(runes[i-1]) || runes[i-1] == '-' || runes[i-1] == '_' {
			runes[i] = unicode.ToUpper(runes[i])
		}
	}

	return string(runes)
}
