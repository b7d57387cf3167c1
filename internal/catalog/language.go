package catalog

import "strings"

// Language is the catalog's card-text language filter
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// ParseLanguage maps the user's selection to a catalog language. Only the
// Portuguese option is special; everything else searches in English.
func ParseLanguage(selection string) Language {
	s := strings.TrimSpace(selection)
	if strings.EqualFold(s, "Portuguese") || strings.EqualFold(s, string(Portuguese)) {
		return Portuguese
	}
	return English
}
