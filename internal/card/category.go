package card

import "strings"

// Category is the coarse bucket a card type falls into for deck summaries
type Category string

const (
	CategoryMonster Category = "monster"
	CategorySpell   Category = "spell"
	CategoryTrap    Category = "trap"
	CategoryOther   Category = ""
)

// categoryTokens is checked in order; the first token found in the type wins.
var categoryTokens = []Category{CategoryMonster, CategorySpell, CategoryTrap}

// Classify maps a free-form type string such as "Effect Monster" or
// "Spell Card" to its category. Matching is a case-insensitive substring
// test; types that match no token are CategoryOther.
func Classify(typ string) Category {
	t := strings.ToLower(typ)
	for _, c := range categoryTokens {
		if strings.Contains(t, string(c)) {
			return c
		}
	}
	return CategoryOther
}
