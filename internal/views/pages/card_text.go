package pages

import (
	"strings"
	"unicode/utf8"
)

// CardTextLine is one paragraph of card text
type CardTextLine struct {
	Parts []CardTextPart
}

// CardTextPart is a run of text, italic when it was in parentheses
type CardTextPart struct {
	Text   string
	Italic bool
}

// FormatCardText splits a card description into paragraphs and marks
// parenthetical remarks as italic. Blank lines are dropped.
func FormatCardText(text string) []CardTextLine {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var result []CardTextLine
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result = append(result, formatLineWithParentheses(line))
	}
	return result
}

func formatLineWithParentheses(line string) CardTextLine {
	var result CardTextLine
	var current strings.Builder
	inParentheses := false

	flush := func(italic bool) {
		if current.Len() > 0 {
			result.Parts = append(result.Parts, CardTextPart{Text: current.String(), Italic: italic})
			current.Reset()
		}
	}

	for remaining := line; len(remaining) > 0; {
		r, size := utf8.DecodeRuneInString(remaining)
		remaining = remaining[size:]

		switch {
		case r == '(' && !inParentheses:
			flush(false)
			inParentheses = true
			current.WriteRune(r)
		case r == ')' && inParentheses:
			current.WriteRune(r)
			flush(true)
			inParentheses = false
		default:
			current.WriteRune(r)
		}
	}
	flush(inParentheses)

	return result
}
