package pages

import (
	"fmt"
	"strconv"

	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
)

// Element ids patched over SSE
const (
	ResultsID = "results"
	DeckID    = "deck-panel"
	ModalID   = "modal"
	AlertID   = "alert"
)

// DeckView is everything the deck panel shows
type DeckView struct {
	Mode             deck.Mode
	Entries          []deck.Entry
	Counts           deck.Counts
	Limits           deck.Limits
	ConfirmThreshold int
}

// HomeData is the initial state of the page
type HomeData struct {
	Lang string
	Deck DeckView
}

// action renders a datastar backend action expression
func action(method, path string) string {
	return fmt.Sprintf("@%s('%s')", method, path)
}

// pageLang is the search language preselected on the page
func pageLang(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}

func searchSignals(lang string) string {
	return fmt.Sprintf("{query: '', lang: '%s', searching: false}", jsString(pageLang(lang)))
}

// confirmBulk asks before a large images.zip and retries it confirmed
func confirmBulk(copies int) string {
	prompt := fmt.Sprintf(diag.MsgConfirmBulk, copies)
	return fmt.Sprintf("confirm('%s') && (window.location.href = '/deck/images.zip?confirmed=1')", jsString(prompt))
}

func tabLabel(mode deck.Mode) string {
	return "Deck " + mode.Label()
}

func levelText(lr int) string {
	if lr <= 0 {
		return ""
	}
	return strconv.Itoa(lr)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func stat(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// jsString escapes s for a single-quoted JavaScript literal
func jsString(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\'' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
