package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"ygodeck/internal/card"
	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
	"ygodeck/internal/views/pages"
)

var (
	label  = colorize.New(colorize.FgCyan).SprintFunc()
	strong = colorize.New(colorize.FgHiWhite, colorize.Bold).SprintFunc()
	faint  = colorize.New(colorize.FgHiBlack).SprintFunc()
	italic = colorize.New(colorize.Italic, colorize.FgHiBlack).SprintFunc()
)

var categoryColor = map[card.Category]*colorize.Color{
	card.CategoryMonster: colorize.New(colorize.FgYellow),
	card.CategorySpell:   colorize.New(colorize.FgGreen),
	card.CategoryTrap:    colorize.New(colorize.FgMagenta),
	card.CategoryOther:   colorize.New(colorize.FgWhite),
}

// termWidth is the width of stdout, or 80 when it is not a terminal
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func printResults(w io.Writer, cards []card.Card) {
	for i, c := range cards {
		typ := categoryColor[card.Classify(c.Type)].Sprint(c.Subtitle())
		fmt.Fprintf(w, "%3d. %s  %s %s\n", i+1, strong(c.Name), typ, faint("#"+strconv.Itoa(c.ID)))
	}
}

func printCard(w io.Writer, c card.Card, width int) {
	rule := faint(strings.Repeat("─", min(width, 60)))

	fmt.Fprintln(w, strong(c.Name))
	fmt.Fprintln(w, rule)
	field(w, "Tipo", c.Type)
	field(w, "Atributo", c.Attribute)
	level := ""
	if lv := c.LevelOrRank(); lv > 0 {
		level = strconv.Itoa(lv)
	}
	field(w, "Nível/Rank", level)
	if c.ATK != nil || c.DEF != nil {
		field(w, "ATK / DEF", stat(c.ATK)+" / "+stat(c.DEF))
	}
	field(w, "Arquétipo", c.Archetype)
	fmt.Fprintln(w, rule)

	for _, line := range pages.FormatCardText(c.Desc) {
		for _, part := range line.Parts {
			if part.Italic {
				fmt.Fprint(w, italic(part.Text))
			} else {
				fmt.Fprint(w, part.Text)
			}
		}
		fmt.Fprintln(w)
	}

	if len(c.Images) > 1 {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%s %d (--variant 0..%d)\n", label("Artes:"), len(c.Images), len(c.Images)-1)
	}
}

func field(w io.Writer, name, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(w, "%s %s\n", label(name+":"), value)
}

func stat(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func printDeck(w io.Writer, m *deck.Model) {
	limits := m.Limits()
	mode := m.Mode()
	entries := m.Snapshot(deck.Active)

	fmt.Fprintf(w, "%s (%d/%d)\n", strong("Deck "+mode.Label()), deck.Total(entries), limits.Max(mode))
	if len(entries) == 0 {
		fmt.Fprintln(w, faint(diag.MsgEmptyDeck))
		return
	}
	for i, e := range entries {
		typ := categoryColor[card.Classify(e.Type)].Sprint(e.Type)
		fmt.Fprintf(w, "%3d. %dx %s  %s\n", i+1, e.Qty, e.Name, typ)
	}
	printCounts(w, m)
}

func printCounts(w io.Writer, m *deck.Model) {
	counts := m.Counts()
	limits := m.Limits()
	fmt.Fprintf(w, "%s %d  %s %d  %s %d   %s %d/%d  %s %d/%d\n",
		label("Monstros"), counts.Monster,
		label("Magias"), counts.Spell,
		label("Armadilhas"), counts.Trap,
		faint("Principal"), counts.MainTotal, limits.MainMax,
		faint("Adicional"), counts.ExtraTotal, limits.ExtraMax,
	)
}
