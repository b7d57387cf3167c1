package main

import (
	"fmt"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"ygodeck/internal/card"
	"ygodeck/internal/catalog"
	"ygodeck/internal/diag"
	"ygodeck/internal/store"
)

func (c *cli) searchCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the card catalog by name",
		Long: `Search tries a fuzzy name match, then an exact name match, each first
without and then with the chosen language, and shows the first non-empty result.

Examples:
  ygodeck search dark magician
  ygodeck search --lang pt mago negro`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			cards, err := c.catalog.Search(cmd.Context(), query, catalog.ParseLanguage(lang))
			if err != nil {
				return err
			}

			// an empty result still replaces the old one so positions never go stale
			if err := store.SaveResults(c.kv, cards); err != nil {
				return err
			}

			if len(cards) == 0 {
				fmt.Fprintln(c.out, colorize.YellowString(diag.MsgNoResults))
				return nil
			}
			printResults(c.out, cards)
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", string(catalog.English), "search language: en or pt")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <n|id>",
		Short: "Show the details of a card from the last search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := c.lookup(args[0])
			if err != nil {
				return err
			}
			printCard(c.out, found, termWidth())
			return nil
		},
	}
}

// lookup resolves ref against the last search: a 1-based position first,
// then a card id.
func (c *cli) lookup(ref string) (card.Card, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil {
		return card.Card{}, diag.New(errUnknownCard, diag.MsgUnknownCard)
	}

	results, err := store.LoadResults(c.kv)
	if err != nil {
		return card.Card{}, err
	}
	if n >= 1 && n <= len(results) {
		return results[n-1], nil
	}
	for _, r := range results {
		if r.ID == n {
			return r, nil
		}
	}
	return card.Card{}, diag.New(errUnknownCard, diag.MsgUnknownCard)
}
