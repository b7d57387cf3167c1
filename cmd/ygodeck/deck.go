package main

import (
	"fmt"
	"strconv"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
)

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <n|id>...",
		Short: "Add one copy of each card from the last search to the deck",
		Long: `Add takes positions in the last search (1, 2, ...) or card ids. Repeat a
reference to add several copies.

Examples:
  ygodeck add 1 1 2
  ygodeck --deck extra add 44508094`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ref := range args {
				found, err := c.lookup(ref)
				if err != nil {
					return err
				}
				if err := c.model.Add(found); err != nil {
					return err
				}
				fmt.Fprintf(c.out, "%s %s\n", colorize.GreenString("+"), found.Name)
			}
			printCounts(c.out, c.model)
			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the cards in the deck",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printDeck(c.out, c.model)
			return nil
		},
	}
}

func (c *cli) qtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qty <position> <inc|dec>",
		Short: "Add or remove one copy of a deck entry",
		Long: `Qty changes the number of copies of the entry at position (as shown by
list) by one. An entry that drops to zero copies leaves the deck.

Examples:
  ygodeck qty 2 inc
  ygodeck --deck extra qty 1 dec`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := position(args[0])
			if err != nil {
				return err
			}

			var delta int
			switch args[1] {
			case "inc", "+":
				delta = 1
			case "dec", "-":
				delta = -1
			default:
				return diag.New(deck.ErrInvalidDelta, diag.MsgBadQuantity)
			}

			if err := c.model.ChangeQty(index, delta); err != nil {
				return err
			}
			printDeck(c.out, c.model)
			return nil
		},
	}
}

func (c *cli) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <position>",
		Aliases: []string{"remove"},
		Short:   "Remove a deck entry with all its copies",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := position(args[0])
			if err != nil {
				return err
			}
			if err := c.model.RemoveAt(index); err != nil {
				return err
			}
			printDeck(c.out, c.model)
			return nil
		},
	}
}

func (c *cli) clearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every card from the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := c.model.Mode()
			if !yes && !c.ask(fmt.Sprintf("Limpar o Deck %s?", mode.Label())) {
				return diag.New(errCancelled, diag.MsgCancelled)
			}
			c.model.ClearActive()
			fmt.Fprintf(c.out, "Deck %s limpo\n", mode.Label())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// position converts a 1-based deck position to an index
func position(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, diag.New(errBadIndex, diag.MsgNoEntry)
	}
	return n - 1, nil
}
