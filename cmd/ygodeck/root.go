package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"ygodeck/internal/archive"
	"ygodeck/internal/catalog"
	"ygodeck/internal/config"
	"ygodeck/internal/deck"
	"ygodeck/internal/store"
)

// cli holds the state shared by every subcommand of one invocation
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	deckName   string
	verbose    bool

	cfg     *config.Config
	kv      store.KV
	model   *deck.Model
	catalog *catalog.Client
	fetcher archive.Fetcher
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{in: in, out: out, errOut: errOut}
}

// Execute runs the command line in args and releases the deck store
func (c *cli) Execute(args ...string) error {
	root := c.rootCmd()
	root.SetArgs(args)
	defer c.close()
	return root.Execute()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ygodeck",
		Short: "Search the Yu-Gi-Oh! card catalog and build main and extra decks",
		Long: `ygodeck searches the YGOPRODeck catalog and keeps a Main deck (up to 60
cards) and an Extra deck (up to 15 cards), with at most 3 copies of any card.

Decks are saved after every change. Search results are remembered so later
commands can refer to a card by its position in the last search.

Examples:
  ygodeck search dark magician
  ygodeck add 1
  ygodeck --deck extra add 3
  ygodeck list
  ygodeck export txt -o ./out
  ygodeck images --yes`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.open() },
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./ygodeck.yaml or the user config dir)")
	root.PersistentFlags().StringVarP(&c.deckName, "deck", "d", string(deck.ModeMain), "deck to work on: main or extra")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log requests and deck changes to stderr")

	root.AddCommand(
		c.searchCmd(),
		c.showCmd(),
		c.addCmd(),
		c.listCmd(),
		c.qtyCmd(),
		c.rmCmd(),
		c.clearCmd(),
		c.exportCmd(),
		c.imagesCmd(),
		c.imageCmd(),
		c.configCmd(),
	)
	return root
}

// loadConfig reads the configuration and routes the standard logger
func (c *cli) loadConfig() error {
	if c.verbose {
		log.SetOutput(c.errOut)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	config.ApplyLogFormat(cfg.Log.Format)
	c.cfg = cfg
	return nil
}

// open wires the deck store, the model and the catalog client
func (c *cli) open() error {
	if err := c.loadConfig(); err != nil {
		return err
	}

	mode, err := deck.ParseMode(c.deckName)
	if err != nil {
		return err
	}

	kv, err := store.Open(c.cfg.Storage.Backend, c.cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open %s store: %w", c.cfg.Storage.Backend, err)
	}
	c.kv = kv

	c.model = deck.NewModel(store.NewDeckStore(kv))
	if err := c.model.SetMode(mode); err != nil {
		return err
	}

	c.catalog = catalog.New(catalog.Options{
		BaseURL:   c.cfg.Catalog.BaseURL,
		Timeout:   c.cfg.Catalog.Timeout,
		RateLimit: c.cfg.Catalog.RateLimit,
		Burst:     c.cfg.Catalog.RateLimitBurst,
		UserAgent: c.cfg.Catalog.UserAgent,
	})
	c.fetcher = archive.NewHTTPFetcher(c.cfg.Images.Timeout, c.cfg.Images.RateLimit, c.cfg.Catalog.UserAgent)
	return nil
}

func (c *cli) close() {
	if c.kv != nil {
		if err := c.kv.Close(); err != nil {
			log.Printf("⚠️ Closing deck store: %v", err)
		}
		c.kv = nil
	}
}
