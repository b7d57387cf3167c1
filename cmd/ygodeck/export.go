package main

import (
	"fmt"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"ygodeck/internal/archive"
	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
	"ygodeck/internal/export"
)

var exporters = map[string]func([]deck.Entry) ([]byte, error){
	export.KindText: export.Text,
	export.KindJSON: export.JSON,
	"qr":            export.QR,
	export.KindQR:   export.QR,
}

func (c *cli) exportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export <txt|json|qr>",
		Short: "Write the deck as a text list, JSON or a QR code",
		Long: `Export writes deck_<deck>.txt (one line per copy), deck_<deck>.json (the
entries) or deck_<deck>.png (a QR code of the text list).

Examples:
  ygodeck export txt
  ygodeck --deck extra export qr -o ./out`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{export.KindText, export.KindJSON, "qr"},
		RunE: func(cmd *cobra.Command, args []string) error {
			render, ok := exporters[args[0]]
			if !ok {
				return fmt.Errorf("unknown export format %q", args[0])
			}
			kind := args[0]
			if kind == "qr" {
				kind = export.KindQR
			}

			data, err := render(c.model.Snapshot(deck.Active))
			if err != nil {
				return err
			}

			name := export.Filename(c.model.Mode(), kind)
			if err := (archive.DirSink{Dir: dir}).Deliver(name, data); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s %s\n", colorize.GreenString("✔"), filepath.Join(dir, name))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "directory to write into")
	return cmd
}

func (c *cli) imagesCmd() *cobra.Command {
	var dir string
	var yes bool
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Download the artwork of every card copy into a ZIP archive",
		Long: `Images fetches one picture per copy in the deck and writes
deck_<deck>_images.zip. Decks with more copies than images.confirmThreshold
ask before downloading.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirmer archive.Confirmer = archive.ConfirmFunc(func(n int) bool {
				return c.ask(fmt.Sprintf(diag.MsgConfirmBulk, n))
			})
			if yes {
				confirmer = archive.Always
			}

			a := archive.New(c.fetcher, archive.DirSink{Dir: dir},
				archive.WithWorkers(c.cfg.Images.Workers),
				archive.WithConfirmThreshold(c.cfg.Images.ConfirmThreshold),
				archive.WithConfirmer(confirmer),
			)

			report, err := a.Download(cmd.Context(), c.model.Mode(), c.model.Snapshot(deck.Active))
			if err != nil {
				return err
			}

			for _, f := range report.Failed {
				fmt.Fprintf(c.errOut, "%s %s: %v\n", colorize.RedString("✘"), f.Name, f.Err)
			}
			if summary := report.Summary(); summary != "" {
				fmt.Fprintln(c.out, colorize.YellowString(summary))
			}
			fmt.Fprintf(c.out, "%s %s (%d/%d)\n", colorize.GreenString("✔"),
				filepath.Join(dir, report.Filename), report.Added, report.Copies)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "directory to write into")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *cli) imageCmd() *cobra.Command {
	var dir string
	var variant int
	cmd := &cobra.Command{
		Use:   "image <n|id>",
		Short: "Download one card's artwork at full resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := c.lookup(args[0])
			if err != nil {
				return err
			}
			if variant < 0 || variant >= len(found.Images) || found.Images[variant].URL == "" {
				return diag.New(archive.ErrMissingURL, diag.MsgImageFailed)
			}
			url := found.Images[variant].URL

			data, err := c.fetcher.Fetch(cmd.Context(), url)
			if err != nil {
				return diag.New(err, diag.MsgImageFailed)
			}

			name := archive.FileName(found.Name, url)
			if err := (archive.DirSink{Dir: dir}).Deliver(name, data); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s %s\n", colorize.GreenString("✔"), filepath.Join(dir, name))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "directory to write into")
	cmd.Flags().IntVar(&variant, "variant", 0, "artwork variant, starting at 0")
	return cmd
}
