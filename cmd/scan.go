package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vidembed/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file|-]",
	Short: "Find embeddable video links in an HTML document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  scanRun,
}

func scanRun(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	links, err := scan.Links(r)
	if err != nil {
		return err
	}
	slog.Debug("scan: collected links", slog.Int("links", len(links)))

	p, err := newParser()
	if err != nil {
		return fmt.Errorf("setting up parser: %w", err)
	}

	out := newPrinter(os.Stdout, flagJSON)
	found := 0
	for _, o := range p.ParseAll(cmd.Context(), links) {
		if !o.OK {
			continue
		}
		found++
		if err := out.outcome(o); err != nil {
			return err
		}
	}

	if found == 0 && !flagJSON {
		fmt.Fprintln(os.Stderr, "No embeddable video links found.")
	}
	return nil
}
