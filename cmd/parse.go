package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// parseRun is the default command: vidembed <url...>
func parseRun(cmd *cobra.Command, args []string) error {
	urls := args
	if len(urls) == 0 {
		if isTerminal(os.Stdin) {
			return fmt.Errorf("no URLs given (pass them as arguments or pipe them on stdin)")
		}
		var err error
		urls, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading URLs: %w", err)
		}
	}

	p, err := newParser()
	if err != nil {
		return fmt.Errorf("setting up parser: %w", err)
	}

	outcomes := p.ParseAll(cmd.Context(), urls)

	out := newPrinter(os.Stdout, flagJSON)
	missed := 0
	for _, o := range outcomes {
		if err := out.outcome(o); err != nil {
			return err
		}
		if !o.OK {
			missed++
		}
	}

	if missed > 0 {
		return fmt.Errorf("%d of %d URLs produced no embed", missed, len(outcomes))
	}
	return nil
}

// readLines returns the non-blank, non-comment lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
