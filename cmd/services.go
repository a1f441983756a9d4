package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List supported video services in match order",
	Args:  cobra.NoArgs,
	RunE:  servicesRun,
}

func servicesRun(cmd *cobra.Command, args []string) error {
	p, err := newParser()
	if err != nil {
		return fmt.Errorf("setting up parser: %w", err)
	}

	out := newPrinter(os.Stdout, flagJSON)
	return out.services(p.Services())
}
