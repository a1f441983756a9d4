// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"vidembed/internal/config"
	"vidembed/internal/oembed"
	"vidembed/internal/provider"
	"vidembed/internal/videourl"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagJSON        bool
	flagNoAutoplay  bool
	flagTimeout     int
	flagConcurrency int
	flagDebug       bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vidembed [url...]",
	Short: "Turn YouTube and Vimeo links into embed URLs",
	Long: `vidembed identifies the hosting service of a video URL, extracts its video ID
and prints a player embed URL. URLs are read from the arguments, or one per
line from stdin when none are given.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              parseRun,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output one JSON object per URL")
	rootCmd.PersistentFlags().BoolVar(&flagNoAutoplay, "no-autoplay", false, "Render autoplay=0 in embed URLs")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Remote lookup timeout in seconds (default: 10)")
	rootCmd.PersistentFlags().IntVar(&flagConcurrency, "concurrency", 0, "URLs resolved in parallel (default: 4)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagNoAutoplay {
		cfg.Autoplay = false
	}
	if flagTimeout != 0 {
		cfg.TimeoutSeconds = flagTimeout
	}
	if flagConcurrency != 0 {
		cfg.Concurrency = flagConcurrency
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isTerminal(os.Stderr),
	})))

	return nil
}

// newOEmbedClient builds the oEmbed client described by cfg.
func newOEmbedClient() (*oembed.Client, error) {
	return oembed.NewClient(
		oembed.WithEndpoint(cfg.OEmbedEndpoint),
		oembed.WithWidth(cfg.OEmbedWidth),
		oembed.WithTimeout(cfg.Timeout()),
	)
}

// newParser wires the default providers into a parser.
func newParser() (*videourl.Parser, error) {
	client, err := newOEmbedClient()
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	return videourl.New(
		provider.Default(client, logger),
		videourl.WithAutoplay(cfg.Autoplay),
		videourl.WithConcurrency(cfg.Concurrency),
		videourl.WithLogger(logger),
	)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vidembed %s\n", Version)
	},
}
