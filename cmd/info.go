package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vidembed/internal/provider"
)

var infoCmd = &cobra.Command{
	Use:   "info <vimeo-url>",
	Short: "Show the oEmbed record for a Vimeo URL",
	Args:  cobra.ExactArgs(1),
	RunE:  infoRun,
}

func infoRun(cmd *cobra.Command, args []string) error {
	videoURL := strings.TrimSpace(args[0])

	client, err := newOEmbedClient()
	if err != nil {
		return fmt.Errorf("setting up oembed client: %w", err)
	}
	if !provider.NewVimeo(client, nil).Match(videoURL) {
		return fmt.Errorf("%q is not a Vimeo URL", videoURL)
	}

	video, err := client.Fetch(cmd.Context(), videoURL)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", videoURL, err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(video)
	}

	out := newPrinter(os.Stdout, false)
	out.field("Title", video.Title)
	out.field("Author", video.AuthorName)
	out.field("Provider", video.ProviderName)
	out.field("Video ID", video.VideoID)
	out.field("Duration", withUnit(video.Duration, "s"))
	if video.Width != "" && video.Height != "" {
		out.field("Size", video.Width+"x"+video.Height)
	}
	out.field("Thumbnail", video.ThumbnailURL)
	out.field("Embed", provider.NewVimeo(nil, nil).EmbedURL(video.VideoID, cfg.Autoplay))
	return nil
}

// withUnit appends unit to a non-empty value.
func withUnit(value, unit string) string {
	if value == "" {
		return ""
	}
	return value + unit
}
