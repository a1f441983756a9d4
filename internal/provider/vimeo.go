package provider

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/lmittmann/tint"

	"vidembed/internal/media"
	"vidembed/internal/oembed"
)

const vimeoEmbedURL = "http://player.vimeo.com/video/%s?autoplay=%d"

// vimeoHost matches vimeo.com under any number of subdomain labels.
var vimeoHost = regexp.MustCompile(`(?i)^(?:(?:https?:)?//)?(?:[a-z]+\.)*vimeo\.com/`)

// Vimeo implements Provider for vimeo.com URLs. Vimeo URL shapes do not
// reliably carry the numeric ID, so it is resolved through oEmbed.
type Vimeo struct {
	fetcher oembed.Fetcher
	logger  *slog.Logger
}

// NewVimeo creates a Vimeo provider that resolves IDs with fetcher.
// A nil logger uses slog.Default().
func NewVimeo(fetcher oembed.Fetcher, logger *slog.Logger) *Vimeo {
	if logger == nil {
		logger = slog.Default()
	}
	return &Vimeo{
		fetcher: fetcher,
		logger:  logger,
	}
}

func (v *Vimeo) Kind() media.ServiceKind {
	return media.Vimeo
}

func (v *Vimeo) Match(rawURL string) bool {
	return vimeoHost.MatchString(rawURL)
}

// VideoID performs one oEmbed lookup. Every lookup failure is logged and
// reported as a missing ID.
func (v *Vimeo) VideoID(ctx context.Context, rawURL string) (string, bool) {
	if v.fetcher == nil {
		v.logger.Warn("vimeo: no oembed fetcher configured", slog.String("video.url", rawURL))
		return "", false
	}

	video, err := v.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		v.logger.Debug("vimeo: oembed lookup failed", slog.String("video.url", rawURL), tint.Err(err))
		return "", false
	}
	if video == nil || video.VideoID == "" {
		v.logger.Debug("vimeo: oembed record has no video id", slog.String("video.url", rawURL))
		return "", false
	}

	return video.VideoID, true
}

func (v *Vimeo) EmbedURL(id string, autoplay bool) string {
	return fmt.Sprintf(vimeoEmbedURL, id, autoplayFlag(autoplay))
}
