// Package provider defines the interface for supported video hosting
// services and their implementations.
package provider

import (
	"context"

	"vidembed/internal/media"
)

// Provider recognizes one hosting service's URLs and turns them into embed URLs.
type Provider interface {
	// Kind reports which service this provider handles.
	Kind() media.ServiceKind

	// Match reports whether rawURL points at this provider's host.
	Match(rawURL string) bool

	// VideoID extracts the service-specific video identifier.
	// ok is false when no identifier could be found.
	VideoID(ctx context.Context, rawURL string) (id string, ok bool)

	// EmbedURL returns the player URL for id.
	EmbedURL(id string, autoplay bool) string
}

// autoplayFlag renders autoplay the way both players expect it in a query string.
func autoplayFlag(autoplay bool) int {
	if autoplay {
		return 1
	}
	return 0
}
