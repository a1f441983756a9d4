package provider

import (
	"log/slog"

	"vidembed/internal/media"
	"vidembed/internal/oembed"
)

// Registry holds providers in match order. The first provider whose Match
// accepts a URL wins. A Registry is immutable once built.
type Registry struct {
	providers []Provider
}

// NewRegistry creates a registry that tries providers in the given order.
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{providers: append([]Provider(nil), providers...)}
}

// Default returns the built-in registry: YouTube, then Vimeo backed by fetcher.
func Default(fetcher oembed.Fetcher, logger *slog.Logger) *Registry {
	return NewRegistry(NewYouTube(), NewVimeo(fetcher, logger))
}

// Identify returns the first provider that matches rawURL.
func (r *Registry) Identify(rawURL string) (Provider, bool) {
	for _, p := range r.providers {
		if p.Match(rawURL) {
			return p, true
		}
	}
	return nil, false
}

// Kinds lists the registered services in match order.
func (r *Registry) Kinds() []media.ServiceKind {
	kinds := make([]media.ServiceKind, 0, len(r.providers))
	for _, p := range r.providers {
		kinds = append(kinds, p.Kind())
	}
	return kinds
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	return len(r.providers)
}
