// Package videourl turns user-supplied video URLs into embed descriptors.
//
// A Parser identifies the hosting service, extracts its video ID and
// builds the player URL. Every expected failure (unknown host, failed
// remote lookup, missing ID) collapses into a false ok value; nothing is
// cached between calls and a Parser is safe for concurrent use.
package videourl

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"vidembed/internal/media"
	"vidembed/internal/provider"
)

// DefaultConcurrency bounds ParseAll when no limit is configured.
const DefaultConcurrency = 4

// ErrNoProviders is returned by New when the registry cannot identify anything.
var ErrNoProviders = errors.New("videourl: registry has no providers")

// Parser resolves video URLs against a provider registry.
type Parser struct {
	registry    *provider.Registry
	autoplay    bool
	concurrency int
	logger      *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithAutoplay sets the autoplay flag rendered into embed URLs. Defaults to true.
func WithAutoplay(autoplay bool) Option {
	return func(p *Parser) { p.autoplay = autoplay }
}

// WithConcurrency bounds how many URLs ParseAll resolves at once.
func WithConcurrency(n int) Option {
	return func(p *Parser) { p.concurrency = n }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// New creates a Parser over registry.
func New(registry *provider.Registry, opts ...Option) (*Parser, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, ErrNoProviders
	}

	p := &Parser{
		registry:    registry,
		autoplay:    true,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.concurrency <= 0 {
		p.concurrency = DefaultConcurrency
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p, nil
}

// Parse resolves rawURL into an embed descriptor.
// ok is false when the service is not recognized or no ID could be found;
// a partially filled Result is never returned.
func (p *Parser) Parse(ctx context.Context, rawURL string) (media.Result, bool) {
	rawURL = strings.TrimSpace(rawURL)

	prov, ok := p.registry.Identify(rawURL)
	if !ok {
		p.logger.Debug("parse: unrecognized service", slog.String("video.url", rawURL))
		return media.Result{}, false
	}

	id, ok := prov.VideoID(ctx, rawURL)
	if !ok {
		p.logger.Debug("parse: no video id", slog.String("video.url", rawURL), slog.String("service", prov.Kind().String()))
		return media.Result{}, false
	}

	return media.Result{
		Type:  prov.Kind(),
		Embed: prov.EmbedURL(id, p.autoplay),
	}, true
}

// Outcome is the result of parsing one URL in a batch.
type Outcome struct {
	URL    string
	Result media.Result
	OK     bool
}

// ParseAll parses urls concurrently and returns outcomes in input order.
func (p *Parser) ParseAll(ctx context.Context, urls []string) []Outcome {
	outcomes := make([]Outcome, len(urls))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			res, ok := p.Parse(ctx, u)
			outcomes[i] = Outcome{URL: u, Result: res, OK: ok}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Services lists the services this parser recognizes, in match order.
func (p *Parser) Services() []media.ServiceKind {
	return p.registry.Kinds()
}
