package provider

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"vidembed/internal/media"
)

const youtubeEmbedURL = "http://youtube.com/embed/%s?autoplay=%d"

// youtubeHost matches youtube.com, youtube-nocookie.com and youtu.be with an
// optional www. or m. prefix, at the start of the URL.
var youtubeHost = regexp.MustCompile(`(?i)^(?:(?:https?:)?//)?(?:(?:www|m)\.)?(?:youtube(?:-nocookie)?\.com|youtu\.be)/`)

// youtubeIDKeys are the query keys that carry a video ID, in priority order.
var youtubeIDKeys = []string{"v", "vi"}

// YouTube implements Provider for youtube.com and youtu.be URLs.
type YouTube struct{}

// NewYouTube creates a YouTube provider.
func NewYouTube() *YouTube {
	return &YouTube{}
}

func (y *YouTube) Kind() media.ServiceKind {
	return media.YouTube
}

func (y *YouTube) Match(rawURL string) bool {
	return youtubeHost.MatchString(rawURL)
}

// VideoID reads the v or vi query parameter and otherwise falls back to the
// last path segment. It always yields an ID; for URLs that carry none the
// fallback returns whatever the last segment holds.
func (y *YouTube) VideoID(_ context.Context, rawURL string) (string, bool) {
	if id, ok := queryParam(rawURL, youtubeIDKeys...); ok {
		return id, true
	}
	return lastSegment(rawURL), true
}

func (y *YouTube) EmbedURL(id string, autoplay bool) string {
	return fmt.Sprintf(youtubeEmbedURL, id, autoplayFlag(autoplay))
}

// queryParam looks up keys in priority order. The first key present decides
// the outcome: an empty value yields no ID rather than trying the next key.
func queryParam(rawURL string, keys ...string) (string, bool) {
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		rawURL = rawURL[:i]
	}
	_, rawQuery, found := strings.Cut(rawURL, "?")
	if !found {
		return "", false
	}

	params := parseQuery(rawQuery)
	for _, key := range keys {
		if v, present := params[key]; present {
			return v, v != ""
		}
	}
	return "", false
}

// parseQuery splits a query string on '&' only, so ';' stays part of a value.
// Duplicate keys resolve to their last value.
func parseQuery(rawQuery string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		params[unescape(key)] = unescape(value)
	}
	return params
}

// unescape decodes s as a query component, keeping s verbatim when it holds
// an invalid escape.
func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// lastSegment returns the text after the final slash, cut at the first ?, = or &.
func lastSegment(rawURL string) string {
	segment := rawURL[strings.LastIndexByte(rawURL, '/')+1:]
	if i := strings.IndexAny(segment, "?=&"); i >= 0 {
		return segment[:i]
	}
	return segment
}
