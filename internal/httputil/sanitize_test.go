package httputil

import (
	"net/url"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid HTTPS", "https://example.com/path", false},
		{"valid HTTP", "http://vimeo.com/api/oembed.xml", false},
		{"uppercase scheme", "HTTP://vimeo.com/api/oembed.xml", false},
		{"javascript scheme rejected", "javascript:alert(1)", true},
		{"data scheme rejected", "data:text/html,<h1>Hi</h1>", true},
		{"FTP rejected", "ftp://example.com/file", true},
		{"empty string", "", true},
		{"no host", "https://", true},
		{"relative path", "/api/oembed.xml", true},
		{"valid with port", "http://127.0.0.1:8080/path", false},
		{"valid with query", "https://example.com/path?q=test&a=b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestWithQuery(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		params   url.Values
		expected string
	}{
		{
			name:     "oembed request",
			base:     "http://vimeo.com/api/oembed.xml",
			params:   url.Values{"url": {"https://vimeo.com/76979871"}, "width": {"640"}},
			expected: "http://vimeo.com/api/oembed.xml?url=https%3A%2F%2Fvimeo.com%2F76979871&width=640",
		},
		{
			name:     "existing query kept",
			base:     "http://example.com/oembed?format=xml",
			params:   url.Values{"url": {"a b&c"}},
			expected: "http://example.com/oembed?format=xml&url=a+b%26c",
		},
		{
			name:     "no params",
			base:     "http://example.com/oembed",
			params:   nil,
			expected: "http://example.com/oembed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WithQuery(tt.base, tt.params)
			if err != nil {
				t.Fatalf("WithQuery() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("WithQuery(%q) = %q, want %q", tt.base, got, tt.expected)
			}
		})
	}
}
