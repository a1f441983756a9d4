// Package scan collects candidate video links from HTML fragments.
// Uses DOM parsing instead of regular expressions over raw markup so that
// entities, comments and script bodies are handled by the HTML parser.
package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// linkSelector matches every element whose URL attribute may point at a video.
const linkSelector = "a[href], iframe[src], embed[src], video[src], video source[src]"

// Links parses an HTML document or fragment from r and returns its link URLs.
func Links(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return documentLinks(doc), nil
}

// documentLinks returns link URLs in document order without duplicates.
func documentLinks(doc *goquery.Document) []string {
	var links []string
	seen := make(map[string]bool)

	doc.Find(linkSelector).Each(func(_ int, s *goquery.Selection) {
		attr := "src"
		if goquery.NodeName(s) == "a" {
			attr = "href"
		}

		link, exists := s.Attr(attr)
		if !exists {
			return
		}
		link = strings.TrimSpace(link)
		if link == "" || seen[link] {
			return
		}

		seen[link] = true
		links = append(links, link)
	})

	return links
}
