// Package oembed fetches oEmbed metadata records in XML form.
// Only the fields a video provider publishes are decoded; every value is
// kept as text so that an odd dimension or duration never hides the ID.
package oembed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoVideoID is returned when a record decodes but carries no video_id.
var ErrNoVideoID = errors.New("oembed: response has no video_id")

// Video is a decoded oEmbed record for a video resource.
type Video struct {
	Type            string `xml:"type" json:"type"`
	Version         string `xml:"version" json:"version"`
	ProviderName    string `xml:"provider_name" json:"provider_name"`
	ProviderURL     string `xml:"provider_url" json:"provider_url"`
	Title           string `xml:"title" json:"title"`
	AuthorName      string `xml:"author_name" json:"author_name"`
	AuthorURL       string `xml:"author_url" json:"author_url"`
	HTML            string `xml:"html" json:"html"`
	Width           string `xml:"width" json:"width"`
	Height          string `xml:"height" json:"height"`
	Duration        string `xml:"duration" json:"duration"`
	Description     string `xml:"description" json:"description,omitempty"`
	ThumbnailURL    string `xml:"thumbnail_url" json:"thumbnail_url"`
	ThumbnailWidth  string `xml:"thumbnail_width" json:"thumbnail_width"`
	ThumbnailHeight string `xml:"thumbnail_height" json:"thumbnail_height"`
	UploadDate      string `xml:"upload_date" json:"upload_date,omitempty"`
	VideoID         string `xml:"video_id" json:"video_id"`
	URI             string `xml:"uri" json:"uri,omitempty"`
}

// Decode reads one oEmbed XML document from r.
// The root element name is not enforced; fields are read from its direct children.
func Decode(r io.Reader) (*Video, error) {
	var v Video
	if err := xml.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding oembed XML: %w", err)
	}

	v.VideoID = strings.TrimSpace(v.VideoID)
	if v.VideoID == "" {
		return nil, ErrNoVideoID
	}
	return &v, nil
}
