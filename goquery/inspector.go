// Package goquery provides DOM-based inspection of media exports.
// Extraction itself is textual (see package regexp); the inspector parses
// the document to report what the export actually contains, which helps
// spot items the proximity heuristic missed.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mediacsv"
)

// Ensure Inspector implements mediacsv.Inspector at compile time.
var _ mediacsv.Inspector = (*Inspector)(nil)

// Inspector counts media elements in an export document.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses html and reports its title, the <source> elements that
// point at .mp4 files, and the links to .jpg files on the scontent CDN.
// Marker, record, duplicate and fingerprint fields are left for the caller.
func (i *Inspector) Inspect(html string) (*mediacsv.Inspection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "parse html: %v", err)
	}

	in := &mediacsv.Inspection{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Bytes: len(html),
	}

	doc.Find("source[src]").Each(func(_ int, s *goquery.Selection) {
		if src, _ := s.Attr("src"); strings.Contains(src, ".mp4") {
			in.VideoSources++
		}
	})
	doc.Find(`a[href^="https://scontent"]`).Each(func(_ int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); strings.Contains(href, ".jpg") {
			in.ImageLinks++
		}
	})

	return in, nil
}
