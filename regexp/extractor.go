// Package regexp implements mediacsv.Extractor as a proximity heuristic over
// the raw export text. It does not parse HTML: each "added about" caption is
// paired with the first media URL found in a fixed window of text around it.
package regexp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/mediacsv"
)

var (
	markerPattern   = regexp.MustCompile(`added about ([^<]*)`)
	videoPattern    = regexp.MustCompile(`<source src="([^"]*\.mp4[^"]*)"`)
	imagePattern    = regexp.MustCompile(`href="(https://scontent[^"]*\.jpg[^"]*)"`)
	durationPattern = regexp.MustCompile(`duration: (\d+) second`)
)

// Ensure Extractor implements mediacsv.Extractor at compile time.
var _ mediacsv.Extractor = (*Extractor)(nil)

// Extractor recovers media records using a configurable context window.
type Extractor struct {
	window mediacsv.Window
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWindow sets the context window searched around each caption.
// Defaults to mediacsv.DefaultWindow if not specified.
func WithWindow(w mediacsv.Window) Option {
	return func(e *Extractor) {
		e.window = w
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{window: mediacsv.DefaultWindow}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Window returns the context window the extractor uses.
func (e *Extractor) Window() mediacsv.Window {
	return e.window
}

// Extract returns the media records found in html.
func (e *Extractor) Extract(html string) []*mediacsv.MediaRecord {
	return Extract(html, e.window)
}

// Markers returns every caption marker in html in document order.
func Markers(html string) []mediacsv.Marker {
	matches := markerPattern.FindAllStringSubmatchIndex(html, -1)
	markers := make([]mediacsv.Marker, 0, len(matches))
	for i, m := range matches {
		markers = append(markers, mediacsv.Marker{
			Index:     i,
			Start:     m[0],
			End:       m[1],
			TimeAdded: strings.TrimSpace(html[m[2]:m[3]]),
		})
	}
	return markers
}

// Extract returns the media records found in html using window w.
//
// A record's ID is its marker's position among all markers plus one, so
// markers without a media URL in their window leave gaps in the numbering.
func Extract(html string, w mediacsv.Window) []*mediacsv.MediaRecord {
	var records []*mediacsv.MediaRecord
	for _, m := range Markers(html) {
		start, end := ContextWindow(html, m.Start, m.End, w)
		if rec := recordFromBlock(html[start:end]); rec != nil {
			rec.ID = m.Index + 1
			rec.TimeAdded = m.TimeAdded
			records = append(records, rec)
		}
	}
	return records
}

// ContextWindow returns the byte bounds of the text searched for a marker
// spanning [start, end). The window reaches w.Before characters back from
// start and w.After characters forward from end, clamped to the text.
func ContextWindow(text string, start, end int, w mediacsv.Window) (int, int) {
	return backRunes(text, start, w.Before), forwardRunes(text, end, w.After)
}

func recordFromBlock(block string) *mediacsv.MediaRecord {
	if m := videoPattern.FindStringSubmatch(block); m != nil {
		return &mediacsv.MediaRecord{
			MediaType: mediacsv.MediaTypeVideo,
			CDNURL:    m[1],
			Duration:  duration(block),
		}
	}
	if m := imagePattern.FindStringSubmatch(block); m != nil {
		return &mediacsv.MediaRecord{
			MediaType: mediacsv.MediaTypeImage,
			CDNURL:    m[1],
		}
	}
	return nil
}

// duration returns the first "duration: N second" value in block, or 0.
// Values that overflow int are treated as absent.
func duration(block string) int {
	m := durationPattern.FindStringSubmatch(block)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func backRunes(s string, pos, n int) int {
	for ; n > 0 && pos > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:pos])
		pos -= size
	}
	return pos
}

func forwardRunes(s string, pos, n int) int {
	for ; n > 0 && pos < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}
