package mediacsv

// Window bounds the text searched around a caption marker, in characters.
type Window struct {
	// Before is how far the window reaches back from the marker start.
	Before int `json:"before" yaml:"before"`
	// After is how far the window reaches forward from the marker end.
	After int `json:"after" yaml:"after"`
}

// DefaultWindow matches the layout of the export format: the media tag of an
// item precedes its caption by less than 3000 characters.
var DefaultWindow = Window{Before: 3000, After: 1000}

// Extractor recovers media records from the raw text of an export file.
type Extractor interface {
	// Extract returns the records in caption order. It never fails:
	// malformed input simply yields fewer records.
	Extract(html string) []*MediaRecord
}

// Marker is one "added about" caption found in an export.
type Marker struct {
	// Index is the 0-based position of the marker among all markers.
	Index int
	// Start and End are byte offsets of the whole marker match.
	Start int
	End   int
	// TimeAdded is the trimmed caption text following the marker.
	TimeAdded string
}

// Decoder converts the raw bytes of an export file into text.
type Decoder interface {
	Decode(data []byte) (string, error)
}
