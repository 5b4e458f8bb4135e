// Package chardet implements mediacsv.Decoder with character set detection.
// Exports are normally UTF-8 and pass through untouched; older exports saved
// in a legacy encoding are transcoded to UTF-8 before extraction.
package chardet

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/mediacsv"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// Ensure Decoder implements mediacsv.Decoder at compile time.
var _ mediacsv.Decoder = (*Decoder)(nil)

// Decoder converts export bytes to UTF-8 text.
type Decoder struct {
	detector *chardet.Detector
}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{detector: chardet.NewTextDetector()}
}

// Decode returns data as text with universal newlines: "\r\n" and lone
// "\r" both become "\n". Valid UTF-8 is otherwise returned unchanged.
// For other input a byte order mark wins, then the detected charset; the
// byte order mark itself is dropped from the result.
func (d *Decoder) Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return normalizeNewlines(string(data)), nil
	}

	name := d.Charset(data)
	if name == "" {
		return "", mediacsv.Errorf(mediacsv.EINVALID, "cannot detect character encoding")
	}
	if name == "utf-8" {
		return "", mediacsv.Errorf(mediacsv.EINVALID, "input is not valid UTF-8")
	}

	r, err := charset.NewReaderLabel(name, bytes.NewReader(data))
	if err != nil {
		return "", mediacsv.Errorf(mediacsv.EINVALID, "unsupported character encoding %q", name)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return normalizeNewlines(strings.TrimPrefix(string(out), "\uFEFF")), nil
}

// normalizeNewlines folds CRLF and CR line endings into LF so that window
// sizes count one character per line break.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// Charset returns the lowercase name of the encoding data appears to use,
// or "" when it cannot be determined.
func (d *Decoder) Charset(data []byte) string {
	if _, name, certain := charset.DetermineEncoding(data, "text/html"); certain {
		return name
	}
	result, err := d.detector.DetectBest(data)
	if err != nil || result == nil {
		return ""
	}
	return strings.ToLower(result.Charset)
}
