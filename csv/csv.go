// Package csv encodes and decodes media records in the export CSV format.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/fwojciec/mediacsv"
)

// Header is the fixed column order of the output format.
var Header = []string{"id", "media_type", "cdn_url", "duration", "time_added"}

// Ensure Encoder implements mediacsv.RecordEncoder at compile time.
var _ mediacsv.RecordEncoder = (*Encoder)(nil)

// Encoder writes records as CSV with a header row.
type Encoder struct {
	useCRLF bool
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithCRLF sets whether rows end in "\r\n" (the default) or "\n".
func WithCRLF(crlf bool) Option {
	return func(e *Encoder) {
		e.useCRLF = crlf
	}
}

// NewEncoder creates a new Encoder.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{useCRLF: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncodeRecords writes the header followed by one row per record.
func (e *Encoder) EncodeRecords(w io.Writer, records []*mediacsv.MediaRecord) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = e.useCRLF

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(row(rec)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(rec *mediacsv.MediaRecord) []string {
	return []string{
		strconv.Itoa(rec.ID),
		string(rec.MediaType),
		rec.CDNURL,
		strconv.Itoa(rec.Duration),
		rec.TimeAdded,
	}
}

// ReadRecords parses CSV produced by an Encoder. The header must match
// Header exactly; id and duration must be integers.
func ReadRecords(r io.Reader) ([]*mediacsv.MediaRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "missing header row")
	} else if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(header, Header) {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "unexpected header %v", header)
	}

	var records []*mediacsv.MediaRecord
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec, err := parseRow(fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(fields []string) (*mediacsv.MediaRecord, error) {
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "invalid id %q", fields[0])
	}
	duration, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "record %d: invalid duration %q", id, fields[3])
	}
	return &mediacsv.MediaRecord{
		ID:        id,
		MediaType: mediacsv.MediaType(fields[1]),
		CDNURL:    fields[2],
		Duration:  duration,
		TimeAdded: fields[4],
	}, nil
}
