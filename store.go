package mediacsv

import (
	"context"
	"io"
)

// RecordEncoder serializes records into an output format.
type RecordEncoder interface {
	EncodeRecords(w io.Writer, records []*MediaRecord) error
}

// RecordStore persists the records extracted from one input file.
type RecordStore interface {
	// SaveRecords writes records for the given input and returns the path
	// of the file written.
	SaveRecords(ctx context.Context, input string, records []*MediaRecord) (output string, err error)
}
