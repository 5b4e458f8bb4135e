package mock

import (
	"context"
	"io"

	"github.com/fwojciec/mediacsv"
)

var _ mediacsv.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of mediacsv.RecordStore.
type RecordStore struct {
	SaveRecordsFn func(ctx context.Context, input string, records []*mediacsv.MediaRecord) (string, error)
}

func (s *RecordStore) SaveRecords(ctx context.Context, input string, records []*mediacsv.MediaRecord) (string, error) {
	return s.SaveRecordsFn(ctx, input, records)
}

var _ mediacsv.RecordEncoder = (*RecordEncoder)(nil)

// RecordEncoder is a mock implementation of mediacsv.RecordEncoder.
type RecordEncoder struct {
	EncodeRecordsFn func(w io.Writer, records []*mediacsv.MediaRecord) error
}

func (e *RecordEncoder) EncodeRecords(w io.Writer, records []*mediacsv.MediaRecord) error {
	return e.EncodeRecordsFn(w, records)
}

var _ mediacsv.InputSource = (*InputSource)(nil)

// InputSource is a mock implementation of mediacsv.InputSource.
type InputSource struct {
	InputsFn func(ctx context.Context) ([]string, error)
}

func (s *InputSource) Inputs(ctx context.Context) ([]string, error) {
	return s.InputsFn(ctx)
}
