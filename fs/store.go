// Package fs provides file-based input discovery and record storage.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mediacsv"
)

// OutputPath returns the CSV path written for an input file: the input's
// final extension is replaced with ".csv", or ".csv" is appended when the
// name has no extension. A leading dot does not start an extension.
// Example: exports/12.html → exports/12.csv
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	if ext == "" || ext == filepath.Base(input) {
		return input + ".csv"
	}
	return strings.TrimSuffix(input, ext) + ".csv"
}

// Ensure Store implements mediacsv.RecordStore at compile time.
var _ mediacsv.RecordStore = (*Store)(nil)

// Store writes records next to their input file.
// Records are encoded to a temporary file which is renamed over the final
// path, so a failed write never leaves a partial CSV behind.
type Store struct {
	encoder mediacsv.RecordEncoder
}

// NewStore creates a new Store that encodes records with encoder.
func NewStore(encoder mediacsv.RecordEncoder) *Store {
	return &Store{encoder: encoder}
}

// SaveRecords writes records to OutputPath(input) and returns that path.
func (s *Store) SaveRecords(ctx context.Context, input string, records []*mediacsv.MediaRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	output := OutputPath(input)
	tempPath := output + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", err
	}

	if err := s.encoder.EncodeRecords(f, records); err != nil {
		_ = f.Close()
		_ = os.Remove(tempPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", err
	}

	if err := os.Rename(tempPath, output); err != nil {
		_ = os.Remove(tempPath)
		return "", err
	}
	return output, nil
}
