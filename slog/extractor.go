// Package slog provides logging decorators for mediacsv services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mediacsv"
)

// Ensure LoggingExtractor implements mediacsv.Extractor.
var _ mediacsv.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   mediacsv.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mediacsv.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (records []*mediacsv.MediaRecord) {
	defer func(begin time.Time) {
		var videos int
		for _, rec := range records {
			if rec.MediaType == mediacsv.MediaTypeVideo {
				videos++
			}
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"records", len(records),
			"videos", videos,
			"images", len(records)-videos,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}

// Ensure LoggingStore implements mediacsv.RecordStore.
var _ mediacsv.RecordStore = (*LoggingStore)(nil)

// LoggingStore wraps a RecordStore with logging.
type LoggingStore struct {
	next   mediacsv.RecordStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next mediacsv.RecordStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// SaveRecords delegates to the wrapped store and logs the operation.
func (s *LoggingStore) SaveRecords(ctx context.Context, input string, records []*mediacsv.MediaRecord) (output string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "save records",
			"input", input,
			"output", output,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRecords(ctx, input, records)
}

// Ensure LoggingSource implements mediacsv.InputSource.
var _ mediacsv.InputSource = (*LoggingSource)(nil)

// LoggingSource wraps an InputSource with logging.
type LoggingSource struct {
	next   mediacsv.InputSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next mediacsv.InputSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Inputs delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Inputs(ctx context.Context) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("input discovery",
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Inputs(ctx)
}
