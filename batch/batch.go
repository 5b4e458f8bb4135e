// Package batch converts a list of export files to CSV one after another.
// A failure in one file is recorded in its result and never stops the run.
package batch

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/mediacsv"
)

// Runner converts export files using its configured services.
type Runner struct {
	Decoder   mediacsv.Decoder
	Extractor mediacsv.Extractor
	Store     mediacsv.RecordStore
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Input     string
	Result    *mediacsv.FileResult
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressStarted is sent before a file is processed.
	ProgressStarted ProgressType = iota
	ProgressSkipped
	ProgressCompleted
	ProgressFailed
	// ProgressFinished is sent once after the last file.
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes inputs in order and returns one result per attempted file.
// Files that are absent are skipped without being started. If ctx is
// cancelled the remaining inputs are not attempted.
func (r *Runner) Run(ctx context.Context, inputs []string, progress ProgressFunc) *mediacsv.BatchResult {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	result := &mediacsv.BatchResult{Files: make([]*mediacsv.FileResult, 0, len(inputs))}
	total := len(inputs)

	for i, input := range inputs {
		if ctx.Err() != nil {
			break
		}

		if !exists(input) {
			fr := skipped(input)
			result.Files = append(result.Files, fr)
			progress(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, Input: input, Result: fr})
			continue
		}

		progress(ProgressEvent{Type: ProgressStarted, Completed: i, Total: total, Input: input})

		fr := r.ProcessFile(ctx, input)
		result.Files = append(result.Files, fr)

		event := ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, Input: input, Result: fr}
		switch fr.Status {
		case mediacsv.StatusFailed:
			event.Type = ProgressFailed
		case mediacsv.StatusSkipped:
			event.Type = ProgressSkipped
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: len(result.Files), Total: total})
	return result
}

// ProcessFile reads, decodes, extracts and stores one export file.
// It never panics; unexpected failures are reported with code EINTERNAL.
func (r *Runner) ProcessFile(ctx context.Context, input string) (fr *mediacsv.FileResult) {
	defer func() {
		if p := recover(); p != nil {
			fr = failed(input, mediacsv.Errorf(mediacsv.EINTERNAL, "%v", p))
			fr.Unexpected = true
		}
	}()

	data, err := os.ReadFile(input)
	if os.IsNotExist(err) {
		return skipped(input)
	} else if err != nil {
		return failed(input, fmt.Errorf("read %s: %w", input, err))
	}

	html, err := r.Decoder.Decode(data)
	if err != nil {
		return failed(input, fmt.Errorf("decode %s: %w", input, err))
	}

	records := r.Extractor.Extract(html)

	output, err := r.Store.SaveRecords(ctx, input, records)
	if err != nil {
		return failed(input, fmt.Errorf("write csv: %w", err))
	}

	return &mediacsv.FileResult{
		Input:  input,
		Output: output,
		Count:  len(records),
		Status: mediacsv.StatusSucceeded,
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func skipped(input string) *mediacsv.FileResult {
	return &mediacsv.FileResult{
		Input:  input,
		Status: mediacsv.StatusSkipped,
		Err:    mediacsv.Errorf(mediacsv.ENOTFOUND, "%s not found", input),
	}
}

func failed(input string, err error) *mediacsv.FileResult {
	return &mediacsv.FileResult{
		Input:  input,
		Status: mediacsv.StatusFailed,
		Err:    err,
	}
}
