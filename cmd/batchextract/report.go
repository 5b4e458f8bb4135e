package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/mediacsv"
	"github.com/fwojciec/mediacsv/batch"
)

// Report returns a progress callback that prints one line per file event
// and a summary when the run finishes.
func Report(w io.Writer) batch.ProgressFunc {
	var succeeded, failed, skipped int
	return func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressSkipped:
			skipped++
			fmt.Fprintf(w, "Warning: %s not found, skipping...\n", e.Input)
		case batch.ProgressStarted:
			fmt.Fprintf(w, "Processing %s...\n", e.Input)
		case batch.ProgressCompleted:
			succeeded++
			fmt.Fprintf(w, "  ✓ %s\n", mediacsv.FormatSummary(e.Result.Count, e.Result.Input, e.Result.Output))
		case batch.ProgressFailed:
			failed++
			if e.Result.Unexpected {
				fmt.Fprintf(w, "  ✗ Unexpected error processing %s: %s\n", e.Input, mediacsv.ErrorMessage(e.Result.Err))
			} else {
				fmt.Fprintf(w, "  ✗ Error processing %s: %s\n", e.Input, mediacsv.ErrorMessage(e.Result.Err))
			}
		case batch.ProgressFinished:
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Processing complete!")
			fmt.Fprintf(w, "%d succeeded, %d failed, %d skipped\n", succeeded, failed, skipped)
		}
	}
}
