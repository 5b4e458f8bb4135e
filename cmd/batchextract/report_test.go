package main_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/mediacsv"
	"github.com/fwojciec/mediacsv/batch"
	main "github.com/fwojciec/mediacsv/cmd/batchextract"
	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("separates expected and unexpected failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		report := main.Report(&buf)

		report(batch.ProgressEvent{Type: batch.ProgressFailed, Input: "1.html", Result: &mediacsv.FileResult{
			Input:  "1.html",
			Status: mediacsv.StatusFailed,
			Err:    mediacsv.Errorf(mediacsv.EINVALID, "cannot detect character encoding"),
		}})
		report(batch.ProgressEvent{Type: batch.ProgressFailed, Input: "2.html", Result: &mediacsv.FileResult{
			Input:      "2.html",
			Status:     mediacsv.StatusFailed,
			Err:        mediacsv.Errorf(mediacsv.EINTERNAL, "index out of range"),
			Unexpected: true,
		}})
		report(batch.ProgressEvent{Type: batch.ProgressFinished})

		assert.Equal(t,
			"  ✗ Error processing 1.html: cannot detect character encoding\n"+
				"  ✗ Unexpected error processing 2.html: index out of range\n"+
				"\nProcessing complete!\n"+
				"0 succeeded, 2 failed, 0 skipped\n",
			buf.String())
	})

	t.Run("prints summary for an empty run", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		main.Report(&buf)(batch.ProgressEvent{Type: batch.ProgressFinished})

		assert.Equal(t, "\nProcessing complete!\n0 succeeded, 0 failed, 0 skipped\n", buf.String())
	})
}
