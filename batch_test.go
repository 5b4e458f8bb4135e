package mediacsv_test

import (
	"testing"

	"github.com/fwojciec/mediacsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchResult_Counts(t *testing.T) {
	t.Parallel()

	result := &mediacsv.BatchResult{Files: []*mediacsv.FileResult{
		{Input: "1.html", Status: mediacsv.StatusSucceeded, Count: 4},
		{Input: "2.html", Status: mediacsv.StatusSkipped},
		{Input: "3.html", Status: mediacsv.StatusFailed},
		{Input: "4.html", Status: mediacsv.StatusSucceeded, Count: 0},
		{Input: "5.html", Status: mediacsv.StatusSucceeded, Count: 7},
	}}

	assert.Equal(t, 3, result.Succeeded())
	assert.Equal(t, 1, result.Failed())
	assert.Equal(t, 1, result.Skipped())
	assert.Equal(t, 11, result.Records())
}

func TestRange_Validate(t *testing.T) {
	t.Parallel()

	t.Run("default range is valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, mediacsv.DefaultRange.Validate())
		assert.Equal(t, mediacsv.Range{From: 1, To: 61}, mediacsv.DefaultRange)
	})

	t.Run("single file range is valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, mediacsv.Range{From: 30, To: 30}.Validate())
	})

	t.Run("reversed range is invalid", func(t *testing.T) {
		t.Parallel()

		err := mediacsv.Range{From: 10, To: 2}.Validate()

		assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(err))
	})

	t.Run("negative bound is invalid", func(t *testing.T) {
		t.Parallel()

		err := mediacsv.Range{From: -1, To: 2}.Validate()

		assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(err))
	})
}

func TestBatchConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("empty config is valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&mediacsv.BatchConfig{}).Validate())
	})

	t.Run("rejects bad range", func(t *testing.T) {
		t.Parallel()

		cfg := &mediacsv.BatchConfig{Range: &mediacsv.Range{From: 5, To: 1}}

		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects negative window", func(t *testing.T) {
		t.Parallel()

		cfg := &mediacsv.BatchConfig{Window: &mediacsv.Window{Before: -1, After: 10}}

		assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(cfg.Validate()))
	})
}
