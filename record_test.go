package mediacsv_test

import (
	"testing"

	"github.com/fwojciec/mediacsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaRecord_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *mediacsv.MediaRecord {
		return &mediacsv.MediaRecord{
			ID:        2,
			MediaType: mediacsv.MediaTypeVideo,
			CDNURL:    "https://cdn.example.com/v.mp4",
			Duration:  30,
			TimeAdded: "2 hours ago",
		}
	}

	tests := []struct {
		name   string
		modify func(r *mediacsv.MediaRecord)
		errMsg string
	}{
		{name: "valid video", modify: func(r *mediacsv.MediaRecord) {}},
		{name: "valid image", modify: func(r *mediacsv.MediaRecord) {
			r.MediaType = mediacsv.MediaTypeImage
			r.Duration = 0
		}},
		{name: "empty time added is allowed", modify: func(r *mediacsv.MediaRecord) { r.TimeAdded = "" }},
		{name: "zero id", modify: func(r *mediacsv.MediaRecord) { r.ID = 0 }, errMsg: "id must be positive"},
		{name: "unknown type", modify: func(r *mediacsv.MediaRecord) { r.MediaType = "audio" }, errMsg: "unknown media type"},
		{name: "missing url", modify: func(r *mediacsv.MediaRecord) { r.CDNURL = "" }, errMsg: "cdn url required"},
		{name: "negative duration", modify: func(r *mediacsv.MediaRecord) { r.Duration = -1 }, errMsg: "negative duration"},
		{name: "image with duration", modify: func(r *mediacsv.MediaRecord) { r.MediaType = mediacsv.MediaTypeImage }, errMsg: "image cannot have a duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := valid()
			tt.modify(r)

			err := r.Validate()

			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(err))
			assert.Contains(t, mediacsv.ErrorMessage(err), tt.errMsg)
		})
	}
}
