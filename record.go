package mediacsv

// MediaType identifies the kind of media a record points to.
type MediaType string

// MediaType constants.
const (
	MediaTypeVideo MediaType = "video"
	MediaTypeImage MediaType = "image"
)

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool {
	return t == MediaTypeVideo || t == MediaTypeImage
}

// MediaRecord is one media item recovered from an export file.
type MediaRecord struct {
	// ID is the 1-based position of the caption marker among all markers
	// in the file, including markers that produced no record.
	ID        int       `json:"id"`
	MediaType MediaType `json:"mediaType"`
	CDNURL    string    `json:"cdnUrl"`
	// Duration is in whole seconds and always 0 for images.
	Duration  int    `json:"duration"`
	TimeAdded string `json:"timeAdded"`
}

// Validate returns an error if the record contains invalid fields.
func (r *MediaRecord) Validate() error {
	if r.ID < 1 {
		return Errorf(EINVALID, "record id must be positive, got %d", r.ID)
	}
	if !r.MediaType.Valid() {
		return Errorf(EINVALID, "record %d: unknown media type %q", r.ID, r.MediaType)
	}
	if r.CDNURL == "" {
		return Errorf(EINVALID, "record %d: cdn url required", r.ID)
	}
	if r.Duration < 0 {
		return Errorf(EINVALID, "record %d: negative duration %d", r.ID, r.Duration)
	}
	if r.MediaType == MediaTypeImage && r.Duration != 0 {
		return Errorf(EINVALID, "record %d: image cannot have a duration", r.ID)
	}
	return nil
}
