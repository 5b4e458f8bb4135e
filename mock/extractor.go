package mock

import "github.com/fwojciec/mediacsv"

var _ mediacsv.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mediacsv.Extractor.
type Extractor struct {
	ExtractFn func(html string) []*mediacsv.MediaRecord
}

func (e *Extractor) Extract(html string) []*mediacsv.MediaRecord {
	return e.ExtractFn(html)
}

var _ mediacsv.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of mediacsv.Decoder.
type Decoder struct {
	DecodeFn func(data []byte) (string, error)
}

func (d *Decoder) Decode(data []byte) (string, error) {
	return d.DecodeFn(data)
}

var _ mediacsv.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of mediacsv.Inspector.
type Inspector struct {
	InspectFn func(html string) (*mediacsv.Inspection, error)
}

func (i *Inspector) Inspect(html string) (*mediacsv.Inspection, error) {
	return i.InspectFn(html)
}
