package mediacsv

// Inspection summarizes an export file without converting it.
type Inspection struct {
	Title        string
	VideoSources int
	ImageLinks   int
	Markers      int
	Records      int
	Duplicates   int
	Fingerprint  string
	Bytes        int
}

// Inspector reports the structural media content of an export file.
type Inspector interface {
	Inspect(html string) (*Inspection, error)
}

// URLSet tracks URLs that have already been seen.
type URLSet interface {
	// Seen reports whether url was added before and adds it.
	Seen(url string) bool
}
