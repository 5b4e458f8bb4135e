package mediacsv

import (
	"fmt"
	"strings"
)

// FormatSummary formats the one-line report printed after a file is converted.
func FormatSummary(count int, input, output string) string {
	return fmt.Sprintf("Extracted %d items from %s to %s", count, input, output)
}

// FormatInspection formats an inspection report, one field per line.
// The title line is omitted when the export has no title.
// Sizes use binary units.
func FormatInspection(input string, in *Inspection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "file: %s\n", input)
	if in.Title != "" {
		fmt.Fprintf(&b, "title: %s\n", in.Title)
	}
	fmt.Fprintf(&b, "fingerprint: %s\n", in.Fingerprint)
	fmt.Fprintf(&b, "size: %s\n", formatSize(in.Bytes))
	fmt.Fprintf(&b, "markers: %d\n", in.Markers)
	fmt.Fprintf(&b, "records: %d\n", in.Records)
	fmt.Fprintf(&b, "video sources: %d\n", in.VideoSources)
	fmt.Fprintf(&b, "image links: %d\n", in.ImageLinks)
	fmt.Fprintf(&b, "duplicate urls: %d", in.Duplicates)
	return b.String()
}

func formatSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	size, unit := float64(n)/1024, "KB"
	if size >= 1024 {
		size, unit = size/1024, "MB"
	}
	return fmt.Sprintf("%.1f %s", size, unit)
}
